package gymapi

import (
	"context"
	"fmt"
	"net/url"

	"gym-admin/internal/dto"
	"gym-admin/internal/entities"
)

func (c *Client) AddEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	var created entities.Equipment
	if err := c.post(ctx, "/api/equipment", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ListEquipment(ctx context.Context) ([]entities.Equipment, error) {
	var out []entities.Equipment
	if err := c.get(ctx, "/api/equipment", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllEquipment includes records the paged listing hides; the schedule
// wizard uses it to populate its equipment picker.
func (c *Client) AllEquipment(ctx context.Context) ([]entities.Equipment, error) {
	var out []entities.Equipment
	if err := c.get(ctx, "/api/equipment/get-all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	var out entities.Equipment
	if err := c.get(ctx, fmt.Sprintf("/api/equipment/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEquipment(ctx context.Context, id uint64) error {
	return c.delete(ctx, fmt.Sprintf("/api/equipment/%d", id))
}

func (c *Client) UpdateEquipmentStatus(ctx context.Context, id uint64, status string) error {
	q := url.Values{"status": {status}}
	return c.put(ctx, fmt.Sprintf("/api/equipment/%d/status", id), q, nil, nil)
}

// UpdateEquipmentMaintenanceDate records the latest maintenance performed
// on a unit. The capitalised path segment is the backend's spelling.
func (c *Client) UpdateEquipmentMaintenanceDate(ctx context.Context, id uint64, maintenanceDate string) error {
	q := url.Values{"maintenanceDate": {maintenanceDate}}
	return c.put(ctx, fmt.Sprintf("/api/equipment/%d/Maintenance", id), q, nil, nil)
}

// SearchEquipment passes the query through the backend's "Search"
// parameter, capital S as the backend expects.
func (c *Client) SearchEquipment(ctx context.Context, search string) ([]entities.Equipment, error) {
	var out []entities.Equipment
	q := url.Values{"Search": {search}}
	if err := c.get(ctx, "/api/equipment/search", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FilterEquipmentByStatus(ctx context.Context, status string) ([]entities.Equipment, error) {
	var out []entities.Equipment
	q := url.Values{"status": {status}}
	if err := c.get(ctx, "/api/equipment/filter-by-status", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
