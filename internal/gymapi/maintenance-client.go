package gymapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"gym-admin/internal/dto"
	"gym-admin/internal/entities"
)

func (c *Client) AddMaintenanceSchedule(ctx context.Context, payload dto.CreateMaintenanceScheduleDTO) (*entities.MaintenanceSchedule, error) {
	var created entities.MaintenanceSchedule
	if err := c.post(ctx, "/api/maintenance-schedule", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ListMaintenanceSchedules(ctx context.Context) ([]entities.MaintenanceSchedule, error) {
	var out []entities.MaintenanceSchedule
	if err := c.get(ctx, "/api/maintenance-schedule", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetMaintenanceSchedule(ctx context.Context, id uint64) (*entities.MaintenanceSchedule, error) {
	var out entities.MaintenanceSchedule
	if err := c.get(ctx, fmt.Sprintf("/api/maintenance-schedule/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteMaintenanceSchedule(ctx context.Context, id uint64) error {
	return c.delete(ctx, fmt.Sprintf("/api/maintenance-schedule/%d", id))
}

func (c *Client) SearchMaintenanceSchedules(ctx context.Context, search string) ([]entities.MaintenanceSchedule, error) {
	var out []entities.MaintenanceSchedule
	q := url.Values{"search": {search}}
	if err := c.get(ctx, "/api/maintenance-schedule/search", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateMaintenanceDate uses the backend's capitalised path segment and
// "date" parameter name.
func (c *Client) UpdateMaintenanceDate(ctx context.Context, id uint64, date string) error {
	q := url.Values{"date": {date}}
	return c.put(ctx, fmt.Sprintf("/api/maintenance-schedule/%d/MaintenanceDate", id), q, nil, nil)
}

func (c *Client) UpdateMaintenanceStatus(ctx context.Context, id uint64, status string) error {
	q := url.Values{"status": {status}}
	return c.put(ctx, fmt.Sprintf("/api/maintenance-schedule/%d/status", id), q, nil, nil)
}

func (c *Client) UpdateMaintenanceCost(ctx context.Context, id uint64, cost decimal.Decimal) error {
	// Money always goes over the wire with two decimal places.
	q := url.Values{"cost": {cost.StringFixed(2)}}
	return c.put(ctx, fmt.Sprintf("/api/maintenance-schedule/%d/cost", id), q, nil, nil)
}

func (c *Client) UpdateMaintenanceTechnician(ctx context.Context, id uint64, technician string) error {
	q := url.Values{"technician": {technician}}
	return c.put(ctx, fmt.Sprintf("/api/maintenance-schedule/%d/technician", id), q, nil, nil)
}

func (c *Client) UpdateMaintenanceDescription(ctx context.Context, id uint64, description string) error {
	q := url.Values{"description": {description}}
	return c.put(ctx, fmt.Sprintf("/api/maintenance-schedule/%d/description", id), q, nil, nil)
}

func (c *Client) FilterMaintenanceByStatus(ctx context.Context, status string) ([]entities.MaintenanceSchedule, error) {
	var out []entities.MaintenanceSchedule
	q := url.Values{"status": {status}}
	if err := c.get(ctx, "/api/maintenance-schedule/filter-by-status", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FilterMaintenanceByType(ctx context.Context, maintenanceType string) ([]entities.MaintenanceSchedule, error) {
	var out []entities.MaintenanceSchedule
	q := url.Values{"type": {maintenanceType}}
	if err := c.get(ctx, "/api/maintenance-schedule/filter-by-type", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FilterMaintenanceByEquipmentID(ctx context.Context, equipmentID uint64) ([]entities.MaintenanceSchedule, error) {
	var out []entities.MaintenanceSchedule
	q := url.Values{"equipmentId": {fmt.Sprintf("%d", equipmentID)}}
	if err := c.get(ctx, "/api/maintenance-schedule/filter-by-equipmentId", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
