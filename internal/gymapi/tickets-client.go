package gymapi

import (
	"context"
	"fmt"
	"net/url"

	"gym-admin/internal/dto"
	"gym-admin/internal/entities"
)

// ListTickets is the backend's search endpoint without a query, which is
// how the ticket board loads its full list.
func (c *Client) ListTickets(ctx context.Context) ([]entities.Ticket, error) {
	var out []entities.Ticket
	if err := c.get(ctx, "/api/tickets/search", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchTicketsByID returns a list even for an exact id; an empty list
// means no match.
func (c *Client) SearchTicketsByID(ctx context.Context, ticketID uint64) ([]entities.Ticket, error) {
	var out []entities.Ticket
	q := url.Values{"ticketId": {fmt.Sprintf("%d", ticketID)}}
	if err := c.get(ctx, "/api/tickets/search", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddTicket(ctx context.Context, payload dto.CreateTicketDTO) (*entities.Ticket, error) {
	var created entities.Ticket
	if err := c.post(ctx, "/api/tickets", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) AssignTicket(ctx context.Context, ticketID, staffID uint64) (*entities.Ticket, error) {
	var updated entities.Ticket
	body := dto.AssignTicketDTO{StaffID: staffID}
	if err := c.put(ctx, fmt.Sprintf("/api/tickets/%d/assign", ticketID), nil, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) UpdateTicketStatus(ctx context.Context, ticketID uint64, status string) (*entities.Ticket, error) {
	var updated entities.Ticket
	body := dto.UpdateTicketStatusDTO{Status: status}
	if err := c.put(ctx, fmt.Sprintf("/api/tickets/%d/status", ticketID), nil, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) TicketsAssignedToStaff(ctx context.Context, staffID uint64) ([]entities.Ticket, error) {
	var out []entities.Ticket
	if err := c.get(ctx, fmt.Sprintf("/api/tickets/assigned-to/staff/%d", staffID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FilterTicketsByStatus(ctx context.Context, status string) ([]entities.Ticket, error) {
	var out []entities.Ticket
	q := url.Values{"status": {status}}
	if err := c.get(ctx, "/api/tickets/filter-by-status", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FilterTicketsByPriority(ctx context.Context, priority string) ([]entities.Ticket, error) {
	var out []entities.Ticket
	q := url.Values{"priority": {priority}}
	if err := c.get(ctx, "/api/tickets/filter-by-priority", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
