package gymapi

import (
	"context"
	"net/url"

	"gym-admin/internal/entities"
)

func (c *Client) MonthlyCosts(ctx context.Context) ([]entities.MonthlyCost, error) {
	var out []entities.MonthlyCost
	if err := c.get(ctx, "/api/monthly-costs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecalculateMonthlyCosts asks the backend to rebuild its cost aggregates
// from the schedule table.
func (c *Client) RecalculateMonthlyCosts(ctx context.Context) error {
	return c.post(ctx, "/api/update-monthly-costs", nil, nil)
}

// FilterCostsByMonth expects month as "2006-01"; the caller validates the
// format before dispatching.
func (c *Client) FilterCostsByMonth(ctx context.Context, month string) ([]entities.MonthlyCost, error) {
	var out []entities.MonthlyCost
	q := url.Values{"month": {month}}
	if err := c.get(ctx, "/api/filter-monthly-cost", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FilterCostsByYear expects year as "2006".
func (c *Client) FilterCostsByYear(ctx context.Context, year string) ([]entities.MonthlyCost, error) {
	var out []entities.MonthlyCost
	q := url.Values{"year": {year}}
	if err := c.get(ctx, "/api/filter-yearly-cost", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
