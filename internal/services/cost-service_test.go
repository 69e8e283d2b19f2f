package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gym-admin/internal/dto"
	"gym-admin/internal/entities"
	apperrors "gym-admin/pkg/errors"
)

type fakeCostAPI struct {
	costs []entities.MonthlyCost

	listCalls        int
	monthFilterCalls int
	yearFilterCalls  int
	recalcCalls      int
}

func (f *fakeCostAPI) MonthlyCosts(context.Context) ([]entities.MonthlyCost, error) {
	f.listCalls++
	return append([]entities.MonthlyCost(nil), f.costs...), nil
}

func (f *fakeCostAPI) RecalculateMonthlyCosts(context.Context) error {
	f.recalcCalls++
	return nil
}

func (f *fakeCostAPI) FilterCostsByMonth(_ context.Context, month string) ([]entities.MonthlyCost, error) {
	f.monthFilterCalls++
	out := []entities.MonthlyCost{}
	for _, c := range f.costs {
		if c.Month == month {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCostAPI) FilterCostsByYear(_ context.Context, year string) ([]entities.MonthlyCost, error) {
	f.yearFilterCalls++
	out := []entities.MonthlyCost{}
	for _, c := range f.costs {
		if len(c.Month) >= 4 && c.Month[:4] == year {
			out = append(out, c)
		}
	}
	return out, nil
}

func costLedger() []entities.MonthlyCost {
	return []entities.MonthlyCost{
		{Month: "2024-11", TotalCost: decimal.RequireFromString("420")},
		{Month: "2024-12", TotalCost: decimal.RequireFromString("180")},
		{Month: "2025-01", TotalCost: decimal.RequireFromString("310.25")},
		{Month: "2025-02", TotalCost: decimal.RequireFromString("95.50")},
	}
}

func newCostService(api *fakeCostAPI) *CostService {
	return NewCostService(api, nil, 0, zap.NewNop())
}

func TestCostViewRejectsMalformedMonthBeforeDispatch(t *testing.T) {
	api := &fakeCostAPI{costs: costLedger()}
	svc := newCostService(api)

	for _, bad := range []string{"2025-1", "202501", "Jan 2025", "2025-13x"} {
		_, err := svc.View(context.Background(), dto.CostFilterDTO{Month: bad})
		require.Error(t, err, "month %q must be rejected", bad)
		var invalid *apperrors.InvalidInputError
		assert.ErrorAs(t, err, &invalid)
	}
	assert.Zero(t, api.monthFilterCalls, "malformed filters never reach the backend")
	assert.Zero(t, api.listCalls)
}

func TestCostViewRejectsMalformedYear(t *testing.T) {
	api := &fakeCostAPI{costs: costLedger()}
	svc := newCostService(api)

	for _, bad := range []string{"25", "20255", "twenty"} {
		_, err := svc.View(context.Background(), dto.CostFilterDTO{Year: bad})
		require.Error(t, err, "year %q must be rejected", bad)
	}
	assert.Zero(t, api.yearFilterCalls)
}

func TestCostViewRejectsMonthAndYearTogether(t *testing.T) {
	svc := newCostService(&fakeCostAPI{costs: costLedger()})

	_, err := svc.View(context.Background(), dto.CostFilterDTO{Month: "2025-01", Year: "2025"})
	require.Error(t, err)
}

func TestCostViewMonthFilterDispatches(t *testing.T) {
	api := &fakeCostAPI{costs: costLedger()}
	svc := newCostService(api)

	view, err := svc.View(context.Background(), dto.CostFilterDTO{Month: "2025-01"})
	require.NoError(t, err)
	require.Len(t, view.Page.Items, 1)
	assert.Equal(t, "2025-01", view.Page.Items[0].Month)
	assert.Equal(t, 1, api.monthFilterCalls)
}

func TestCostViewYearFilterDispatches(t *testing.T) {
	api := &fakeCostAPI{costs: costLedger()}
	svc := newCostService(api)

	view, err := svc.View(context.Background(), dto.CostFilterDTO{Year: "2024"})
	require.NoError(t, err)
	assert.Len(t, view.Page.Items, 2)
	assert.Equal(t, 1, api.yearFilterCalls)
}

func TestCostViewSortByTotalDescending(t *testing.T) {
	svc := newCostService(&fakeCostAPI{costs: costLedger()})

	view, err := svc.View(context.Background(), dto.CostFilterDTO{SortBy: "totalCost", Order: "desc"})
	require.NoError(t, err)
	require.Len(t, view.Page.Items, 4)
	assert.Equal(t, "2024-11", view.Page.Items[0].Month)
	assert.Equal(t, "2025-02", view.Page.Items[3].Month)
}

func TestCostRecalculateInvalidatesCache(t *testing.T) {
	api := &fakeCostAPI{costs: costLedger()}
	cache := newFakeCache()
	svc := NewCostService(api, cache, 0, zap.NewNop())

	_, err := svc.View(context.Background(), dto.CostFilterDTO{})
	require.NoError(t, err)
	_, err = svc.View(context.Background(), dto.CostFilterDTO{})
	require.NoError(t, err)
	assert.Equal(t, 1, api.listCalls)

	require.NoError(t, svc.Recalculate(context.Background()))
	assert.Equal(t, 1, api.recalcCalls)

	_, err = svc.View(context.Background(), dto.CostFilterDTO{})
	require.NoError(t, err)
	assert.Equal(t, 2, api.listCalls, "recalculation drops the snapshot")
}

func TestCostYearlyBreakdown(t *testing.T) {
	svc := newCostService(&fakeCostAPI{costs: costLedger()})

	groups, err := svc.YearlyBreakdown(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "2025", groups[0].Year, "newest year first")
	assert.True(t, groups[0].Total.Equal(decimal.RequireFromString("405.75")))
	require.Len(t, groups[0].Months, 2)
	assert.Equal(t, "2025-01", groups[0].Months[0].Month)

	assert.Equal(t, "2024", groups[1].Year)
	assert.True(t, groups[1].Total.Equal(decimal.RequireFromString("600")))
}
