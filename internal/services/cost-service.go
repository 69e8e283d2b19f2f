package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"gym-admin/internal/dto"
	"gym-admin/internal/entities"
	"gym-admin/internal/repositories"
	"gym-admin/pkg/customvalidator"
	apperrors "gym-admin/pkg/errors"
	"gym-admin/pkg/listview"
)

const costListCacheKey = "costs:list"

// CostService owns the monthly-cost screen. The table is read-only, so it
// carries no edit slot or confirmation; its transient state is a toast and
// the sort and page controls.
type CostService struct {
	api    CostAPI
	cache  repositories.CacheRepositoryInterface
	logger *zap.Logger

	cacheTTL time.Duration

	mu      sync.Mutex
	sort    listview.SortState
	toaster listview.Toaster
	edit    listview.EditSlot
	confirm listview.Confirmer
}

func NewCostService(api CostAPI,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *CostService {
	return &CostService{
		api:      api,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func (s *CostService) loadAll(ctx context.Context) ([]entities.MonthlyCost, error) {
	return cachedList(ctx, s.cache, costListCacheKey, s.cacheTTL, s.logger, s.api.MonthlyCosts)
}

// load validates the filter shape locally before any request goes out: a
// month must be YYYY-MM and a year YYYY, exactly as the inputs submit them.
func (s *CostService) load(ctx context.Context, q dto.CostFilterDTO) ([]entities.MonthlyCost, error) {
	switch {
	case q.Month != "" && q.Year != "":
		return nil, apperrors.NewInvalidInputError("filter by month or year, not both")
	case q.Month != "":
		if !customvalidator.IsMonth(q.Month) {
			return nil, apperrors.NewInvalidInputError("month must be YYYY-MM, got %q", q.Month)
		}
		return s.api.FilterCostsByMonth(ctx, q.Month)
	case q.Year != "":
		if !customvalidator.IsYear(q.Year) {
			return nil, apperrors.NewInvalidInputError("year must be YYYY, got %q", q.Year)
		}
		return s.api.FilterCostsByYear(ctx, q.Year)
	default:
		return s.loadAll(ctx)
	}
}

func (s *CostService) View(ctx context.Context, q dto.CostFilterDTO) (dto.ListViewDTO[entities.MonthlyCost], error) {
	records, err := s.load(ctx, q)
	if err != nil {
		if _, ok := err.(*apperrors.InvalidInputError); !ok {
			s.logger.Error("monthly cost load failed", zap.Error(err))
		}
		return dto.ListViewDTO[entities.MonthlyCost]{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if q.SortBy != "" {
		if q.Order != "" {
			s.sort = listview.SortState{Field: q.SortBy, Direction: listview.Direction(q.Order)}
		} else if s.sort.Field != q.SortBy {
			s.sort = listview.SortState{Field: q.SortBy, Direction: listview.Ascending}
		}
	}

	if s.sort.Active() {
		records = listview.Sort(records, s.sortKey(), s.sort.Direction)
	}
	return assembleView(records, q.Page, s.sort, &s.toaster, &s.edit, &s.confirm), nil
}

func (s *CostService) ToggleSort(field string) listview.SortState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort.Select(field)
	return s.sort
}

func (s *CostService) sortKey() func(entities.MonthlyCost) any {
	field := s.sort.Field
	return func(c entities.MonthlyCost) any {
		if field == "totalCost" {
			return c.TotalCost
		}
		return c.Month
	}
}

// Recalculate asks the backend to rebuild its aggregates, then drops the
// cached snapshot so the next view reflects them.
func (s *CostService) Recalculate(ctx context.Context) error {
	if err := s.api.RecalculateMonthlyCosts(ctx); err != nil {
		s.logger.Error("monthly cost recalculation failed", zap.Error(err))
		s.toaster.Show("Failed to refresh monthly costs", listview.ToastError)
		return err
	}
	if s.cache != nil {
		if err := s.cache.Del(ctx, costListCacheKey); err != nil {
			s.logger.Warn("cache invalidation failed", zap.String("key", costListCacheKey), zap.Error(err))
		}
	}
	s.toaster.Show("Monthly costs refreshed!", listview.ToastSuccess)
	return nil
}

func (s *CostService) DismissToast() {
	s.toaster.Dismiss()
}

// YearlyBreakdown groups the cost rows by year, months in calendar order,
// with a running total per year. Years come back newest first.
func (s *CostService) YearlyBreakdown(ctx context.Context) ([]dto.YearCostGroupDTO, error) {
	records, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	groups := map[string]*dto.YearCostGroupDTO{}
	for _, c := range records {
		if len(c.Month) < 4 {
			continue
		}
		year := c.Month[:4]
		g, ok := groups[year]
		if !ok {
			g = &dto.YearCostGroupDTO{Year: year}
			groups[year] = g
		}
		g.Months = append(g.Months, c)
		g.Total = g.Total.Add(c.TotalCost)
	}

	out := make([]dto.YearCostGroupDTO, 0, len(groups))
	for _, g := range groups {
		sort.Slice(g.Months, func(i, j int) bool { return g.Months[i].Month < g.Months[j].Month })
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	return out, nil
}
