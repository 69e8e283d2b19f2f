package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gym-admin/internal/dto"
	"gym-admin/internal/entities"
	"gym-admin/internal/repositories"
	apperrors "gym-admin/pkg/errors"
	"gym-admin/pkg/listview"
	"gym-admin/pkg/utils"
)

const maintenanceListCacheKey = "maintenance:list"

// MaintenanceService owns the maintenance schedule screen. It carries the
// widest filter set of the dashboard: status, type, equipment, an
// inclusive cost range and an inclusive date range, all AND-combined on
// top of the search result.
type MaintenanceService struct {
	api    MaintenanceAPI
	cache  repositories.CacheRepositoryInterface
	logger *zap.Logger

	cacheTTL time.Duration

	mu        sync.Mutex
	records   []entities.MaintenanceSchedule
	sort      listview.SortState
	toaster   listview.Toaster
	confirmer listview.Confirmer
	edit      listview.EditSlot
}

func NewMaintenanceService(api MaintenanceAPI,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *MaintenanceService {
	return &MaintenanceService{
		api:      api,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func (s *MaintenanceService) loadAll(ctx context.Context) ([]entities.MaintenanceSchedule, error) {
	return cachedList(ctx, s.cache, maintenanceListCacheKey, s.cacheTTL, s.logger, s.api.ListMaintenanceSchedules)
}

func (s *MaintenanceService) searcher() listview.Searcher[entities.MaintenanceSchedule] {
	return listview.Searcher[entities.MaintenanceSchedule]{
		LoadAll: s.loadAll,
		ByID: func(ctx context.Context, id int64) ([]entities.MaintenanceSchedule, error) {
			if id <= 0 {
				return nil, nil
			}
			found, err := s.api.GetMaintenanceSchedule(ctx, uint64(id))
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, nil
				}
				return nil, err
			}
			return []entities.MaintenanceSchedule{*found}, nil
		},
		ByText:             s.api.SearchMaintenanceSchedules,
		NotFoundNotice:     "No results found. Showing all schedules.",
		SearchFailedNotice: "An error occurred while searching. Showing all schedules.",
	}
}

func (s *MaintenanceService) criteria(q dto.MaintenanceQueryDTO) (listview.Criteria[entities.MaintenanceSchedule], error) {
	minCost, err := parseCostBound(q.MinCost)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("minCost must be a number, got %q", q.MinCost)
	}
	maxCost, err := parseCostBound(q.MaxCost)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("maxCost must be a number, got %q", q.MaxCost)
	}
	start := parseDateBound(q.StartDate)
	end := parseDateBound(q.EndDate)

	crit := listview.Criteria[entities.MaintenanceSchedule]{
		listview.ExactFold(func(m entities.MaintenanceSchedule) string { return m.Status }, q.Status),
		listview.ExactFold(func(m entities.MaintenanceSchedule) string { return m.MaintenanceType }, q.Type),
		listview.CostBetween(func(m entities.MaintenanceSchedule) decimal.Decimal { return m.MaintenanceCost }, minCost, maxCost),
		listview.DateBetween(func(m entities.MaintenanceSchedule) (time.Time, bool) { return utils.ParseDate(m.MaintenanceDate) }, start, end),
	}
	if q.EquipmentID > 0 {
		crit = append(crit, func(m entities.MaintenanceSchedule) bool { return m.EquipmentID == q.EquipmentID })
	}
	return crit, nil
}

func parseCostBound(s string) (*decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseDateBound(s string) *time.Time {
	if t, ok := utils.ParseDate(s); ok {
		return &t
	}
	return nil
}

// View resolves the search first and only then narrows its result with the
// active criteria, so a filter change mid-search never renders against a
// stale list. Single-criterion loads with no search go through the
// backend's filter endpoints.
func (s *MaintenanceService) View(ctx context.Context, q dto.MaintenanceQueryDTO) (dto.ListViewDTO[entities.MaintenanceSchedule], error) {
	crit, err := s.criteria(q)
	if err != nil {
		return dto.ListViewDTO[entities.MaintenanceSchedule]{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		records []entities.MaintenanceSchedule
		notice  *listview.Toast
	)
	switch {
	case strings.TrimSpace(q.Search) != "":
		records, notice, err = s.searcher().Resolve(ctx, q.Search)
	case q.EquipmentID > 0:
		records, err = s.api.FilterMaintenanceByEquipmentID(ctx, q.EquipmentID)
	case !listview.IsAll(q.Status):
		records, err = s.api.FilterMaintenanceByStatus(ctx, q.Status)
	case !listview.IsAll(q.Type):
		records, err = s.api.FilterMaintenanceByType(ctx, q.Type)
	default:
		records, err = s.loadAll(ctx)
	}
	if err != nil {
		s.logger.Error("maintenance view load failed", zap.Error(err))
		return dto.ListViewDTO[entities.MaintenanceSchedule]{}, err
	}

	records = listview.Filter(records, crit)

	s.records = records
	s.toaster.ShowToast(notice)
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
	return assembleView(records, q.Page, s.sort, &s.toaster, &s.edit, &s.confirmer), nil
}

func (s *MaintenanceService) ToggleSort(field string) listview.SortState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort.Select(field)
	return s.sort
}

func (s *MaintenanceService) sortKey() func(entities.MaintenanceSchedule) any {
	field := s.sort.Field
	return func(m entities.MaintenanceSchedule) any {
		switch field {
		case "scheduleId":
			return m.ScheduleID
		case "equipmentId":
			return m.EquipmentID
		case "maintenanceType":
			return m.MaintenanceType
		case "maintenanceDate":
			return m.MaintenanceDate
		case "maintenanceCost":
			return m.MaintenanceCost
		case "technician":
			return m.Technician
		case "status":
			return m.Status
		default:
			return m.MaintenanceDate
		}
	}
}

// Create is the wizard's final submit. Status falls back to SCHEDULED, the
// default the wizard's details stage starts from. A negative cost never
// reaches the backend; a SCHEDULED date in the past goes through but
// raises a warning toast.
func (s *MaintenanceService) Create(ctx context.Context, payload dto.CreateMaintenanceScheduleDTO) (*entities.MaintenanceSchedule, error) {
	if payload.MaintenanceCost.IsNegative() {
		return nil, apperrors.NewInvalidInputError("Cost must be a positive number")
	}
	if payload.Status == "" {
		payload.Status = entities.MaintenanceStatusScheduled
	}
	created, err := s.api.AddMaintenanceSchedule(ctx, payload)
	if err != nil {
		s.logger.Error("schedule create failed", zap.Error(err))
		s.toaster.Show("Failed to add maintenance schedule", listview.ToastError)
		return nil, err
	}
	s.invalidate(ctx)
	s.toaster.Show("Maintenance schedule added successfully!", listview.ToastSuccess)
	if payload.Status == entities.MaintenanceStatusScheduled &&
		payload.MaintenanceDate < time.Now().Format("2006-01-02") {
		s.toaster.Show("Scheduled maintenance cannot be in the past", listview.ToastWarning)
	}
	return created, nil
}

func (s *MaintenanceService) RequestDelete(id uint64) listview.Confirmation {
	return s.confirmer.Open(
		"Delete Maintenance Schedule",
		fmt.Sprintf("Are you sure you want to delete schedule #%d? This action cannot be undone.", id),
		func() error { return s.performDelete(id) },
	)
}

func (s *MaintenanceService) performDelete(id uint64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.api.DeleteMaintenanceSchedule(ctx, id); err != nil {
		s.logger.Error("schedule delete failed", zap.Uint64("id", id), zap.Error(err))
		s.toaster.Show("Failed to delete maintenance schedule", listview.ToastError)
		return err
	}
	s.invalidate(ctx)
	s.toaster.Show("Maintenance schedule deleted successfully!", listview.ToastSuccess)
	return nil
}

func (s *MaintenanceService) Confirm(id uuid.UUID) error {
	return s.confirmer.Confirm(id)
}

func (s *MaintenanceService) DismissConfirmation() {
	s.confirmer.Dismiss()
}

func (s *MaintenanceService) DismissToast() {
	s.toaster.Dismiss()
}

func (s *MaintenanceService) BeginEdit(rowID uint64, field string) error {
	current, err := s.currentValue(rowID, field)
	if err != nil {
		return err
	}
	return s.edit.Begin(int64(rowID), field, current)
}

func (s *MaintenanceService) currentValue(rowID uint64, field string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.records {
		if m.ScheduleID != rowID {
			continue
		}
		switch field {
		case "maintenanceDate":
			return utils.DateOnly(m.MaintenanceDate), nil
		case "status":
			return m.Status, nil
		case "maintenanceCost":
			return m.MaintenanceCost.String(), nil
		case "technician":
			return m.Technician, nil
		case "maintenanceDescription":
			return m.MaintenanceDescription, nil
		default:
			return "", apperrors.NewHttpError(400, fmt.Sprintf("field %q is not editable", field), nil, nil)
		}
	}
	return "", apperrors.ErrNotFound
}

func (s *MaintenanceService) StageEdit(value string) error {
	return s.edit.Stage(value)
}

func (s *MaintenanceService) CancelEdit() error {
	return s.edit.Cancel()
}

func (s *MaintenanceService) SaveEdit(ctx context.Context) error {
	rowID, field, active := s.edit.Target()
	if !active {
		return apperrors.ErrNothingStaged
	}

	if err := s.edit.Check(maintenanceFieldValidator(field)); err != nil {
		return err
	}

	commit := func(ctx context.Context, staged string) error {
		id := uint64(rowID)
		switch field {
		case "maintenanceDate":
			return s.api.UpdateMaintenanceDate(ctx, id, staged)
		case "status":
			return s.api.UpdateMaintenanceStatus(ctx, id, strings.ToUpper(staged))
		case "maintenanceCost":
			cost, err := decimal.NewFromString(strings.TrimSpace(staged))
			if err != nil {
				return err
			}
			return s.api.UpdateMaintenanceCost(ctx, id, cost)
		case "technician":
			return s.api.UpdateMaintenanceTechnician(ctx, id, staged)
		case "maintenanceDescription":
			return s.api.UpdateMaintenanceDescription(ctx, id, staged)
		default:
			return apperrors.NewHttpError(400, fmt.Sprintf("field %q is not editable", field), nil, nil)
		}
	}
	reload := func(ctx context.Context) error {
		s.invalidate(ctx)
		records, err := s.loadAll(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.records = records
		s.mu.Unlock()
		return nil
	}

	if err := s.edit.Save(ctx, commit, reload); err != nil {
		return err
	}
	s.toaster.Show("Schedule updated successfully!", listview.ToastSuccess)
	return nil
}

func maintenanceFieldValidator(field string) func(string) error {
	switch field {
	case "maintenanceDate":
		return func(v string) error {
			if _, ok := utils.ParseDate(v); !ok {
				return fmt.Errorf("date must be YYYY-MM-DD")
			}
			return nil
		}
	case "status":
		return func(v string) error {
			switch strings.ToUpper(strings.TrimSpace(v)) {
			case entities.MaintenanceStatusScheduled, entities.MaintenanceStatusInProgress,
				entities.MaintenanceStatusCompleted, entities.MaintenanceStatusCanceled:
				return nil
			}
			return fmt.Errorf("invalid status %q", v)
		}
	case "maintenanceCost":
		return func(v string) error {
			d, err := decimal.NewFromString(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("cost must be a number")
			}
			if d.IsNegative() {
				return fmt.Errorf("cost must be a positive number")
			}
			return nil
		}
	case "technician":
		return func(v string) error {
			if strings.TrimSpace(v) == "" {
				return fmt.Errorf("technician cannot be empty")
			}
			return nil
		}
	case "maintenanceDescription":
		return nil
	default:
		return func(string) error { return fmt.Errorf("field %q is not editable", field) }
	}
}

// Summary rolls the stored (already filtered) schedules up into the cost
// summary card: headline figures plus per-type and per-month breakdowns.
// When no view has run yet it falls back to the full list.
func (s *MaintenanceService) Summary(ctx context.Context) (dto.CostSummaryDTO, error) {
	s.mu.Lock()
	records := append([]entities.MaintenanceSchedule(nil), s.records...)
	s.mu.Unlock()

	if len(records) == 0 {
		loaded, err := s.loadAll(ctx)
		if err != nil {
			return dto.CostSummaryDTO{}, err
		}
		records = loaded
	}
	return summarize(records), nil
}

func summarize(records []entities.MaintenanceSchedule) dto.CostSummaryDTO {
	out := dto.CostSummaryDTO{
		CostByType:  []dto.CostByTypeDTO{},
		CostByMonth: []entities.MonthlyCost{},
	}
	if len(records) == 0 {
		return out
	}

	byType := map[string]*dto.CostByTypeDTO{}
	byMonth := map[string]decimal.Decimal{}

	out.HighestCost = records[0].MaintenanceCost
	out.LowestCost = records[0].MaintenanceCost
	for _, m := range records {
		cost := m.MaintenanceCost
		out.TotalCost = out.TotalCost.Add(cost)
		if cost.GreaterThan(out.HighestCost) {
			out.HighestCost = cost
		}
		if cost.LessThan(out.LowestCost) {
			out.LowestCost = cost
		}

		typ := m.MaintenanceType
		if typ == "" {
			typ = "Other"
		}
		entry, ok := byType[typ]
		if !ok {
			entry = &dto.CostByTypeDTO{Type: typ}
			byType[typ] = entry
		}
		entry.Total = entry.Total.Add(cost)
		entry.Count++

		if key := utils.MonthKey(m.MaintenanceDate); key != "" {
			byMonth[key] = byMonth[key].Add(cost)
		}
	}
	out.AverageCost = out.TotalCost.Div(decimal.NewFromInt(int64(len(records)))).Round(2)

	for _, entry := range byType {
		out.CostByType = append(out.CostByType, *entry)
	}
	sort.Slice(out.CostByType, func(i, j int) bool {
		if out.CostByType[i].Total.Equal(out.CostByType[j].Total) {
			return out.CostByType[i].Type < out.CostByType[j].Type
		}
		return out.CostByType[i].Total.GreaterThan(out.CostByType[j].Total)
	})

	for month, total := range byMonth {
		out.CostByMonth = append(out.CostByMonth, entities.MonthlyCost{Month: month, TotalCost: total})
	}
	sort.Slice(out.CostByMonth, func(i, j int) bool {
		return out.CostByMonth[i].Month < out.CostByMonth[j].Month
	})
	return out
}

func (s *MaintenanceService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, maintenanceListCacheKey); err != nil {
		s.logger.Warn("cache invalidation failed", zap.String("key", maintenanceListCacheKey), zap.Error(err))
	}
}
