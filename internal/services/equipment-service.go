package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gym-admin/internal/dto"
	"gym-admin/internal/entities"
	"gym-admin/internal/repositories"
	apperrors "gym-admin/pkg/errors"
	"gym-admin/pkg/listview"
	"gym-admin/pkg/utils"
)

const equipmentListCacheKey = "equipment:list"

// EquipmentService owns the equipment screen: the record store, the active
// filter, search, sort and page controls, the shared inline-edit slot and
// the confirmation and toast slots. The mutex serialises screen mutations
// the way the dashboard's single render loop did.
type EquipmentService struct {
	api    EquipmentAPI
	cache  repositories.CacheRepositoryInterface
	logger *zap.Logger

	cacheTTL time.Duration

	mu        sync.Mutex
	records   []entities.Equipment
	sort      listview.SortState
	toaster   listview.Toaster
	confirmer listview.Confirmer
	edit      listview.EditSlot
}

func NewEquipmentService(api EquipmentAPI,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		api:      api,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func (s *EquipmentService) loadAll(ctx context.Context) ([]entities.Equipment, error) {
	return cachedList(ctx, s.cache, equipmentListCacheKey, s.cacheTTL, s.logger, s.api.ListEquipment)
}

func (s *EquipmentService) searcher() listview.Searcher[entities.Equipment] {
	return listview.Searcher[entities.Equipment]{
		LoadAll: s.loadAll,
		ByID: func(ctx context.Context, id int64) ([]entities.Equipment, error) {
			if id <= 0 {
				return nil, nil
			}
			found, err := s.api.GetEquipment(ctx, uint64(id))
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, nil
				}
				return nil, err
			}
			return []entities.Equipment{*found}, nil
		},
		ByText:             s.api.SearchEquipment,
		NotFoundNotice:     "No results found. Showing all equipment.",
		SearchFailedNotice: "An error occurred while searching. Showing all equipment.",
	}
}

// View runs the full pipeline for one render: the search resolves first,
// then the status criterion narrows its result, then sort and pagination
// apply. An empty search with an active status filter goes through the
// backend's filter endpoint instead of loading everything.
func (s *EquipmentService) View(ctx context.Context, q dto.ListQueryDTO) (dto.ListViewDTO[entities.Equipment], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		records []entities.Equipment
		notice  *listview.Toast
		err     error
	)
	if strings.TrimSpace(q.Search) == "" && !listview.IsAll(q.Status) {
		records, err = s.api.FilterEquipmentByStatus(ctx, q.Status)
	} else {
		records, notice, err = s.searcher().Resolve(ctx, q.Search)
		if err == nil {
			records = listview.Filter(records, listview.Criteria[entities.Equipment]{
				listview.ExactFold(func(e entities.Equipment) string { return e.Status }, q.Status),
			})
		}
	}
	if err != nil {
		s.logger.Error("equipment view load failed", zap.Error(err))
		return dto.ListViewDTO[entities.Equipment]{}, err
	}

	s.records = records
	s.toaster.ShowToast(notice)
	s.applySort(q)

	if s.sort.Active() {
		records = listview.Sort(records, s.sortKey(), s.sort.Direction)
	}
	return assembleView(records, q.Page, s.sort, &s.toaster, &s.edit, &s.confirmer), nil
}

func (s *EquipmentService) applySort(q dto.ListQueryDTO) {
	if q.SortBy == "" {
		return
	}
	if q.Order != "" {
		s.sort = listview.SortState{Field: q.SortBy, Direction: listview.Direction(q.Order)}
		return
	}
	if s.sort.Field != q.SortBy {
		s.sort = listview.SortState{Field: q.SortBy, Direction: listview.Ascending}
	}
}

// ToggleSort is the column-header click: the active field flips direction,
// a new field starts ascending.
func (s *EquipmentService) ToggleSort(field string) listview.SortState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort.Select(field)
	return s.sort
}

func (s *EquipmentService) sortKey() func(entities.Equipment) any {
	field := s.sort.Field
	return func(e entities.Equipment) any {
		switch field {
		case "id":
			return e.ID
		case "name":
			return e.Name
		case "category":
			return e.Category
		case "status":
			return e.Status
		case "purchaseDate":
			return e.PurchaseDate
		case "lastMaintenanceDate":
			return e.LastMaintenanceDate
		case "warrantyExpiry":
			return e.WarrantyExpiry
		default:
			return e.Name
		}
	}
}

func (s *EquipmentService) Create(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	created, err := s.api.AddEquipment(ctx, payload)
	if err != nil {
		s.logger.Error("equipment create failed", zap.Error(err))
		s.toaster.Show("Failed to add equipment", listview.ToastError)
		return nil, err
	}
	s.invalidate(ctx)
	s.toaster.Show("Equipment added successfully!", listview.ToastSuccess)
	return created, nil
}

// All feeds the schedule wizard's equipment picker.
func (s *EquipmentService) All(ctx context.Context) ([]entities.Equipment, error) {
	return s.api.AllEquipment(ctx)
}

// RequestDelete opens the confirmation modal; nothing is deleted until the
// returned confirmation is explicitly confirmed.
func (s *EquipmentService) RequestDelete(id uint64) listview.Confirmation {
	return s.confirmer.Open(
		"Delete Equipment",
		fmt.Sprintf("Are you sure you want to delete equipment #%d? This action cannot be undone.", id),
		func() error { return s.performDelete(id) },
	)
}

func (s *EquipmentService) performDelete(id uint64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.api.DeleteEquipment(ctx, id); err != nil {
		s.logger.Error("equipment delete failed", zap.Uint64("id", id), zap.Error(err))
		s.toaster.Show("Failed to delete equipment", listview.ToastError)
		return err
	}
	s.invalidate(ctx)
	s.toaster.Show("Equipment deleted successfully!", listview.ToastSuccess)
	return nil
}

func (s *EquipmentService) Confirm(id uuid.UUID) error {
	return s.confirmer.Confirm(id)
}

func (s *EquipmentService) DismissConfirmation() {
	s.confirmer.Dismiss()
}

func (s *EquipmentService) DismissToast() {
	s.toaster.Dismiss()
}

// BeginEdit seeds the shared edit slot from the stored record. Only the
// status and last-maintenance-date columns are editable inline.
func (s *EquipmentService) BeginEdit(rowID uint64, field string) error {
	current, err := s.currentValue(rowID, field)
	if err != nil {
		return err
	}
	return s.edit.Begin(int64(rowID), field, current)
}

func (s *EquipmentService) currentValue(rowID uint64, field string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.records {
		if e.ID != rowID {
			continue
		}
		switch field {
		case "status":
			return e.Status, nil
		case "lastMaintenanceDate":
			return utils.DateOnly(e.LastMaintenanceDate), nil
		default:
			return "", apperrors.NewHttpError(400, fmt.Sprintf("field %q is not editable", field), nil, nil)
		}
	}
	return "", apperrors.ErrNotFound
}

func (s *EquipmentService) StageEdit(value string) error {
	return s.edit.Stage(value)
}

func (s *EquipmentService) CancelEdit() error {
	return s.edit.Cancel()
}

// SaveEdit validates the staged value, then issues the single field-scoped
// update for the edited column. A validation failure never reaches the
// network.
func (s *EquipmentService) SaveEdit(ctx context.Context) error {
	rowID, field, active := s.edit.Target()
	if !active {
		return apperrors.ErrNothingStaged
	}

	if err := s.edit.Check(equipmentFieldValidator(field)); err != nil {
		return err
	}

	commit := func(ctx context.Context, staged string) error {
		switch field {
		case "status":
			return s.api.UpdateEquipmentStatus(ctx, uint64(rowID), strings.ToUpper(staged))
		case "lastMaintenanceDate":
			return s.api.UpdateEquipmentMaintenanceDate(ctx, uint64(rowID), staged)
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
	s.toaster.Show("Equipment updated successfully!", listview.ToastSuccess)
	return nil
}

func equipmentFieldValidator(field string) func(string) error {
	switch field {
	case "status":
		return func(v string) error {
			switch strings.ToUpper(strings.TrimSpace(v)) {
			case entities.EquipmentStatusAvailable, entities.EquipmentStatusUnavailable,
				entities.EquipmentStatusUnderMaintenance, entities.EquipmentStatusOutOfOrder:
				return nil
			}
			return fmt.Errorf("invalid status %q", v)
		}
	case "lastMaintenanceDate":
		return func(v string) error {
			if _, ok := utils.ParseDate(v); !ok {
				return fmt.Errorf("date must be YYYY-MM-DD")
			}
			return nil
		}
	default:
		return func(string) error { return fmt.Errorf("field %q is not editable", field) }
	}
}

func (s *EquipmentService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, equipmentListCacheKey); err != nil {
		s.logger.Warn("cache invalidation failed", zap.String("key", equipmentListCacheKey), zap.Error(err))
	}
}
