package services

import (
	"context"
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
)

const ticketListCacheKey = "tickets:list"

// TicketService owns the ticket board. The backend has no free-text search
// for tickets, so text queries run client-side over the full list while id
// queries go through the backend's search endpoint.
type TicketService struct {
	api    TicketAPI
	cache  repositories.CacheRepositoryInterface
	logger *zap.Logger

	cacheTTL time.Duration

	mu        sync.Mutex
	records   []entities.Ticket
	sort      listview.SortState
	toaster   listview.Toaster
	confirmer listview.Confirmer
	edit      listview.EditSlot
}

func NewTicketService(api TicketAPI,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *TicketService {
	return &TicketService{
		api:      api,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func (s *TicketService) loadAll(ctx context.Context) ([]entities.Ticket, error) {
	return cachedList(ctx, s.cache, ticketListCacheKey, s.cacheTTL, s.logger, s.api.ListTickets)
}

func ticketSearchFields(t entities.Ticket) []string {
	return []string{t.Type, t.Description, t.Status, t.Priority, t.RaisedByName, t.AssignedToName}
}

func (s *TicketService) searcher() listview.Searcher[entities.Ticket] {
	return listview.Searcher[entities.Ticket]{
		LoadAll: s.loadAll,
		ByID: func(ctx context.Context, id int64) ([]entities.Ticket, error) {
			if id <= 0 {
				return nil, nil
			}
			return s.api.SearchTicketsByID(ctx, uint64(id))
		},
		ByText: func(ctx context.Context, query string) ([]entities.Ticket, error) {
			all, err := s.loadAll(ctx)
			if err != nil {
				return nil, err
			}
			return listview.MatchText(all, ticketSearchFields, query), nil
		},
		NotFoundNotice:     "No results found. Showing all tickets.",
		SearchFailedNotice: "An error occurred while searching. Showing all tickets.",
	}
}

func (s *TicketService) View(ctx context.Context, q dto.TicketQueryDTO) (dto.ListViewDTO[entities.Ticket], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		records []entities.Ticket
		notice  *listview.Toast
		err     error
	)
	switch {
	case strings.TrimSpace(q.Search) != "":
		records, notice, err = s.searcher().Resolve(ctx, q.Search)
	case q.StaffID > 0:
		records, err = s.api.TicketsAssignedToStaff(ctx, q.StaffID)
	case !listview.IsAll(q.Status):
		records, err = s.api.FilterTicketsByStatus(ctx, q.Status)
	case !listview.IsAll(q.Priority):
		records, err = s.api.FilterTicketsByPriority(ctx, q.Priority)
	default:
		records, err = s.loadAll(ctx)
	}
	if err != nil {
		s.logger.Error("ticket view load failed", zap.Error(err))
		return dto.ListViewDTO[entities.Ticket]{}, err
	}

	records = listview.Filter(records, listview.Criteria[entities.Ticket]{
		listview.ExactFold(func(t entities.Ticket) string { return t.Status }, q.Status),
		listview.ExactFold(func(t entities.Ticket) string { return t.Priority }, q.Priority),
	})

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

func (s *TicketService) ToggleSort(field string) listview.SortState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort.Select(field)
	return s.sort
}

func (s *TicketService) sortKey() func(entities.Ticket) any {
	field := s.sort.Field
	return func(t entities.Ticket) any {
		switch field {
		case "id":
			return t.ID
		case "type":
			return t.Type
		case "status":
			return t.Status
		case "priority":
			return t.Priority
		case "raisedByName":
			return t.RaisedByName
		case "createdAt":
			return t.CreatedAt
		case "updatedAt":
			return t.UpdatedAt
		default:
			return t.ID
		}
	}
}

// Create rejects payloads that do not name exactly one raiser, or whose
// assigneeType contradicts the raiser that is set. Status and priority
// default to OPEN and MEDIUM.
func (s *TicketService) Create(ctx context.Context, payload dto.CreateTicketDTO) (*entities.Ticket, error) {
	if (payload.UserID == nil) == (payload.StaffID == nil) {
		return nil, apperrors.NewInvalidInputError("a ticket must be raised by exactly one of userId or staffId")
	}
	switch payload.AssigneeType {
	case "":
		if payload.UserID != nil {
			payload.AssigneeType = entities.TicketRaisedByUser
		} else {
			payload.AssigneeType = entities.TicketRaisedByStaff
		}
	case entities.TicketRaisedByUser:
		if payload.UserID == nil {
			return nil, apperrors.NewInvalidInputError("assigneeType USER requires userId")
		}
	case entities.TicketRaisedByStaff:
		if payload.StaffID == nil {
			return nil, apperrors.NewInvalidInputError("assigneeType STAFF requires staffId")
		}
	}
	if payload.Status == "" {
		payload.Status = entities.TicketStatusOpen
	}
	if payload.Priority == "" {
		payload.Priority = entities.TicketPriorityMedium
	}

	created, err := s.api.AddTicket(ctx, payload)
	if err != nil {
		s.logger.Error("ticket create failed", zap.Error(err))
		s.toaster.Show("Failed to create ticket", listview.ToastError)
		return nil, err
	}
	s.invalidate(ctx)
	s.toaster.Show("Ticket created successfully!", listview.ToastSuccess)
	return created, nil
}

// Assign hands the ticket to a staff member; the backend moves it to
// IN_PROGRESS as part of the assignment.
func (s *TicketService) Assign(ctx context.Context, ticketID, staffID uint64) (*entities.Ticket, error) {
	updated, err := s.api.AssignTicket(ctx, ticketID, staffID)
	if err != nil {
		s.logger.Error("ticket assign failed", zap.Uint64("ticketId", ticketID), zap.Error(err))
		s.toaster.Show("Failed to assign ticket", listview.ToastError)
		return nil, err
	}
	s.invalidate(ctx)
	s.toaster.Show("Ticket assigned successfully!", listview.ToastSuccess)
	return updated, nil
}

func (s *TicketService) UpdateStatus(ctx context.Context, ticketID uint64, status string) (*entities.Ticket, error) {
	updated, err := s.api.UpdateTicketStatus(ctx, ticketID, strings.ToUpper(status))
	if err != nil {
		s.logger.Error("ticket status update failed", zap.Uint64("ticketId", ticketID), zap.Error(err))
		s.toaster.Show("Failed to update ticket status", listview.ToastError)
		return nil, err
	}
	s.invalidate(ctx)
	s.toaster.Show("Ticket status updated!", listview.ToastSuccess)
	return updated, nil
}

// RequestClose gates closing a ticket behind the confirmation modal.
func (s *TicketService) RequestClose(id uint64) listview.Confirmation {
	return s.confirmer.Open(
		"Close Ticket",
		fmt.Sprintf("Are you sure you want to close ticket #%d?", id),
		func() error { return s.performClose(id) },
	)
}

func (s *TicketService) performClose(id uint64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if _, err := s.api.UpdateTicketStatus(ctx, id, entities.TicketStatusClosed); err != nil {
		s.logger.Error("ticket close failed", zap.Uint64("id", id), zap.Error(err))
		s.toaster.Show("Failed to close ticket", listview.ToastError)
		return err
	}
	s.invalidate(ctx)
	s.toaster.Show("Ticket closed successfully!", listview.ToastSuccess)
	return nil
}

func (s *TicketService) Confirm(id uuid.UUID) error {
	return s.confirmer.Confirm(id)
}

func (s *TicketService) DismissConfirmation() {
	s.confirmer.Dismiss()
}

func (s *TicketService) DismissToast() {
	s.toaster.Dismiss()
}

// BeginEdit opens the inline editor. Only the status column is editable;
// priority has no field-scoped update on the backend.
func (s *TicketService) BeginEdit(rowID uint64, field string) error {
	if field != "status" {
		return apperrors.NewHttpError(400, fmt.Sprintf("field %q is not editable", field), nil, nil)
	}
	current, err := s.currentStatus(rowID)
	if err != nil {
		return err
	}
	return s.edit.Begin(int64(rowID), field, current)
}

func (s *TicketService) currentStatus(rowID uint64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.records {
		if t.ID == rowID {
			return t.Status, nil
		}
	}
	return "", apperrors.ErrNotFound
}

func (s *TicketService) StageEdit(value string) error {
	return s.edit.Stage(value)
}

func (s *TicketService) CancelEdit() error {
	return s.edit.Cancel()
}

func (s *TicketService) SaveEdit(ctx context.Context) error {
	rowID, _, active := s.edit.Target()
	if !active {
		return apperrors.ErrNothingStaged
	}

	if err := s.edit.Check(func(v string) error {
		switch strings.ToUpper(strings.TrimSpace(v)) {
		case entities.TicketStatusOpen, entities.TicketStatusInProgress,
			entities.TicketStatusResolved, entities.TicketStatusClosed:
			return nil
		}
		return fmt.Errorf("invalid status %q", v)
	}); err != nil {
		return err
	}

	commit := func(ctx context.Context, staged string) error {
		_, err := s.api.UpdateTicketStatus(ctx, uint64(rowID), strings.ToUpper(staged))
		return err
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
	s.toaster.Show("Ticket status updated!", listview.ToastSuccess)
	return nil
}

func (s *TicketService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, ticketListCacheKey); err != nil {
		s.logger.Warn("cache invalidation failed", zap.String("key", ticketListCacheKey), zap.Error(err))
	}
}
