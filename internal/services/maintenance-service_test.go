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
	"gym-admin/pkg/listview"
)

type fakeMaintenanceAPI struct {
	schedules []entities.MaintenanceSchedule

	listCalls       int
	addCalls        int
	costUpdateCalls int
	deleteCalls     int

	lastCost decimal.Decimal
}

func (f *fakeMaintenanceAPI) AddMaintenanceSchedule(_ context.Context, p dto.CreateMaintenanceScheduleDTO) (*entities.MaintenanceSchedule, error) {
	f.addCalls++
	created := entities.MaintenanceSchedule{
		ScheduleID:      uint64(len(f.schedules) + 1),
		EquipmentID:     p.EquipmentID,
		MaintenanceType: p.MaintenanceType,
		MaintenanceDate: p.MaintenanceDate,
		MaintenanceCost: p.MaintenanceCost,
		Technician:      p.Technician,
		Status:          p.Status,
	}
	f.schedules = append(f.schedules, created)
	return &created, nil
}

func (f *fakeMaintenanceAPI) ListMaintenanceSchedules(context.Context) ([]entities.MaintenanceSchedule, error) {
	f.listCalls++
	return append([]entities.MaintenanceSchedule(nil), f.schedules...), nil
}

func (f *fakeMaintenanceAPI) GetMaintenanceSchedule(_ context.Context, id uint64) (*entities.MaintenanceSchedule, error) {
	for _, m := range f.schedules {
		if m.ScheduleID == id {
			out := m
			return &out, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeMaintenanceAPI) DeleteMaintenanceSchedule(context.Context, uint64) error {
	f.deleteCalls++
	return nil
}

func (f *fakeMaintenanceAPI) SearchMaintenanceSchedules(_ context.Context, search string) ([]entities.MaintenanceSchedule, error) {
	out := []entities.MaintenanceSchedule{}
	for _, m := range f.schedules {
		if m.Technician == search {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMaintenanceAPI) UpdateMaintenanceDate(context.Context, uint64, string) error { return nil }

func (f *fakeMaintenanceAPI) UpdateMaintenanceStatus(context.Context, uint64, string) error {
	return nil
}

func (f *fakeMaintenanceAPI) UpdateMaintenanceCost(_ context.Context, _ uint64, cost decimal.Decimal) error {
	f.costUpdateCalls++
	f.lastCost = cost
	return nil
}

func (f *fakeMaintenanceAPI) UpdateMaintenanceTechnician(context.Context, uint64, string) error {
	return nil
}

func (f *fakeMaintenanceAPI) UpdateMaintenanceDescription(context.Context, uint64, string) error {
	return nil
}

func (f *fakeMaintenanceAPI) FilterMaintenanceByStatus(_ context.Context, status string) ([]entities.MaintenanceSchedule, error) {
	out := []entities.MaintenanceSchedule{}
	for _, m := range f.schedules {
		if m.Status == status {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMaintenanceAPI) FilterMaintenanceByType(_ context.Context, typ string) ([]entities.MaintenanceSchedule, error) {
	out := []entities.MaintenanceSchedule{}
	for _, m := range f.schedules {
		if m.MaintenanceType == typ {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMaintenanceAPI) FilterMaintenanceByEquipmentID(_ context.Context, id uint64) ([]entities.MaintenanceSchedule, error) {
	out := []entities.MaintenanceSchedule{}
	for _, m := range f.schedules {
		if m.EquipmentID == id {
			out = append(out, m)
		}
	}
	return out, nil
}

func cost(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func scheduleBook() []entities.MaintenanceSchedule {
	return []entities.MaintenanceSchedule{
		{ScheduleID: 1, EquipmentID: 1, MaintenanceType: "Preventive", MaintenanceDate: "2025-01-10", MaintenanceCost: cost("10"), Technician: "John Smith", Status: entities.MaintenanceStatusScheduled},
		{ScheduleID: 2, EquipmentID: 1, MaintenanceType: "Corrective", MaintenanceDate: "2025-02-20", MaintenanceCost: cost("75"), Technician: "Maria Garcia", Status: entities.MaintenanceStatusInProgress},
		{ScheduleID: 3, EquipmentID: 2, MaintenanceType: "Routine", MaintenanceDate: "2025-02-28", MaintenanceCost: cost("150"), Technician: "Ahmed Ali", Status: entities.MaintenanceStatusCompleted},
		{ScheduleID: 4, EquipmentID: 3, MaintenanceType: "Emergency", MaintenanceDate: "2025-03-05", MaintenanceCost: cost("300"), Technician: "John Smith", Status: entities.MaintenanceStatusScheduled},
	}
}

func newMaintenanceService(api *fakeMaintenanceAPI) *MaintenanceService {
	return NewMaintenanceService(api, nil, 0, zap.NewNop())
}

func TestMaintenanceCostRangeIsInclusive(t *testing.T) {
	svc := newMaintenanceService(&fakeMaintenanceAPI{schedules: scheduleBook()})

	view, err := svc.View(context.Background(), dto.MaintenanceQueryDTO{MinCost: "50", MaxCost: "200"})
	require.NoError(t, err)
	require.Len(t, view.Page.Items, 2)
	assert.Equal(t, uint64(2), view.Page.Items[0].ScheduleID)
	assert.Equal(t, uint64(3), view.Page.Items[1].ScheduleID)

	// The bounds themselves are kept.
	view, err = svc.View(context.Background(), dto.MaintenanceQueryDTO{MinCost: "75", MaxCost: "75"})
	require.NoError(t, err)
	require.Len(t, view.Page.Items, 1)
	assert.Equal(t, uint64(2), view.Page.Items[0].ScheduleID)
}

func TestMaintenanceBadCostBoundRejectedLocally(t *testing.T) {
	api := &fakeMaintenanceAPI{schedules: scheduleBook()}
	svc := newMaintenanceService(api)

	_, err := svc.View(context.Background(), dto.MaintenanceQueryDTO{MinCost: "cheap"})
	require.Error(t, err)
	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
	assert.Zero(t, api.listCalls, "a bad bound never reaches the backend")
}

func TestMaintenanceDateRangeFilter(t *testing.T) {
	svc := newMaintenanceService(&fakeMaintenanceAPI{schedules: scheduleBook()})

	view, err := svc.View(context.Background(), dto.MaintenanceQueryDTO{
		StartDate: "2025-02-01",
		EndDate:   "2025-02-28",
	})
	require.NoError(t, err)
	require.Len(t, view.Page.Items, 2)
	assert.Equal(t, uint64(2), view.Page.Items[0].ScheduleID)
	assert.Equal(t, uint64(3), view.Page.Items[1].ScheduleID)
}

func TestMaintenanceCombinedCriteria(t *testing.T) {
	svc := newMaintenanceService(&fakeMaintenanceAPI{schedules: scheduleBook()})

	// Search resolves first (technician match), then the cost range narrows
	// the result.
	view, err := svc.View(context.Background(), dto.MaintenanceQueryDTO{
		Search:  "John Smith",
		MinCost: "100",
	})
	require.NoError(t, err)
	require.Len(t, view.Page.Items, 1)
	assert.Equal(t, uint64(4), view.Page.Items[0].ScheduleID)
}

func TestMaintenanceStatusFilterALLIsNoOp(t *testing.T) {
	svc := newMaintenanceService(&fakeMaintenanceAPI{schedules: scheduleBook()})

	view, err := svc.View(context.Background(), dto.MaintenanceQueryDTO{Status: "ALL"})
	require.NoError(t, err)
	assert.Len(t, view.Page.Items, 4)
}

func TestMaintenanceEquipmentFilter(t *testing.T) {
	svc := newMaintenanceService(&fakeMaintenanceAPI{schedules: scheduleBook()})

	view, err := svc.View(context.Background(), dto.MaintenanceQueryDTO{EquipmentID: 1})
	require.NoError(t, err)
	assert.Len(t, view.Page.Items, 2)
}

func TestMaintenanceCreateDefaultsToScheduled(t *testing.T) {
	api := &fakeMaintenanceAPI{}
	svc := newMaintenanceService(api)

	created, err := svc.Create(context.Background(), dto.CreateMaintenanceScheduleDTO{
		EquipmentID:     2,
		MaintenanceType: "Preventive",
		MaintenanceDate: "2025-09-01",
		MaintenanceCost: cost("45"),
	})
	require.NoError(t, err)
	assert.Equal(t, entities.MaintenanceStatusScheduled, created.Status)
}

func TestMaintenanceCreateRejectsNegativeCost(t *testing.T) {
	api := &fakeMaintenanceAPI{}
	svc := newMaintenanceService(api)

	_, err := svc.Create(context.Background(), dto.CreateMaintenanceScheduleDTO{
		EquipmentID:     2,
		MaintenanceType: "Corrective",
		MaintenanceDate: "2025-09-01",
		MaintenanceCost: cost("-20"),
	})
	var invalid *apperrors.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Zero(t, api.addCalls, "a negative cost never reaches the backend")
}

func TestMaintenanceCreatePastDateWarnsWhenScheduled(t *testing.T) {
	api := &fakeMaintenanceAPI{}
	svc := newMaintenanceService(api)

	_, err := svc.Create(context.Background(), dto.CreateMaintenanceScheduleDTO{
		EquipmentID:     1,
		MaintenanceType: "Routine",
		MaintenanceDate: "2020-01-01",
		MaintenanceCost: cost("30"),
	})
	require.NoError(t, err, "the past date warns but does not block")
	assert.Equal(t, 1, api.addCalls)

	view, err := svc.View(context.Background(), dto.MaintenanceQueryDTO{})
	require.NoError(t, err)
	if assert.NotNil(t, view.Toast) {
		assert.Equal(t, listview.ToastWarning, view.Toast.Kind)
		assert.Equal(t, "Scheduled maintenance cannot be in the past", view.Toast.Message)
	}
}

func TestMaintenanceCreatePastDateQuietForCompleted(t *testing.T) {
	api := &fakeMaintenanceAPI{}
	svc := newMaintenanceService(api)

	_, err := svc.Create(context.Background(), dto.CreateMaintenanceScheduleDTO{
		EquipmentID:     1,
		MaintenanceType: "Routine",
		MaintenanceDate: "2020-01-01",
		MaintenanceCost: cost("30"),
		Status:          entities.MaintenanceStatusCompleted,
	})
	require.NoError(t, err)

	view, err := svc.View(context.Background(), dto.MaintenanceQueryDTO{})
	require.NoError(t, err)
	if assert.NotNil(t, view.Toast) {
		assert.Equal(t, listview.ToastSuccess, view.Toast.Kind)
	}
}

func TestMaintenanceEditCostValidatorBlocksNegative(t *testing.T) {
	api := &fakeMaintenanceAPI{schedules: scheduleBook()}
	svc := newMaintenanceService(api)
	_, err := svc.View(context.Background(), dto.MaintenanceQueryDTO{})
	require.NoError(t, err)

	require.NoError(t, svc.BeginEdit(1, "maintenanceCost"))
	require.NoError(t, svc.StageEdit("-5"))
	require.Error(t, svc.SaveEdit(context.Background()))
	assert.Zero(t, api.costUpdateCalls)
}

func TestMaintenanceEditCostCommitsDecimal(t *testing.T) {
	api := &fakeMaintenanceAPI{schedules: scheduleBook()}
	svc := newMaintenanceService(api)
	_, err := svc.View(context.Background(), dto.MaintenanceQueryDTO{})
	require.NoError(t, err)

	require.NoError(t, svc.BeginEdit(1, "maintenanceCost"))
	require.NoError(t, svc.StageEdit("150.50"))
	require.NoError(t, svc.SaveEdit(context.Background()))
	assert.Equal(t, 1, api.costUpdateCalls)
	assert.True(t, api.lastCost.Equal(cost("150.50")))
}

func TestMaintenanceDeleteRequiresConfirm(t *testing.T) {
	api := &fakeMaintenanceAPI{schedules: scheduleBook()}
	svc := newMaintenanceService(api)

	svc.RequestDelete(3)
	svc.DismissConfirmation()
	assert.Zero(t, api.deleteCalls)

	conf := svc.RequestDelete(3)
	require.NoError(t, svc.Confirm(conf.ID))
	assert.Equal(t, 1, api.deleteCalls)
}

func TestSummarize(t *testing.T) {
	got := summarize(scheduleBook())

	assert.True(t, got.TotalCost.Equal(cost("535")))
	assert.True(t, got.AverageCost.Equal(cost("133.75")))
	assert.True(t, got.HighestCost.Equal(cost("300")))
	assert.True(t, got.LowestCost.Equal(cost("10")))

	require.Len(t, got.CostByType, 4)
	assert.Equal(t, "Emergency", got.CostByType[0].Type, "types come back largest spend first")
	assert.Equal(t, 1, got.CostByType[0].Count)

	require.Len(t, got.CostByMonth, 3)
	assert.Equal(t, "2025-01", got.CostByMonth[0].Month)
	assert.Equal(t, "2025-02", got.CostByMonth[1].Month)
	assert.True(t, got.CostByMonth[1].TotalCost.Equal(cost("225")))
}

func TestSummarizeEmpty(t *testing.T) {
	got := summarize(nil)
	assert.True(t, got.TotalCost.IsZero())
	assert.Empty(t, got.CostByType)
	assert.Empty(t, got.CostByMonth)
}
