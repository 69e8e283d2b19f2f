package gymapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gym-admin/internal/dto"
	"gym-admin/internal/entities"
	apperrors "gym-admin/pkg/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, zap.NewNop())
}

func TestSearchEquipmentUsesCapitalisedParam(t *testing.T) {
	var gotURL string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		_ = json.NewEncoder(w).Encode([]entities.Equipment{{ID: 3, Name: "Treadmill"}})
	})

	out, err := client.SearchEquipment(context.Background(), "tread")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "/api/equipment/search?Search=tread", gotURL)
}

func TestUpdateEquipmentMaintenanceDatePath(t *testing.T) {
	var gotMethod, gotURL string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotURL = r.URL.String()
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, client.UpdateEquipmentMaintenanceDate(context.Background(), 7, "2025-06-01"))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/equipment/7/Maintenance?maintenanceDate=2025-06-01", gotURL)
}

func TestUpdateMaintenanceDateParamSpelling(t *testing.T) {
	var gotURL string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, client.UpdateMaintenanceDate(context.Background(), 12, "2025-07-15"))
	assert.Equal(t, "/api/maintenance-schedule/12/MaintenanceDate?date=2025-07-15", gotURL)
}

func TestUpdateMaintenanceCostSendsDecimalAsQuery(t *testing.T) {
	var gotURL string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		w.WriteHeader(http.StatusOK)
	})

	cost := decimal.RequireFromString("150.50")
	require.NoError(t, client.UpdateMaintenanceCost(context.Background(), 4, cost))
	assert.Equal(t, "/api/maintenance-schedule/4/cost?cost=150.50", gotURL)

	whole := decimal.RequireFromString("200")
	require.NoError(t, client.UpdateMaintenanceCost(context.Background(), 4, whole))
	assert.Equal(t, "/api/maintenance-schedule/4/cost?cost=200.00", gotURL,
		"cost values are rescaled to two decimal places")
}

func TestListTicketsUsesSearchEndpoint(t *testing.T) {
	var gotURL string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		_ = json.NewEncoder(w).Encode([]entities.Ticket{
			{ID: 1, Type: "Billing", Status: entities.TicketStatusOpen, Priority: entities.TicketPriorityMedium},
		})
	})

	out, err := client.ListTickets(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "/api/tickets/search", gotURL)
}

func TestAssignTicketSendsStaffIDBody(t *testing.T) {
	var gotBody dto.AssignTicketDTO
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(entities.Ticket{ID: 9, Status: entities.TicketStatusInProgress})
	})

	updated, err := client.AssignTicket(context.Background(), 9, 42)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), gotBody.StaffID)
	assert.Equal(t, entities.TicketStatusInProgress, updated.Status)
}

func TestNotFoundMapsToSentinel(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such equipment", http.StatusNotFound)
	})

	_, err := client.GetEquipment(context.Background(), 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
}

func TestServerErrorMapsToUpstreamUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.ListMaintenanceSchedules(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestUnreachableBackendMapsToUpstreamUnavailable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second, zap.NewNop())

	_, err := client.MonthlyCosts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestMonthlyCostsDecodesDecimalTotals(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"month":"2025-03","totalCost":1250.75},{"month":"2025-04","totalCost":310}]`))
	})

	out, err := client.MonthlyCosts(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "2025-03", out[0].Month)
	assert.True(t, out[0].TotalCost.Equal(decimal.RequireFromString("1250.75")))
}

func TestFilterCostsByMonthQuery(t *testing.T) {
	var gotURL string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.FilterCostsByMonth(context.Background(), "2025-06")
	require.NoError(t, err)
	assert.Equal(t, "/api/filter-monthly-cost?month=2025-06", gotURL)
}
