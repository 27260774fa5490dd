package reservationservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRK-ReservationService/pkg/logger"
	"github.com/m04kA/MRK-ReservationService/pkg/metrics"
)

func newTestClient(url string) *Client {
	return NewClient(url, time.Second, metrics.Noop{}, logger.NewNop())
}

func TestClient_Create(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/reservation", r.URL.Path)

		var req CreateReservationRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "MESA", req.ReservationType)
		assert.Equal(t, "PENDIENTE", req.Status)
		assert.Len(t, req.Products, 1)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":101,"code":"MRK-101","status":"PENDIENTE"}`))
	}))
	defer srv.Close()

	res, err := newTestClient(srv.URL).Create(context.Background(), &CreateReservationRequest{
		ReservationDate: "2026-10-20",
		ReservationTime: "19:00",
		PeopleCount:     2,
		PaymentMethod:   "TARJETA",
		ReservationType: "MESA",
		Status:          "PENDIENTE",
		Products:        []ProductLine{{ProductID: 1, Quantity: 1, Subtotal: 45}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(101), res.ID)
	assert.Equal(t, "MRK-101", res.Code)
}

func TestClient_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   error
	}{
		{name: "not found", status: http.StatusNotFound, want: ErrReservationNotFound},
		{name: "bad request", status: http.StatusBadRequest, want: ErrInvalidRequest},
		{name: "conflict", status: http.StatusConflict, want: ErrConflict},
		{name: "server error", status: http.StatusServiceUnavailable, want: ErrServiceUnavailable},
		{name: "forbidden", status: http.StatusForbidden, want: ErrInvalidResponse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			_, err := newTestClient(srv.URL).GetByID(context.Background(), 5)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestClient_Availability(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-10-20", r.URL.Query().Get("date"))
		switch r.URL.Path {
		case "/reservation/availability":
			_, _ = w.Write([]byte(`[{"time":"18:00","available":true,"tables":[{"id":1,"name":"T01","available":true}]},{"time":"18:30","available":false,"tables":[]}]`))
		case "/reservation/event-shifts/availability":
			_, _ = w.Write([]byte(`{"availableShifts":[1,3],"occupiedShifts":[2]}`))
		}
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	slots, err := c.GetTableAvailability(context.Background(), "2026-10-20")
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.True(t, slots[0].Available)
	assert.Len(t, slots[0].Tables, 1)

	shifts, err := c.GetEventShiftAvailability(context.Background(), "2026-10-20")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, shifts.AvailableShifts)
	assert.Equal(t, []int64{2}, shifts.OccupiedShifts)
}

func TestClient_UpdateStatusAndCancel(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		paths = append(paths, r.URL.Path)
		_, _ = w.Write([]byte(`{"id":7,"status":"PAGADO"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	res, err := c.UpdateStatus(context.Background(), 7, &UpdateStatusRequest{Status: "PAGADO", TransactionID: "ch_1"})
	require.NoError(t, err)
	assert.Equal(t, "PAGADO", res.Status)

	_, err = c.Cancel(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"/reservation/7/status", "/reservation/7/cancel"}, paths)
}

func TestClient_ErrorBodyIsTruncated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(strings.Repeat("y", 1<<20)))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetByID(context.Background(), 5)
	require.ErrorIs(t, err, ErrConflict)
	assert.Less(t, len(err.Error()), maxErrorBodySize+256)
}
