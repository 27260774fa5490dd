package get_confirmation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRK-ReservationService/internal/api/handlers"
	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/identity"
	"github.com/m04kA/MRK-ReservationService/internal/infra/receipt"
	confirmationRepo "github.com/m04kA/MRK-ReservationService/internal/infra/storage/confirmation"
	"github.com/m04kA/MRK-ReservationService/internal/service/confirmations"
	"github.com/m04kA/MRK-ReservationService/pkg/logger"
	"github.com/m04kA/MRK-ReservationService/pkg/money"
)

type fakeService struct {
	err error
}

func (f fakeService) Get(_ context.Context, reservationID int64, _ string) (*domain.Confirmation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Confirmation{
		ReservationID:   reservationID,
		ReservationCode: "RES-15",
		Variant:         domain.VariantEvent,
		Status:          domain.StatusPendingPayment,
		Total:           money.FromUnits(1000),
		AmountDue:       money.FromUnits(500),
		PaymentFailed:   true,
	}, nil
}

func serve(svc ConfirmationService, path string) *httptest.ResponseRecorder {
	return serveWithToken(svc, path, "")
}

func serveWithToken(svc ConfirmationService, path, token string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/confirmations/{reservationId}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodGet)
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(handlers.ConfirmationTokenHeader, token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(fakeService{}, "/confirmations/15")
	require.Equal(t, http.StatusOK, rec.Code)

	var body handlers.ConfirmationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(15), body.ReservationID)
	assert.Equal(t, money.FromUnits(1000), body.PendingBalance)
	assert.True(t, body.CanRetryPayment)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(fakeService{}, "/confirmations/abc").Code)
	assert.Equal(t, http.StatusBadRequest, serve(fakeService{}, "/confirmations/0").Code)
	assert.Equal(t, http.StatusNotFound, serve(fakeService{err: confirmations.ErrNotFound}, "/confirmations/15").Code)
	assert.Equal(t, http.StatusForbidden, serve(fakeService{err: confirmations.ErrAccessDenied}, "/confirmations/15").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(fakeService{err: confirmations.ErrInternal}, "/confirmations/15").Code)
}

func TestHandle_GuestConfirmationNeedsToken(t *testing.T) {
	repo := confirmationRepo.NewMemoryRepository()
	require.NoError(t, repo.Save(context.Background(), &domain.Confirmation{
		ReservationID: 15, ReservationCode: "RES-15", Variant: domain.VariantTable, Status: domain.StatusPending,
		CustomerEmail: "ana@example.com", CustomerPhone: "+51987654321",
		AccessToken: "tok-15", Stages: domain.NewStageOutcomes(),
	}))
	svc := confirmations.NewService(repo, receipt.NewRenderer("Marakos Grill"), identity.ContextProvider{}, logger.NewNop())

	rec := serve(svc, "/confirmations/15")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.NotContains(t, rec.Body.String(), "ana@example.com")

	assert.Equal(t, http.StatusForbidden, serveWithToken(svc, "/confirmations/15", "tok-16").Code)

	rec = serveWithToken(svc, "/confirmations/15", "tok-15")
	require.Equal(t, http.StatusOK, rec.Code)
	var body handlers.ConfirmationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ana@example.com", body.CustomerEmail)

	assert.Equal(t, http.StatusOK, serve(svc, "/confirmations/15?token=tok-15").Code)
}
