package retry_payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRK-ReservationService/internal/api/handlers"
	"github.com/m04kA/MRK-ReservationService/internal/domain"
	retryPayment "github.com/m04kA/MRK-ReservationService/internal/usecase/retry_payment"
	"github.com/m04kA/MRK-ReservationService/pkg/logger"
	"github.com/m04kA/MRK-ReservationService/pkg/money"
)

type fakeUseCase struct {
	err      error
	requests []*retryPayment.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *retryPayment.Request) (*retryPayment.Response, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &retryPayment.Response{
		ReservationID:   req.ReservationID,
		ReservationCode: "RES-3",
		Status:          domain.StatusPaid,
		Total:           money.FromUnits(80),
		AmountDue:       money.FromUnits(80),
		AmountPaid:      money.FromUnits(80),
	}, nil
}

func serve(uc RetryPaymentUseCase, path, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/confirmations/{reservationId}/payment-retry", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodPost)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(handlers.ConfirmationTokenHeader, "tok-3")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{}
	body := `{"card":{"number":"4111111111111111","cvv":"123","expMonth":"12","expYear":"2030"}}`
	rec := serve(uc, "/confirmations/3/payment-retry", body)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, uc.requests, 1)
	assert.Equal(t, int64(3), uc.requests[0].ReservationID)
	assert.Equal(t, "tok-3", uc.requests[0].AccessToken)
	require.NotNil(t, uc.requests[0].Card)
	assert.Equal(t, "4111111111111111", uc.requests[0].Card.Number)

	var resp handlers.ConfirmationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.StatusPaid, resp.Status)
	assert.False(t, resp.CanRetryPayment)
}

func TestHandle_Token(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, "/confirmations/3/payment-retry", `{"cardToken":"tkn_1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, uc.requests[0].Card)
	assert.Equal(t, "tkn_1", uc.requests[0].CardToken)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{err: retryPayment.ErrConfirmationNotFound, wantStatus: http.StatusNotFound},
		{err: retryPayment.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{err: retryPayment.ErrNothingToRetry, wantStatus: http.StatusConflict},
		{err: retryPayment.ErrRetryInProgress, wantStatus: http.StatusConflict},
		{err: retryPayment.ErrPaymentDetailsRequired, wantStatus: http.StatusBadRequest},
		{err: retryPayment.ErrInvalidCard, wantStatus: http.StatusBadRequest},
		{err: retryPayment.ErrInternal, wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, serve(&fakeUseCase{err: tt.err}, "/confirmations/3/payment-retry", `{}`).Code)
		})
	}
}

func TestHandle_BadPath(t *testing.T) {
	uc := &fakeUseCase{}
	assert.Equal(t, http.StatusBadRequest, serve(uc, "/confirmations/-1/payment-retry", `{}`).Code)
	assert.Empty(t, uc.requests)
}
