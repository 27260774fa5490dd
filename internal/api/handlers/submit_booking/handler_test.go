package submit_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRK-ReservationService/internal/api/handlers"
	"github.com/m04kA/MRK-ReservationService/internal/domain"
	submitBooking "github.com/m04kA/MRK-ReservationService/internal/usecase/submit_booking"
	"github.com/m04kA/MRK-ReservationService/pkg/logger"
	"github.com/m04kA/MRK-ReservationService/pkg/money"
	"github.com/m04kA/MRK-ReservationService/pkg/ptr"
)

type fakeUseCase struct {
	got  *submitBooking.Request
	resp *submitBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *submitBooking.Request) (*submitBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(uc SubmitBookingUseCase, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/booking-sessions/{sessionId}/submit", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/booking-sessions/s1/submit", strings.NewReader(body)))
	return rec
}

func TestHandle_PaymentFailureIsNotAnError(t *testing.T) {
	uc := &fakeUseCase{resp: &domain.Confirmation{
		ReservationID:   77,
		ReservationCode: "RES-77",
		Variant:         domain.VariantEvent,
		Status:          domain.StatusPendingPayment,
		PaymentMethod:   domain.PaymentOnline,
		PaymentPlan:     domain.PlanDeposit,
		Total:           money.FromUnits(590),
		AmountDue:       money.FromUnits(295),
		PaymentFailed:   true,
		PaymentError:    ptr.Ptr("Su tarjeta fue rechazada"),
		Stages:          domain.NewStageOutcomes(),
	}}

	rec := serve(uc, `{"card":{"number":"4111111111111111","cvv":"123","expMonth":"12","expYear":"2030"}}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.got.Card)
	assert.Equal(t, "s1", uc.got.SessionID)
	assert.Equal(t, "4111111111111111", uc.got.Card.Number)

	var body handlers.ConfirmationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(77), body.ReservationID)
	assert.True(t, body.PaymentFailed)
	assert.True(t, body.CanRetryPayment)
	assert.Equal(t, money.FromUnits(590), body.PendingBalance)
	assert.Equal(t, domain.OutcomeSkipped, body.Stages[domain.StageNotify])
}

func TestHandle_EmptyBody(t *testing.T) {
	uc := &fakeUseCase{resp: &domain.Confirmation{ReservationID: 1, Status: domain.StatusPending, Stages: domain.NewStageOutcomes()}}

	rec := serve(uc, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, uc.got.Card)
	assert.Empty(t, uc.got.CardToken)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{err: submitBooking.ErrSessionNotFound, wantStatus: http.StatusNotFound},
		{err: submitBooking.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{err: submitBooking.ErrSubmissionInProgress, wantStatus: http.StatusConflict},
		{err: fmt.Errorf("%w: step 3", submitBooking.ErrNotReady), wantStatus: http.StatusUnprocessableEntity},
		{err: submitBooking.ErrPaymentDetailsRequired, wantStatus: http.StatusBadRequest},
		{err: submitBooking.ErrInvalidCard, wantStatus: http.StatusBadRequest},
		{err: submitBooking.ErrSlotTaken, wantStatus: http.StatusConflict},
		{err: submitBooking.ErrReservationUnavailable, wantStatus: http.StatusServiceUnavailable},
		{err: submitBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, `{"cardToken":"tkn_1"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
