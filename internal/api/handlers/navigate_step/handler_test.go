package navigate_step

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/service/drafts"
	"github.com/m04kA/MRK-ReservationService/internal/service/drafts/models"
	"github.com/m04kA/MRK-ReservationService/pkg/logger"
)

type fakeDraftService struct {
	calls  int
	action models.NavigateAction
	target int
	err    error
}

func (f *fakeDraftService) Navigate(_ context.Context, id string, action models.NavigateAction, target int) (*models.SessionView, error) {
	f.calls++
	f.action = action
	f.target = target
	if f.err != nil {
		return nil, f.err
	}
	return &models.SessionView{ID: id, Variant: domain.VariantTable, Step: 2, Draft: domain.NewDraft(domain.VariantTable)}, nil
}

func serve(svc *fakeDraftService, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/booking-sessions/{sessionId}/steps", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/booking-sessions/s1/steps", strings.NewReader(body)))
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantCalls  int
	}{
		{name: "next", body: `{"action":"next"}`, wantStatus: http.StatusOK, wantCalls: 1},
		{name: "goto", body: `{"action":"goto","step":1}`, wantStatus: http.StatusOK, wantCalls: 1},
		{name: "goto without step", body: `{"action":"goto"}`, wantStatus: http.StatusBadRequest},
		{name: "unknown action", body: `{"action":"jump"}`, wantStatus: http.StatusBadRequest},
		{name: "gate not satisfied", body: `{"action":"next"}`, err: drafts.ErrStepBlocked, wantStatus: http.StatusUnprocessableEntity, wantCalls: 1},
		{name: "forward goto", body: `{"action":"goto","step":5}`, err: drafts.ErrInvalidNavigation, wantStatus: http.StatusBadRequest, wantCalls: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeDraftService{err: tt.err}
			rec := serve(svc, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalls, svc.calls)
		})
	}
}
