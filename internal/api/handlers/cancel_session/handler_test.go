package cancel_session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/MRK-ReservationService/internal/service/drafts"
	"github.com/m04kA/MRK-ReservationService/pkg/logger"
)

type fakeService struct {
	err       error
	cancelled []string
}

func (f *fakeService) Cancel(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.cancelled = append(f.cancelled, id)
	return nil
}

func serve(svc DraftService) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/booking-sessions/{sessionId}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodDelete)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/booking-sessions/s-7", nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
	assert.Equal(t, []string{"s-7"}, svc.cancelled)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: drafts.ErrSessionNotFound}).Code)
	assert.Equal(t, http.StatusForbidden, serve(&fakeService{err: drafts.ErrAccessDenied}).Code)
}
