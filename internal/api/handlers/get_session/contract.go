package get_session

import (
	"context"

	"github.com/m04kA/MRK-ReservationService/internal/service/drafts/models"
)

type DraftService interface {
	Get(ctx context.Context, id string) (*models.SessionView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
