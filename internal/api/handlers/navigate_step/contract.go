package navigate_step

import (
	"context"

	"github.com/m04kA/MRK-ReservationService/internal/service/drafts/models"
)

type DraftService interface {
	Navigate(ctx context.Context, id string, action models.NavigateAction, target int) (*models.SessionView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
