package select_slot

import (
	"context"

	"github.com/m04kA/MRK-ReservationService/internal/service/drafts/models"
)

type DraftService interface {
	SelectSlot(ctx context.Context, id string, key string) (*models.SessionView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
