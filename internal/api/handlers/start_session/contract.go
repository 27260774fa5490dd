package start_session

import (
	"context"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/service/drafts/models"
)

type DraftService interface {
	Start(ctx context.Context, variant domain.Variant) (*models.SessionView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
