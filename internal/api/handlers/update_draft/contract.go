package update_draft

import (
	"context"

	"github.com/m04kA/MRK-ReservationService/internal/service/drafts"
	"github.com/m04kA/MRK-ReservationService/internal/service/drafts/models"
)

type DraftService interface {
	Apply(ctx context.Context, id string, m drafts.Mutation) (*models.SessionView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
