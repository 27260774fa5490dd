package get_catalog

import (
	"context"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/service/catalog/models"
)

type CatalogService interface {
	Snapshot(ctx context.Context, variant domain.Variant) (*models.Catalog, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
