package catalog

import (
	"context"

	"github.com/m04kA/MRK-ReservationService/internal/integrations/catalogservice"
)

// Source клиент management-service
type Source interface {
	ListProducts(ctx context.Context) ([]catalogservice.Product, error)
	ListTables(ctx context.Context) ([]catalogservice.Table, error)
	ListServices(ctx context.Context) ([]catalogservice.Service, error)
}

// Cache кеш справочников
type Cache interface {
	Get(ctx context.Context, name string, dst interface{}) (bool, error)
	Set(ctx context.Context, name string, v interface{}) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
