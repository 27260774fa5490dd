package drafts

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/identity"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/customerservice"
)

// SessionStore хранилище сессий бронирования.
// Флаг оформления общий для изменений черновика и оформления бронирования.
type SessionStore interface {
	Save(ctx context.Context, session *domain.BookingSession) error
	Get(ctx context.Context, id string) (*domain.BookingSession, error)
	Delete(ctx context.Context, id string) error
	AcquireProcessing(ctx context.Context, id string, ttl time.Duration) (bool, error)
	ReleaseProcessing(ctx context.Context, id string) error
}

// CatalogService справочники ресторана
type CatalogService interface {
	GetMenuItem(ctx context.Context, id int64) (*domain.MenuItem, error)
	GetAdditionalService(ctx context.Context, id int64) (*domain.AdditionalService, error)
	GetTable(ctx context.Context, id int64) (*domain.Table, error)
	EventCatalog() domain.EventCatalog
}

// CustomerDirectory профиль клиента для предзаполнения черновика
type CustomerDirectory interface {
	GetCustomer(ctx context.Context, customerID int64) (*customerservice.Customer, error)
}

// IdentityProvider текущий аутентифицированный клиент
type IdentityProvider interface {
	Current(ctx context.Context) (*identity.Identity, bool)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// IDGenerator генератор id сессий
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// UUIDGenerator случайные UUID v4
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
