package retry_payment

import (
	"context"
	"time"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/identity"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/notificationservice"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/paymentservice"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/reservationservice"
)

// ConfirmationRepository интерфейс репозитория подтверждений
type ConfirmationRepository interface {
	GetByReservationID(ctx context.Context, reservationID int64) (*domain.Confirmation, error)
	Save(ctx context.Context, c *domain.Confirmation) error
}

// ProcessingLock защищает бронирование от параллельных повторных списаний
type ProcessingLock interface {
	AcquireProcessing(ctx context.Context, id string, ttl time.Duration) (bool, error)
	ReleaseProcessing(ctx context.Context, id string) error
}

// ReservationClient интерфейс клиента reservation-service
type ReservationClient interface {
	UpdateStatus(ctx context.Context, id int64, req *reservationservice.UpdateStatusRequest) (*reservationservice.Reservation, error)
}

// PaymentClient интерфейс клиента сервиса оплаты
type PaymentClient interface {
	ProcessPayment(ctx context.Context, charge *paymentservice.Charge) (*paymentservice.ChargeResponse, error)
}

// CardTokenizer выпускает одноразовый токен карты
type CardTokenizer interface {
	Tokenize(c paymentservice.Card) (*paymentservice.CardToken, error)
}

// Notifier отправляет уведомление о бронировании
type Notifier interface {
	NotifyConfirmed(ctx context.Context, n *notificationservice.ReservationNotification) error
}

// IdentityProvider текущий аутентифицированный клиент
type IdentityProvider interface {
	Current(ctx context.Context) (*identity.Identity, bool)
}

// Metrics исходы стадий оплаты
type Metrics interface {
	ObserveStage(stage, outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
