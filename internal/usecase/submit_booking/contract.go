package submit_booking

import (
	"context"
	"time"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/notificationservice"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/paymentservice"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/reservationservice"
	"github.com/m04kA/MRK-ReservationService/internal/service/pricing"
	"github.com/m04kA/MRK-ReservationService/internal/service/wizard"
)

// ProcessingLock флаг "оформление уже идёт" для сессии
type ProcessingLock interface {
	AcquireProcessing(ctx context.Context, id string, ttl time.Duration) (bool, error)
	ReleaseProcessing(ctx context.Context, id string) error
}

// DraftService интерфейс сервиса черновиков
type DraftService interface {
	Load(ctx context.Context, id string) (*domain.BookingSession, error)
	Evaluate(session *domain.BookingSession) (pricing.Totals, wizard.Input)
	Discard(ctx context.Context, id string) error
}

// ReservationClient интерфейс клиента reservation-service
type ReservationClient interface {
	Create(ctx context.Context, req *reservationservice.CreateReservationRequest) (*reservationservice.Reservation, error)
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

// Notifier отправляет уведомление о бронировании (HTTP или брокер)
type Notifier interface {
	NotifyConfirmed(ctx context.Context, n *notificationservice.ReservationNotification) error
}

// ConfirmationRepository интерфейс репозитория подтверждений
type ConfirmationRepository interface {
	Save(ctx context.Context, c *domain.Confirmation) error
}

// Metrics исходы стадий конвейера
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
