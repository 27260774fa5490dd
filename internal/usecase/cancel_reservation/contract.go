package cancel_reservation

import (
	"context"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/identity"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/notificationservice"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/reservationservice"
)

// ReservationClient интерфейс клиента reservation-service
type ReservationClient interface {
	GetByID(ctx context.Context, id int64) (*reservationservice.Reservation, error)
	Cancel(ctx context.Context, id int64) (*reservationservice.Reservation, error)
}

// Notifier отправляет уведомление об отмене
type Notifier interface {
	NotifyCancelled(ctx context.Context, n *notificationservice.ReservationNotification) error
}

// ConfirmationRepository интерфейс репозитория подтверждений
type ConfirmationRepository interface {
	UpdateStatus(ctx context.Context, reservationID int64, status domain.ReservationStatus) error
}

// IdentityProvider текущий аутентифицированный клиент
type IdentityProvider interface {
	Current(ctx context.Context) (*identity.Identity, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
