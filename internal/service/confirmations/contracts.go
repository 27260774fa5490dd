package confirmations

import (
	"context"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/identity"
)

// Repository интерфейс репозитория подтверждений
type Repository interface {
	GetByReservationID(ctx context.Context, reservationID int64) (*domain.Confirmation, error)
}

// ReceiptRenderer формирует PDF-квитанцию
type ReceiptRenderer interface {
	Render(c *domain.Confirmation) ([]byte, error)
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
