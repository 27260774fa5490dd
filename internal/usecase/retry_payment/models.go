package retry_payment

import (
	"time"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/paymentservice"
)

// Request модель запроса повторной оплаты
type Request struct {
	ReservationID int64
	AccessToken   string // токен подтверждения, обязателен для гостевого бронирования
	Card          *paymentservice.Card
	CardToken     string
}

// Response обновлённое подтверждение
type Response = domain.Confirmation

// Config параметры повторной оплаты
type Config struct {
	ProcessingTTL time.Duration
}
