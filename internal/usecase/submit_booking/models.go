package submit_booking

import (
	"time"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/paymentservice"
)

// Request модель запроса на оформление бронирования
type Request struct {
	SessionID string
	Card      *paymentservice.Card // данные карты, если шлюз не выдал токен браузеру
	CardToken string               // токен, полученный браузером от шлюза
}

// Response итог оформления
type Response = domain.Confirmation

// Config параметры оформления
type Config struct {
	ProcessingTTL time.Duration // время жизни флага оформления
}
