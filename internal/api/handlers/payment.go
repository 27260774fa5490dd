package handlers

import "github.com/m04kA/MRK-ReservationService/internal/integrations/paymentservice"

// CardRequest данные карты из формы оплаты
type CardRequest struct {
	Number   string `json:"number"`
	CVV      string `json:"cvv"`
	ExpMonth string `json:"expMonth"`
	ExpYear  string `json:"expYear"`
}

// PaymentRequest тело оформления и повторной оплаты: карта либо токен шлюза
type PaymentRequest struct {
	Card      *CardRequest `json:"card,omitempty"`
	CardToken string       `json:"cardToken,omitempty"`
}

// ToCard nil, если карта не передана
func (r *PaymentRequest) ToCard() *paymentservice.Card {
	if r.Card == nil {
		return nil
	}
	return &paymentservice.Card{
		Number:   r.Card.Number,
		CVV:      r.Card.CVV,
		ExpMonth: r.Card.ExpMonth,
		ExpYear:  r.Card.ExpYear,
	}
}
