package paymentservice

import "strconv"

// Статусы платежа в ответе сервиса оплаты
const (
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
	StatusError     = "ERROR"
)

// ChargeRequest тело POST /payment/culqi
type ChargeRequest struct {
	ReservationID   int64   `json:"reservationId"`
	Amount          float64 `json:"amount"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	PaymentMethod   string  `json:"paymentMethod"`
	Token           string  `json:"token,omitempty"`
	CardNumber      string  `json:"cardNumber,omitempty"`
	CVV             string  `json:"cvv,omitempty"`
	ExpirationMonth string  `json:"expirationMonth,omitempty"`
	ExpirationYear  string  `json:"expirationYear,omitempty"`
}

// ChargeResponse ответ сервиса оплаты
type ChargeResponse struct {
	TransactionID *int64  `json:"transactionId"`
	ReservationID int64   `json:"reservationId"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	ChargeID      string  `json:"culqiChargeId"`
	Currency      string  `json:"currency"`
	ReferenceCode string  `json:"referenceCode"`
	ErrorMessage  string  `json:"errorMessage"`
	CardLastFour  string  `json:"cardLastFour"`
}

// Reference идентификатор транзакции для подтверждения
func (r *ChargeResponse) Reference() string {
	switch {
	case r.ChargeID != "":
		return r.ChargeID
	case r.ReferenceCode != "":
		return r.ReferenceCode
	case r.TransactionID != nil:
		return strconv.FormatInt(*r.TransactionID, 10)
	default:
		return ""
	}
}

// Charge параметры списания, которые собирает сценарий оформления
type Charge struct {
	ReservationID int64
	Amount        float64
	CustomerEmail string
	CustomerName  string
	CustomerPhone string
	Token         *CardToken
}
