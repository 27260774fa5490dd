package domain

import (
	"crypto/subtle"
	"time"

	"github.com/m04kA/MRK-ReservationService/pkg/money"
)

// ReservationStatus статус бронирования в reservation-service
type ReservationStatus string

const (
	StatusPending        ReservationStatus = "PENDIENTE"
	StatusPendingPayment ReservationStatus = "PENDIENTE_PAGO"
	StatusPaid           ReservationStatus = "PAGADO"
	StatusPartiallyPaid  ReservationStatus = "PAGO_PARCIAL"
	StatusConfirmed      ReservationStatus = "CONFIRMADA"
	StatusCancelled      ReservationStatus = "CANCELADO"
)

// CanBeCancelled true, если бронирование ещё можно отменить
func (s ReservationStatus) CanBeCancelled() bool {
	return s != StatusCancelled
}

// Confirmation итог оформления бронирования, который видит клиент на экране подтверждения.
// Сохраняется после создания бронирования, даже если оплата не прошла.
type Confirmation struct {
	ReservationID   int64
	ReservationCode string
	Variant         Variant
	Status          ReservationStatus

	// AccessToken выдаётся при оформлении; без него гостевое подтверждение не читается
	AccessToken string

	CustomerID    *int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	Date   string
	Slot   string // время "HH:MM" или id смены
	Guests int

	PaymentMethod PaymentMethod
	PaymentPlan   PaymentPlan
	Total         money.Amount
	AmountDue     money.Amount // сумма, которую нужно было списать онлайн
	AmountPaid    money.Amount

	TransactionID *string
	PaymentFailed bool
	PaymentError  *string

	StatusUpdateFailed bool
	NotificationFailed bool

	Stages StageOutcomes

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AccessibleBy доступ к подтверждению: по токену подтверждения или клиенту-владельцу
func (c *Confirmation) AccessibleBy(customerID *int64, token string) bool {
	if token != "" && c.AccessToken != "" &&
		subtle.ConstantTimeCompare([]byte(token), []byte(c.AccessToken)) == 1 {
		return true
	}
	return c.CustomerID != nil && customerID != nil && *c.CustomerID == *customerID
}

// NeedsPaymentRetry true, если бронирование создано, а онлайн-оплата не прошла
func (c *Confirmation) NeedsPaymentRetry() bool {
	return c.PaymentFailed && c.AmountDue > c.AmountPaid && c.Status != StatusCancelled
}

// OutstandingAmount сумма, которую ещё нужно оплатить онлайн
func (c *Confirmation) OutstandingAmount() money.Amount {
	if c.AmountDue <= c.AmountPaid {
		return 0
	}
	return c.AmountDue - c.AmountPaid
}

// InitialStatus статус при создании: нечего оплачивать или ожидается оплата
func InitialStatus(total money.Amount) ReservationStatus {
	if total.IsPositive() {
		return StatusPendingPayment
	}
	return StatusPending
}

// PaidStatus статус после успешной онлайн-оплаты; депозит события оплачивает бронирование частично
func PaidStatus(v Variant, plan PaymentPlan) ReservationStatus {
	if v == VariantEvent && plan != PlanFull {
		return StatusPartiallyPaid
	}
	return StatusPaid
}

// EffectiveMethod способ оплаты для оформления; без выбранного способа оплата проходит в ресторане
func EffectiveMethod(m PaymentMethod) PaymentMethod {
	if !m.IsValid() {
		return PaymentPresential
	}
	return m
}
