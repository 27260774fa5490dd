package handlers

import (
	"time"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/pkg/money"
)

// ConfirmationResponse итог оформления бронирования
type ConfirmationResponse struct {
	ReservationID   int64                    `json:"reservationId"`
	ReservationCode string                   `json:"reservationCode"`
	Variant         domain.Variant           `json:"variant"`
	Status          domain.ReservationStatus `json:"status"`
	AccessToken     string                   `json:"accessToken,omitempty"`

	CustomerName  string `json:"customerName,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`

	Date   string `json:"date"`
	Slot   string `json:"slot"`
	Guests int    `json:"guests"`

	PaymentMethod  domain.PaymentMethod `json:"paymentMethod,omitempty"`
	PaymentPlan    domain.PaymentPlan   `json:"paymentPlan,omitempty"`
	Total          money.Amount         `json:"total"`
	AmountDue      money.Amount         `json:"amountDue"`
	AmountPaid     money.Amount         `json:"amountPaid"`
	PendingBalance money.Amount         `json:"pendingBalance"`

	TransactionID   *string `json:"transactionId,omitempty"`
	PaymentFailed   bool    `json:"paymentFailed"`
	PaymentError    *string `json:"paymentError,omitempty"`
	CanRetryPayment bool    `json:"canRetryPayment"`

	StatusUpdateFailed bool `json:"statusUpdateFailed"`
	NotificationFailed bool `json:"notificationFailed"`

	Stages    domain.StageOutcomes `json:"stages"`
	CreatedAt string               `json:"createdAt,omitempty"`
}

// FromConfirmation конвертирует подтверждение в HTTP ответ
func FromConfirmation(c *domain.Confirmation) *ConfirmationResponse {
	resp := &ConfirmationResponse{
		ReservationID:      c.ReservationID,
		ReservationCode:    c.ReservationCode,
		Variant:            c.Variant,
		Status:             c.Status,
		AccessToken:        c.AccessToken,
		CustomerName:       c.CustomerName,
		CustomerEmail:      c.CustomerEmail,
		CustomerPhone:      c.CustomerPhone,
		Date:               c.Date,
		Slot:               c.Slot,
		Guests:             c.Guests,
		PaymentMethod:      c.PaymentMethod,
		PaymentPlan:        c.PaymentPlan,
		Total:              c.Total,
		AmountDue:          c.AmountDue,
		AmountPaid:         c.AmountPaid,
		TransactionID:      c.TransactionID,
		PaymentFailed:      c.PaymentFailed,
		PaymentError:       c.PaymentError,
		CanRetryPayment:    c.NeedsPaymentRetry(),
		StatusUpdateFailed: c.StatusUpdateFailed,
		NotificationFailed: c.NotificationFailed,
		Stages:             c.Stages,
	}
	if c.Total > c.AmountPaid {
		resp.PendingBalance = c.Total - c.AmountPaid
	}
	if !c.CreatedAt.IsZero() {
		resp.CreatedAt = c.CreatedAt.Format(time.RFC3339)
	}
	return resp
}
