package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/service/drafts"
	"github.com/m04kA/MRK-ReservationService/internal/service/drafts/models"
	"github.com/m04kA/MRK-ReservationService/internal/service/pricing"
	"github.com/m04kA/MRK-ReservationService/pkg/money"
)

const (
	msgSessionNotFound     = "la sesión de reserva no existe o ha expirado"
	msgSessionForbidden    = "no tiene acceso a esta sesión de reserva"
	msgInvalidDraftInput   = "los datos ingresados no son válidos"
	msgWrongVariant        = "esta opción no está disponible para este tipo de reserva"
	msgUnknownReference    = "el elemento seleccionado no existe"
	msgItemUnavailable     = "el plato seleccionado no está disponible"
	msgTableUnavailable    = "la mesa seleccionada no está disponible para el número de invitados"
	msgMenuNotIncluded     = "active la opción de menú para agregar platos"
	msgAvailabilityMissing = "consulte primero la disponibilidad de la fecha"
	msgStepBlocked         = "complete la información del paso actual para continuar"
	msgInvalidNavigation   = "no es posible ir a ese paso"
	msgCatalogUnavailable  = "el catálogo no está disponible en este momento, inténtelo más tarde"
	msgSessionBusy         = "su reserva se está procesando, espere un momento"
)

// TotalsResponse итоги черновика
type TotalsResponse struct {
	BaseSubtotal      money.Amount `json:"baseSubtotal"`
	MenuSubtotal      money.Amount `json:"menuSubtotal"`
	ServicesSubtotal  money.Amount `json:"servicesSubtotal"`
	Subtotal          money.Amount `json:"subtotal"`
	Surcharge         money.Amount `json:"surcharge"`
	Tax               money.Amount `json:"tax"`
	Total             money.Amount `json:"total"`
	Deposit           money.Amount `json:"deposit"`
	Remaining         money.Amount `json:"remaining"`
	FullPaymentAmount money.Amount `json:"fullPaymentAmount"`
	AmountDue         money.Amount `json:"amountDue"`
}

// SessionResponse состояние сессии бронирования
type SessionResponse struct {
	ID           string                       `json:"id"`
	Variant      domain.Variant               `json:"variant"`
	Step         int                          `json:"step"`
	StepLabel    string                       `json:"stepLabel"`
	DisplayIndex int                          `json:"displayIndex"`
	StepLabels   []string                     `json:"stepLabels"`
	CanProceed   bool                         `json:"canProceed"`
	IsFinal      bool                         `json:"isFinal"`
	CanSubmit    bool                         `json:"canSubmit"`
	Draft        *domain.ReservationDraft     `json:"draft"`
	Totals       TotalsResponse               `json:"totals"`
	Availability *domain.AvailabilitySnapshot `json:"availability,omitempty"`
	Inventory    []domain.SlotTable           `json:"inventory,omitempty"`
	Degraded     bool                         `json:"degraded"`
	CreatedAt    string                       `json:"createdAt"`
	UpdatedAt    string                       `json:"updatedAt"`
}

// FromSessionView конвертирует состояние сессии в HTTP ответ
func FromSessionView(v *models.SessionView) *SessionResponse {
	return &SessionResponse{
		ID:           v.ID,
		Variant:      v.Variant,
		Step:         v.Step,
		StepLabel:    v.StepLabel,
		DisplayIndex: v.DisplayIndex,
		StepLabels:   v.StepLabels,
		CanProceed:   v.CanProceed,
		IsFinal:      v.IsFinal,
		CanSubmit:    v.CanSubmit,
		Draft:        v.Draft,
		Totals:       fromTotals(v.Totals),
		Availability: v.Availability,
		Inventory:    v.Inventory,
		Degraded:     v.Degraded,
		CreatedAt:    v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    v.UpdatedAt.Format(time.RFC3339),
	}
}

func fromTotals(t pricing.Totals) TotalsResponse {
	return TotalsResponse{
		BaseSubtotal:      t.BaseSubtotal,
		MenuSubtotal:      t.MenuSubtotal,
		ServicesSubtotal:  t.ServicesSubtotal,
		Subtotal:          t.Subtotal,
		Surcharge:         t.Surcharge,
		Tax:               t.Tax,
		Total:             t.Total,
		Deposit:           t.Deposit,
		Remaining:         t.Remaining,
		FullPaymentAmount: t.FullPaymentAmount,
		AmountDue:         t.AmountDue,
	}
}

// RespondDraftError отвечает на ошибку сервиса сессий.
// Возвращает false для внутренних ошибок, которые вызывающий должен залогировать как Error.
func RespondDraftError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, drafts.ErrSessionNotFound):
		RespondNotFound(w, msgSessionNotFound)
	case errors.Is(err, drafts.ErrAccessDenied):
		RespondForbidden(w, msgSessionForbidden)
	case errors.Is(err, drafts.ErrWrongVariant):
		RespondBadRequest(w, msgWrongVariant)
	case errors.Is(err, drafts.ErrUnknownReference):
		RespondNotFound(w, msgUnknownReference)
	case errors.Is(err, drafts.ErrItemUnavailable):
		RespondConflict(w, msgItemUnavailable)
	case errors.Is(err, drafts.ErrTableUnavailable):
		RespondConflict(w, msgTableUnavailable)
	case errors.Is(err, drafts.ErrMenuNotIncluded):
		RespondBadRequest(w, msgMenuNotIncluded)
	case errors.Is(err, drafts.ErrAvailabilityNotResolved):
		RespondBadRequest(w, msgAvailabilityMissing)
	case errors.Is(err, drafts.ErrStepBlocked):
		RespondError(w, http.StatusUnprocessableEntity, msgStepBlocked)
	case errors.Is(err, drafts.ErrInvalidNavigation):
		RespondBadRequest(w, msgInvalidNavigation)
	case errors.Is(err, drafts.ErrSessionBusy):
		RespondConflict(w, msgSessionBusy)
	case errors.Is(err, drafts.ErrCatalogUnavailable):
		RespondServiceUnavailable(w, msgCatalogUnavailable)
	case errors.Is(err, drafts.ErrInvalidInput):
		RespondBadRequest(w, msgInvalidDraftInput)
	default:
		RespondInternalError(w)
		return false
	}
	return true
}
