package models

import (
	"time"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/service/pricing"
)

// SessionView состояние сессии для клиента: черновик, итоги и положение в мастере
type SessionView struct {
	ID      string
	Variant domain.Variant

	Step         int
	StepLabel    string
	DisplayIndex int
	StepLabels   []string
	CanProceed   bool // условие текущего шага выполнено
	IsFinal      bool // из текущего шага можно только оформить бронирование
	CanSubmit    bool

	Draft        *domain.ReservationDraft
	Totals       pricing.Totals
	Availability *domain.AvailabilitySnapshot
	Inventory    []domain.SlotTable
	Degraded     bool // доступность построена по резервной эвристике

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NavigateAction действие навигации по мастеру
type NavigateAction string

const (
	ActionNext NavigateAction = "next"
	ActionPrev NavigateAction = "prev"
	ActionGoTo NavigateAction = "goto"
)
