package domain

import (
	"time"

	"github.com/m04kA/MRK-ReservationService/pkg/types"
)

// SlotSource источник данных о доступности
type SlotSource string

const (
	SourceLive     SlotSource = "live"
	SourceFallback SlotSource = "fallback"
)

// SlotTable стол, привязанный к слоту
type SlotTable struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// AvailabilitySlot время (столы) или смена (события) с признаком доступности
type AvailabilitySlot struct {
	Key       string           `json:"key"`
	Label     string           `json:"label"`
	Time      types.TimeString `json:"time,omitempty"`
	ShiftID   int64            `json:"shiftId,omitempty"`
	Available bool             `json:"available"`
	Tables    []SlotTable      `json:"tables,omitempty"`
}

// AvailabilitySnapshot доступность на дату; неизменяема после построения
type AvailabilitySnapshot struct {
	Date       string             `json:"date"`
	Variant    Variant            `json:"variant"`
	Source     SlotSource         `json:"source"`
	Reason     string             `json:"reason,omitempty"`
	Slots      []AvailabilitySlot `json:"slots"`
	ResolvedAt time.Time          `json:"resolvedAt"`
}

// IsFallback true, если слоты сгенерированы локально
func (s *AvailabilitySnapshot) IsFallback() bool {
	return s.Source == SourceFallback
}

// Find ищет слот по ключу
func (s *AvailabilitySnapshot) Find(key string) (*AvailabilitySlot, bool) {
	for i := range s.Slots {
		if s.Slots[i].Key == key {
			return &s.Slots[i], true
		}
	}
	return nil, false
}

// IsAvailable true, если слот существует и свободен
func (s *AvailabilitySnapshot) IsAvailable(key string) bool {
	slot, ok := s.Find(key)
	return ok && slot.Available
}

// FirstAvailable первый свободный слот
func (s *AvailabilitySnapshot) FirstAvailable() (*AvailabilitySlot, bool) {
	for i := range s.Slots {
		if s.Slots[i].Available {
			return &s.Slots[i], true
		}
	}
	return nil, false
}
