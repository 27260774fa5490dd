package domain

import "time"

// BookingSession живой черновик одной вкладки браузера вместе с положением в мастере
type BookingSession struct {
	ID           string                `json:"id"`
	Variant      Variant               `json:"variant"`
	Step         int                   `json:"step"`
	Draft        *ReservationDraft     `json:"draft"`
	Availability *AvailabilitySnapshot `json:"availability,omitempty"`
	// Inventory столы выбранного слота по данным reservation-service
	Inventory  []SlotTable `json:"inventory,omitempty"`
	CustomerID *int64      `json:"customerId,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// RefreshInventory пересобирает инвентарь столов из выбранного слота
func (s *BookingSession) RefreshInventory() {
	s.Inventory = nil
	if s.Availability == nil || s.Availability.IsFallback() {
		return
	}
	slot, ok := s.Availability.Find(s.Draft.SlotKey())
	if !ok || len(slot.Tables) == 0 {
		return
	}
	s.Inventory = append([]SlotTable{}, slot.Tables...)
}

// TableAvailability доступность стола в выбранном слоте; known=false если данных нет
func (s *BookingSession) TableAvailability(tableID int64) (available bool, known bool) {
	if len(s.Inventory) == 0 {
		return false, false
	}
	for _, t := range s.Inventory {
		if t.ID == tableID {
			return t.Available, true
		}
	}
	return false, true
}
