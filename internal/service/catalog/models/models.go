package models

import "github.com/m04kA/MRK-ReservationService/internal/domain"

// Catalog справочные данные для мастера бронирования
type Catalog struct {
	Variant       domain.Variant             `json:"variant"`
	Menu          []domain.MenuItem          `json:"menu"`
	Tables        []domain.Table             `json:"tables,omitempty"`
	Services      []domain.AdditionalService `json:"services,omitempty"`
	EventTypes    []domain.EventType         `json:"eventTypes,omitempty"`
	Distributions []domain.TableDistribution `json:"distributions,omitempty"`
	LinenColors   []domain.LinenColor        `json:"linenColors,omitempty"`
	Shifts        []domain.EventShift        `json:"shifts,omitempty"`
}
