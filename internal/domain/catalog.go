package domain

import (
	"strings"

	"github.com/m04kA/MRK-ReservationService/pkg/money"
	"github.com/m04kA/MRK-ReservationService/pkg/types"
)

// MenuItem позиция меню из management-service
type MenuItem struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Category    string       `json:"category,omitempty"`
	Price       money.Amount `json:"price"`
	Available   bool         `json:"available"`
}

// ServiceCategory категория дополнительной услуги
type ServiceCategory string

const (
	CategoryEntertainment ServiceCategory = "entertainment"
	CategoryService       ServiceCategory = "service"
	CategoryCatering      ServiceCategory = "catering"
)

// ParseServiceCategory категория услуги по типу из management-service
func ParseServiceCategory(raw string) ServiceCategory {
	s := strings.ToLower(raw)
	for _, marker := range []string{"entretenimiento", "entertainment", "animacion", "musica"} {
		if strings.Contains(s, marker) {
			return CategoryEntertainment
		}
	}
	for _, marker := range []string{"catering", "comida", "bebida", "gastronomia", "alimentacion"} {
		if strings.Contains(s, marker) {
			return CategoryCatering
		}
	}
	return CategoryService
}

// AdditionalService дополнительная услуга для события (фиксированная цена)
type AdditionalService struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Unit        string          `json:"unit,omitempty"`
	Price       money.Amount    `json:"price"`
	Category    ServiceCategory `json:"category"`
}

// TableShape форма стола
type TableShape string

const (
	ShapeRound  TableShape = "round"
	ShapeSquare TableShape = "square"
)

const DefaultTableLocation = "Interior"

// Table стол ресторана
type Table struct {
	ID        int64      `json:"id"`
	Code      string     `json:"code"`
	Capacity  int        `json:"capacity"`
	Shape     TableShape `json:"shape"`
	Location  string     `json:"location"`
	Available bool       `json:"available"`
}

// CanSeat true, если стол свободен и вмещает гостей
func (t *Table) CanSeat(guests int) bool {
	return t.Available && t.Capacity >= guests
}

// ParseTableShape нормализует форму стола из произвольного описания
func ParseTableShape(raw string) TableShape {
	s := strings.ToLower(raw)
	for _, marker := range []string{"redond", "circular", "round", "circle"} {
		if strings.Contains(s, marker) {
			return ShapeRound
		}
	}
	return ShapeSquare
}

// EventType тип события с базовой ценой
type EventType struct {
	ID          string       `json:"id"`
	RemoteID    int64        `json:"remoteId"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	BasePrice   money.Amount `json:"basePrice"`
}

// TableDistribution расстановка столов на событии
type TableDistribution struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	MaxCapacity int          `json:"maxCapacity"`
	Price       money.Amount `json:"price"`
}

// LinenColor цвет скатертей
type LinenColor struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	HexColor string       `json:"hexColor"`
	Price    money.Amount `json:"price"`
}

// EventShift смена (временной блок) для событий
type EventShift struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
	Price     money.Amount     `json:"price"`
}

// TimeRange строка вида "08:00 - 12:00"
func (s *EventShift) TimeRange() string {
	return s.StartTime.String() + " - " + s.EndTime.String()
}
