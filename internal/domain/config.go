package domain

import (
	"github.com/m04kA/MRK-ReservationService/pkg/money"
	"github.com/m04kA/MRK-ReservationService/pkg/types"
)

// EventCatalog справочники для событий, которые задаются конфигурацией ресторана
type EventCatalog struct {
	EventTypes    []EventType
	Distributions []TableDistribution
	LinenColors   []LinenColor
	Shifts        []EventShift
}

// DefaultEventCatalog справочники по умолчанию
func DefaultEventCatalog() EventCatalog {
	return EventCatalog{
		EventTypes: []EventType{
			{ID: "cumpleanos", RemoteID: 1, Name: "Cumpleaños", Description: "Celebración especial", BasePrice: money.FromUnits(150)},
			{ID: "networking", RemoteID: 2, Name: "Evento de Networking", Description: "Reunión profesional", BasePrice: money.FromUnits(200)},
			{ID: "baby-shower", RemoteID: 3, Name: "Baby Shower", Description: "Celebración de bebé", BasePrice: money.FromUnits(120)},
			{ID: "boda", RemoteID: 4, Name: "Boda", Description: "Ceremonia matrimonial", BasePrice: money.FromUnits(500)},
		},
		Distributions: []TableDistribution{
			{ID: "redondas", Name: "Mesas Redondas", Description: "Perfectas para conversación", MaxCapacity: 8, Price: 0},
			{ID: "rectangulares", Name: "Mesas Rectangulares", Description: "Ideales para eventos formales", MaxCapacity: 10, Price: money.FromUnits(25)},
			{ID: "imperial", Name: "Mesa Imperial", Description: "Una gran mesa para todos", MaxCapacity: 50, Price: money.FromUnits(100)},
			{ID: "cocktail", Name: "Estilo Cocktail", Description: "Mesas altas para socializar", MaxCapacity: 6, Price: money.FromUnits(50)},
		},
		LinenColors: []LinenColor{
			{ID: "blanco", Name: "Blanco Clásico", HexColor: "#FFFFFF", Price: 0},
			{ID: "champagne", Name: "Champagne", HexColor: "#F7E7CE", Price: money.FromUnits(15)},
			{ID: "burdeos", Name: "Burdeos", HexColor: "#800020", Price: money.FromUnits(20)},
			{ID: "azul-marino", Name: "Azul Marino", HexColor: "#000080", Price: money.FromUnits(20)},
			{ID: "dorado", Name: "Dorado", HexColor: "#FFD700", Price: money.FromUnits(30)},
			{ID: "negro", Name: "Negro Elegante", HexColor: "#000000", Price: money.FromUnits(25)},
		},
		Shifts: []EventShift{
			{ID: 1, Name: "Mañana", StartTime: types.NewTimeString(8, 0), EndTime: types.NewTimeString(12, 0), Price: money.FromUnits(250)},
			{ID: 2, Name: "Tarde", StartTime: types.NewTimeString(13, 0), EndTime: types.NewTimeString(18, 0), Price: money.FromUnits(350)},
			{ID: 3, Name: "Noche", StartTime: types.NewTimeString(20, 0), EndTime: types.NewTimeString(0, 0), Price: money.FromUnits(450)},
		},
	}
}

func (c *EventCatalog) FindEventType(id string) (*EventType, bool) {
	for i := range c.EventTypes {
		if c.EventTypes[i].ID == id {
			et := c.EventTypes[i]
			return &et, true
		}
	}
	return nil, false
}

func (c *EventCatalog) FindDistribution(id string) (*TableDistribution, bool) {
	for i := range c.Distributions {
		if c.Distributions[i].ID == id {
			d := c.Distributions[i]
			return &d, true
		}
	}
	return nil, false
}

func (c *EventCatalog) FindLinenColor(id string) (*LinenColor, bool) {
	for i := range c.LinenColors {
		if c.LinenColors[i].ID == id {
			l := c.LinenColors[i]
			return &l, true
		}
	}
	return nil, false
}

func (c *EventCatalog) FindShift(id int64) (*EventShift, bool) {
	for i := range c.Shifts {
		if c.Shifts[i].ID == id {
			s := c.Shifts[i]
			return &s, true
		}
	}
	return nil, false
}
