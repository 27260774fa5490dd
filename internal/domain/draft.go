package domain

import (
	"strconv"

	"github.com/m04kA/MRK-ReservationService/pkg/types"
)

// Customer данные владельца бронирования
type Customer struct {
	DocumentType   DocumentType `json:"documentType,omitempty"`
	DocumentNumber string       `json:"documentNumber,omitempty"`
	Name           string       `json:"name,omitempty"`
	Email          string       `json:"email,omitempty"`
	Phone          string       `json:"phone,omitempty"`
}

// CustomerPatch частичное обновление данных клиента, nil поля не меняются
type CustomerPatch struct {
	DocumentType   *DocumentType
	DocumentNumber *string
	Name           *string
	Email          *string
	Phone          *string
}

// Schedule дата, время (столы) или смена (события) и количество гостей
type Schedule struct {
	Date   string           `json:"date,omitempty"`
	Time   types.TimeString `json:"time,omitempty"`
	Shift  *EventShift      `json:"shift,omitempty"`
	Guests int              `json:"guests"`
}

// EventConfig оформление зала для события
type EventConfig struct {
	Distribution *TableDistribution `json:"distribution,omitempty"`
	Linen        *LinenColor        `json:"linen,omitempty"`
}

// Resource выбранный ресурс: стол либо конфигурация события
type Resource struct {
	Table *Table       `json:"table,omitempty"`
	Event *EventConfig `json:"event,omitempty"`
}

// MenuLine позиция предзаказа
type MenuLine struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

// ReservationDraft бронирование в процессе заполнения мастера
type ReservationDraft struct {
	Variant         Variant             `json:"variant"`
	Customer        Customer            `json:"customer"`
	EventType       *EventType          `json:"eventType,omitempty"`
	Schedule        Schedule            `json:"schedule"`
	Resource        Resource            `json:"resource"`
	IncludeMenu     bool                `json:"includeMenu"`
	MenuItems       []MenuLine          `json:"menuItems"`
	Services        []AdditionalService `json:"services"`
	SpecialRequests string              `json:"specialRequests,omitempty"`
	TermsAccepted   bool                `json:"termsAccepted"`
	PaymentMethod   PaymentMethod       `json:"paymentMethod,omitempty"`
	PaymentPlan     PaymentPlan         `json:"paymentPlan,omitempty"`
}

// NewDraft пустой черновик для варианта мастера
func NewDraft(variant Variant) *ReservationDraft {
	d := &ReservationDraft{
		Variant:   variant,
		MenuItems: []MenuLine{},
		Services:  []AdditionalService{},
	}
	if variant == VariantEvent {
		d.Schedule.Guests = DefaultEventGuests
	} else {
		d.Schedule.Guests = DefaultTableGuests
		// у бронирования стола шаг меню есть всегда
		d.IncludeMenu = true
	}
	return d
}

// SetCustomer объединяет переданные поля с текущими данными клиента
func (d *ReservationDraft) SetCustomer(p CustomerPatch) {
	if p.DocumentType != nil {
		d.Customer.DocumentType = *p.DocumentType
	}
	if p.DocumentNumber != nil {
		d.Customer.DocumentNumber = *p.DocumentNumber
	}
	if p.Name != nil {
		d.Customer.Name = *p.Name
	}
	if p.Email != nil {
		d.Customer.Email = *p.Email
	}
	if p.Phone != nil {
		d.Customer.Phone = *p.Phone
	}
}

// SetEventType выбирает тип события
func (d *ReservationDraft) SetEventType(et *EventType) {
	d.EventType = et
}

// SetSchedule заменяет расписание, количество гостей приводится к границам варианта
func (d *ReservationDraft) SetSchedule(s Schedule, limits GuestLimits) {
	s.Guests = limits.Clamp(s.Guests)
	d.Schedule = s
}

// SetDate меняет дату и сбрасывает выбранный слот
func (d *ReservationDraft) SetDate(date string) {
	if d.Schedule.Date == date {
		return
	}
	d.Schedule.Date = date
	d.ClearSlot()
}

// SetGuests меняет количество гостей с учётом границ
func (d *ReservationDraft) SetGuests(guests int, limits GuestLimits) {
	d.Schedule.Guests = limits.Clamp(guests)
}

// SelectTime выбирает время (бронирование стола)
func (d *ReservationDraft) SelectTime(t types.TimeString) {
	d.Schedule.Time = t
	d.Schedule.Shift = nil
}

// SelectShift выбирает смену (событие)
func (d *ReservationDraft) SelectShift(s *EventShift) {
	d.Schedule.Shift = s
	d.Schedule.Time = ""
}

// ClearSlot сбрасывает выбранное время или смену
func (d *ReservationDraft) ClearSlot() {
	d.Schedule.Time = ""
	d.Schedule.Shift = nil
}

// SlotKey ключ выбранного слота ("HH:MM" или id смены), пустая строка если не выбран
func (d *ReservationDraft) SlotKey() string {
	if d.Schedule.Shift != nil {
		return ShiftKey(d.Schedule.Shift.ID)
	}
	return d.Schedule.Time.String()
}

// SelectTable заменяет выбранный ресурс столом
func (d *ReservationDraft) SelectTable(t Table) {
	d.Resource = Resource{Table: &t}
}

// SelectEventConfig заменяет выбранный ресурс конфигурацией события
func (d *ReservationDraft) SelectEventConfig(cfg EventConfig) {
	d.Resource = Resource{Event: &cfg}
}

// AddMenuItem добавляет позицию; повторное добавление увеличивает количество
func (d *ReservationDraft) AddMenuItem(item MenuItem) {
	for i := range d.MenuItems {
		if d.MenuItems[i].Item.ID == item.ID {
			d.MenuItems[i].Quantity++
			return
		}
	}
	d.MenuItems = append(d.MenuItems, MenuLine{Item: item, Quantity: 1})
}

// RemoveMenuItem уменьшает количество, при нуле позиция удаляется
func (d *ReservationDraft) RemoveMenuItem(itemID int64) {
	for i := range d.MenuItems {
		if d.MenuItems[i].Item.ID != itemID {
			continue
		}
		d.MenuItems[i].Quantity--
		if d.MenuItems[i].Quantity <= 0 {
			d.MenuItems = append(d.MenuItems[:i], d.MenuItems[i+1:]...)
		}
		return
	}
}

// MenuQuantity количество позиции в предзаказе
func (d *ReservationDraft) MenuQuantity(itemID int64) int {
	for _, line := range d.MenuItems {
		if line.Item.ID == itemID {
			return line.Quantity
		}
	}
	return 0
}

// ToggleService добавляет услугу, если её нет, иначе убирает
func (d *ReservationDraft) ToggleService(s AdditionalService) {
	for i := range d.Services {
		if d.Services[i].ID == s.ID {
			d.Services = append(d.Services[:i], d.Services[i+1:]...)
			return
		}
	}
	d.Services = append(d.Services, s)
}

// HasService true, если услуга выбрана
func (d *ReservationDraft) HasService(id int64) bool {
	for _, s := range d.Services {
		if s.ID == id {
			return true
		}
	}
	return false
}

// SetIncludeMenu включает шаг меню; выключение очищает предзаказ
func (d *ReservationDraft) SetIncludeMenu(include bool) {
	d.IncludeMenu = include
	if !include {
		d.MenuItems = []MenuLine{}
	}
}

func (d *ReservationDraft) SetTerms(accepted bool) {
	d.TermsAccepted = accepted
}

func (d *ReservationDraft) SetSpecialRequests(text string) {
	d.SpecialRequests = text
}

func (d *ReservationDraft) SetPaymentMethod(m PaymentMethod) {
	d.PaymentMethod = m
}

func (d *ReservationDraft) SetPaymentPlan(p PaymentPlan) {
	d.PaymentPlan = p
}

// Reset возвращает черновик в исходное пустое состояние
func (d *ReservationDraft) Reset() {
	*d = *NewDraft(d.Variant)
}

// Clone глубокая копия черновика
func (d *ReservationDraft) Clone() *ReservationDraft {
	c := *d
	if d.EventType != nil {
		et := *d.EventType
		c.EventType = &et
	}
	if d.Schedule.Shift != nil {
		s := *d.Schedule.Shift
		c.Schedule.Shift = &s
	}
	if d.Resource.Table != nil {
		t := *d.Resource.Table
		c.Resource.Table = &t
	}
	if d.Resource.Event != nil {
		ev := *d.Resource.Event
		if ev.Distribution != nil {
			dist := *ev.Distribution
			ev.Distribution = &dist
		}
		if ev.Linen != nil {
			l := *ev.Linen
			ev.Linen = &l
		}
		c.Resource.Event = &ev
	}
	c.MenuItems = append([]MenuLine{}, d.MenuItems...)
	c.Services = append([]AdditionalService{}, d.Services...)
	return &c
}

// ShiftKey ключ слота для смены
func ShiftKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
