package wizard

import (
	"strings"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
)

// Шаги бронирования стола
const (
	TableStepCustomer = 1
	TableStepSchedule = 2
	TableStepTable    = 3
	TableStepMenu     = 4
	TableStepSummary  = 5
	TableStepPayment  = 6
)

// Шаги планирования события
const (
	EventStepCustomer     = 1
	EventStepSchedule     = 2
	EventStepDistribution = 3
	EventStepMenu         = 4
	EventStepServices     = 5
	EventStepSummary      = 6
	EventStepPayment      = 7
)

// For граф мастера для варианта
func For(variant domain.Variant) *Graph {
	if variant == domain.VariantEvent {
		return NewEventGraph()
	}
	return NewTableGraph()
}

// NewTableGraph мастер бронирования стола.
// Шаг оплаты есть только при предзаказе из меню.
func NewTableGraph() *Graph {
	hasPreOrder := func(in Input) bool { return in.Totals.MenuSubtotal > 0 }

	steps := []Step{
		{Number: TableStepCustomer, Label: "Datos", Gate: tableCustomerComplete},
		{Number: TableStepSchedule, Label: "Fecha", Gate: timeSelected},
		{Number: TableStepTable, Label: "Mesa", Gate: tableSelected},
		{Number: TableStepMenu, Label: "Menú"},
		{Number: TableStepSummary, Label: "Resumen", Gate: termsAccepted},
		{Number: TableStepPayment, Label: "Pago", Gate: paymentChosen},
	}
	forward := []Edge{
		{From: TableStepCustomer, To: TableStepSchedule},
		{From: TableStepSchedule, To: TableStepTable},
		{From: TableStepTable, To: TableStepMenu},
		{From: TableStepMenu, To: TableStepSummary},
		{From: TableStepSummary, To: TableStepPayment, When: hasPreOrder},
	}
	backward := []Edge{
		{From: TableStepPayment, To: TableStepSummary},
		{From: TableStepSummary, To: TableStepMenu},
		{From: TableStepMenu, To: TableStepTable},
		{From: TableStepTable, To: TableStepSchedule},
		{From: TableStepSchedule, To: TableStepCustomer},
	}
	return newGraph(domain.VariantTable, steps, forward, backward)
}

// NewEventGraph мастер планирования события.
// Без включённого меню шаг 4 пропускается в обе стороны: 3 -> 5 и 5 -> 3.
func NewEventGraph() *Graph {
	withMenu := func(in Input) bool { return in.draft().IncludeMenu }
	withoutMenu := func(in Input) bool { return !in.draft().IncludeMenu }

	steps := []Step{
		{Number: EventStepCustomer, Label: "Datos", Gate: eventCustomerComplete},
		{Number: EventStepSchedule, Label: "Fecha", Gate: shiftSelected},
		{Number: EventStepDistribution, Label: "Distribución", Gate: eventConfigComplete},
		{Number: EventStepMenu, Label: "Menú", Gate: hasMenuItems},
		{Number: EventStepServices, Label: "Servicios", Gate: termsAccepted},
		{Number: EventStepSummary, Label: "Resumen"},
		{Number: EventStepPayment, Label: "Pago", Gate: paymentPlanChosen},
	}
	forward := []Edge{
		{From: EventStepCustomer, To: EventStepSchedule},
		{From: EventStepSchedule, To: EventStepDistribution},
		{From: EventStepDistribution, To: EventStepMenu, When: withMenu},
		{From: EventStepDistribution, To: EventStepServices, When: withoutMenu},
		{From: EventStepMenu, To: EventStepServices},
		{From: EventStepServices, To: EventStepSummary},
		{From: EventStepSummary, To: EventStepPayment},
	}
	backward := []Edge{
		{From: EventStepPayment, To: EventStepSummary},
		{From: EventStepSummary, To: EventStepServices},
		{From: EventStepServices, To: EventStepMenu, When: withMenu},
		{From: EventStepServices, To: EventStepDistribution, When: withoutMenu},
		{From: EventStepMenu, To: EventStepDistribution},
		{From: EventStepDistribution, To: EventStepSchedule},
		{From: EventStepSchedule, To: EventStepCustomer},
	}
	return newGraph(domain.VariantEvent, steps, forward, backward)
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

func contactComplete(c domain.Customer) bool {
	return notBlank(c.Name) && notBlank(c.Email) && strings.Contains(c.Email, "@") && notBlank(c.Phone)
}

func tableCustomerComplete(in Input) bool {
	c := in.draft().Customer
	return contactComplete(c) && domain.ValidDocument(c.DocumentType, c.DocumentNumber)
}

func eventCustomerComplete(in Input) bool {
	d := in.draft()
	method := d.PaymentMethod
	return contactComplete(d.Customer) &&
		d.EventType != nil &&
		(method == domain.PaymentOnline || method == domain.PaymentPresential)
}

// slotAvailable выбранный слот должен быть свободен в снимке доступности на выбранную дату
func slotAvailable(in Input) bool {
	d := in.draft()
	snap := in.Session.Availability
	key := d.SlotKey()
	return notBlank(d.Schedule.Date) &&
		key != "" &&
		snap != nil &&
		snap.Date == d.Schedule.Date &&
		snap.IsAvailable(key)
}

func timeSelected(in Input) bool {
	return !in.draft().Schedule.Time.IsZero() && slotAvailable(in)
}

func shiftSelected(in Input) bool {
	d := in.draft()
	return d.Schedule.Shift != nil && slotAvailable(in) && d.Schedule.Guests >= in.Guests.Min
}

func tableSelected(in Input) bool {
	d := in.draft()
	t := d.Resource.Table
	if t == nil || t.Capacity < d.Schedule.Guests {
		return false
	}
	if available, known := in.Session.TableAvailability(t.ID); known {
		return available
	}
	return t.Available
}

func eventConfigComplete(in Input) bool {
	d := in.draft()
	ev := d.Resource.Event
	if ev == nil || ev.Distribution == nil || ev.Linen == nil {
		return false
	}
	return !d.IncludeMenu || len(d.MenuItems) > 0
}

func hasMenuItems(in Input) bool {
	return len(in.draft().MenuItems) > 0
}

func termsAccepted(in Input) bool {
	return in.draft().TermsAccepted
}

func paymentChosen(in Input) bool {
	return in.draft().PaymentMethod.IsValid()
}

func paymentPlanChosen(in Input) bool {
	d := in.draft()
	if !d.PaymentMethod.IsOnline() {
		return d.PaymentMethod.IsValid()
	}
	return d.PaymentPlan.IsValid()
}
