package domain

// Variant вариант мастера бронирования
type Variant string

const (
	VariantTable Variant = "table"
	VariantEvent Variant = "event"
)

// IsValid true для известных вариантов
func (v Variant) IsValid() bool {
	return v == VariantTable || v == VariantEvent
}

// ReservationType тип бронирования в терминах reservation-service
func (v Variant) ReservationType() string {
	if v == VariantEvent {
		return "EVENTO"
	}
	return "MESA"
}

// PaymentMethod способ оплаты, выбранный клиентом
type PaymentMethod string

const (
	PaymentCard       PaymentMethod = "card"
	PaymentCash       PaymentMethod = "cash"
	PaymentOnline     PaymentMethod = "online"
	PaymentPresential PaymentMethod = "presential"
)

// IsValid true для известных способов оплаты
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCard, PaymentCash, PaymentOnline, PaymentPresential:
		return true
	}
	return false
}

// IsOnline true, если оплата проходит через платёжный шлюз
func (m PaymentMethod) IsOnline() bool {
	return m == PaymentCard || m == PaymentOnline
}

// RemoteName название способа оплаты для reservation/payment сервисов
func (m PaymentMethod) RemoteName() string {
	switch m {
	case PaymentCard:
		return "TARJETA"
	case PaymentCash:
		return "EFECTIVO"
	case PaymentOnline:
		return "ONLINE"
	case PaymentPresential:
		return "PRESENCIAL"
	}
	return ""
}

// PaymentPlan схема оплаты события: полная (со скидкой) или депозит
type PaymentPlan string

const (
	PlanFull    PaymentPlan = "full"
	PlanDeposit PaymentPlan = "deposit"
)

// IsValid true для известных схем оплаты
func (p PaymentPlan) IsValid() bool {
	return p == PlanFull || p == PlanDeposit
}

// Default values
const (
	DefaultTableGuests = 2
	DefaultEventGuests = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxSpecialRequestsLength = 500
	MaxNameLength            = 120
)
