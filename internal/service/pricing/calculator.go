package pricing

import (
	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/pkg/money"
)

// Config параметры расчёта стоимости
type Config struct {
	ExtraGuestThreshold int          // гости сверх порога оплачиваются отдельно
	ExtraGuestPrice     money.Amount // цена за каждого гостя сверх порога
	TaxRateBP           int64        // ставка налога в базисных пунктах (1800 = 18%)
	DepositRateBP       int64        // доля депозита для событий
	FullPaymentRateBP   int64        // доля от итога при полной оплате (скидка)
}

// DefaultConfig значения по умолчанию
func DefaultConfig() Config {
	return Config{
		ExtraGuestThreshold: 50,
		ExtraGuestPrice:     money.FromUnits(15),
		TaxRateBP:           1800,
		DepositRateBP:       5000,
		FullPaymentRateBP:   9500,
	}
}

// Calculator калькулятор итогов черновика. Не хранит состояние.
type Calculator struct {
	cfg Config
}

func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// Config возвращает параметры калькулятора
func (c *Calculator) Config() Config {
	return c.cfg
}

// ComputeTotals считает итоги как чистую функцию от черновика.
// Налог, депозит и сумма полной оплаты округляются до целых единиц валюты (round-half-up),
// total всегда равен subtotal + surcharge + tax.
func (c *Calculator) ComputeTotals(d *domain.ReservationDraft) Totals {
	var t Totals

	t.BaseSubtotal = baseSubtotal(d)
	for _, line := range d.MenuItems {
		t.MenuSubtotal += line.Item.Price.Mul(line.Quantity)
	}
	for _, s := range d.Services {
		t.ServicesSubtotal += s.Price
	}
	t.Subtotal = t.BaseSubtotal + t.MenuSubtotal + t.ServicesSubtotal

	if extra := d.Schedule.Guests - c.cfg.ExtraGuestThreshold; extra > 0 {
		t.Surcharge = c.cfg.ExtraGuestPrice.Mul(extra)
	}

	taxable := t.Subtotal + t.Surcharge
	t.Tax = taxable.ApplyRateRounded(c.cfg.TaxRateBP)
	t.Total = taxable + t.Tax

	if d.Variant == domain.VariantEvent {
		t.Deposit = t.Total.ApplyRateRounded(c.cfg.DepositRateBP)
		t.FullPaymentAmount = t.Total.ApplyRateRounded(c.cfg.FullPaymentRateBP)
	} else {
		t.FullPaymentAmount = t.Total
	}
	t.Remaining = t.Total - t.Deposit

	t.AmountDue = c.amountDue(d, t)

	return t
}

// amountDue сумма онлайн-платежа при оформлении
func (c *Calculator) amountDue(d *domain.ReservationDraft, t Totals) money.Amount {
	if !d.PaymentMethod.IsOnline() {
		return 0
	}
	if d.Variant == domain.VariantTable {
		// стол оплачивается онлайн только при наличии предзаказа
		if t.MenuSubtotal > 0 {
			return t.Total
		}
		return 0
	}
	if d.PaymentPlan == domain.PlanFull {
		return t.FullPaymentAmount
	}
	return t.Deposit
}

func baseSubtotal(d *domain.ReservationDraft) money.Amount {
	if d.Variant != domain.VariantEvent {
		return 0
	}
	var base money.Amount
	if d.EventType != nil {
		base += d.EventType.BasePrice
	}
	if d.Schedule.Shift != nil {
		base += d.Schedule.Shift.Price
	}
	if ev := d.Resource.Event; ev != nil {
		if ev.Distribution != nil {
			base += ev.Distribution.Price
		}
		if ev.Linen != nil {
			base += ev.Linen.Price
		}
	}
	return base
}
