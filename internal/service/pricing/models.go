package pricing

import "github.com/m04kA/MRK-ReservationService/pkg/money"

// Totals итоги черновика
type Totals struct {
	BaseSubtotal      money.Amount // тип события + смена + расстановка + скатерти
	MenuSubtotal      money.Amount
	ServicesSubtotal  money.Amount
	Subtotal          money.Amount
	Surcharge         money.Amount // доплата за гостей сверх порога
	Tax               money.Amount
	Total             money.Amount
	Deposit           money.Amount // только для событий
	Remaining         money.Amount
	FullPaymentAmount money.Amount // итог со скидкой за полную оплату (события)
	AmountDue         money.Amount // сумма онлайн-платежа при оформлении
}
