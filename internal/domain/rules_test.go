package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRK-ReservationService/pkg/money"
)

func TestGuestLimits_Clamp(t *testing.T) {
	limits := GuestLimits{Min: 10, Max: 100}

	assert.Equal(t, limits.Min, limits.Clamp(limits.Min-1))
	assert.Equal(t, limits.Max, limits.Clamp(limits.Max+1))
	for g := -5; g <= 120; g++ {
		got := limits.Clamp(g)
		assert.GreaterOrEqual(t, got, limits.Min)
		assert.LessOrEqual(t, got, limits.Max)
	}
}

func TestDateRules_Validate(t *testing.T) {
	// воскресенье
	now := time.Date(2026, 10, 18, 15, 0, 0, 0, time.UTC)
	eventRules := DateRules{DaysAhead: 90, StartOffsetDays: 1, ClosedWeekdays: []time.Weekday{time.Monday}}
	tableRules := DateRules{DaysAhead: 90}

	cases := []struct {
		name  string
		rules DateRules
		date  string
		err   error
	}{
		{name: "table today", rules: tableRules, date: "2026-10-18"},
		{name: "event today is too early", rules: eventRules, date: "2026-10-18", err: ErrDateInPast},
		{name: "event on monday", rules: eventRules, date: "2026-10-19", err: ErrDateClosed},
		{name: "event on tuesday", rules: eventRules, date: "2026-10-20"},
		{name: "past date", rules: tableRules, date: "2026-10-17", err: ErrDateInPast},
		{name: "beyond horizon", rules: tableRules, date: "2027-01-17", err: ErrDateTooFar},
		{name: "bad format", rules: tableRules, date: "18/10/2026", err: ErrInvalidDate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.rules.Validate(tc.date, now)
			if tc.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestValidDocument(t *testing.T) {
	assert.True(t, ValidDocument(DocumentDNI, "45678912"))
	assert.False(t, ValidDocument(DocumentDNI, "4567891"))
	assert.False(t, ValidDocument(DocumentDNI, "4567891A"))
	assert.True(t, ValidDocument(DocumentRUC, "20123456789"))
	assert.True(t, ValidDocument(DocumentPassport, "AB123456"))
	assert.True(t, ValidDocument(DocumentCE, "001234567"))
	assert.False(t, ValidDocument(DocumentType("X"), "123"))
}

func TestParseTableShape(t *testing.T) {
	assert.Equal(t, ShapeRound, ParseTableShape("Mesa Redonda"))
	assert.Equal(t, ShapeRound, ParseTableShape("CIRCULAR"))
	assert.Equal(t, ShapeSquare, ParseTableShape("rectangular"))
}

func TestParseServiceCategory(t *testing.T) {
	assert.Equal(t, CategoryEntertainment, ParseServiceCategory("Entretenimiento"))
	assert.Equal(t, CategoryCatering, ParseServiceCategory("bebidas y comida"))
	assert.Equal(t, CategoryService, ParseServiceCategory("Personal"))
	assert.Equal(t, CategoryService, ParseServiceCategory(""))
}

func TestReservationStatusRules(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus(0))
	assert.Equal(t, StatusPendingPayment, InitialStatus(money.FromUnits(53)))

	assert.Equal(t, StatusPaid, PaidStatus(VariantTable, ""))
	assert.Equal(t, StatusPaid, PaidStatus(VariantEvent, PlanFull))
	assert.Equal(t, StatusPartiallyPaid, PaidStatus(VariantEvent, PlanDeposit))

	assert.Equal(t, PaymentPresential, EffectiveMethod(""))
	assert.Equal(t, PaymentCard, EffectiveMethod(PaymentCard))

	c := Confirmation{AmountDue: money.FromUnits(590), PaymentFailed: true, Status: StatusPendingPayment}
	assert.True(t, c.NeedsPaymentRetry())
	assert.Equal(t, money.FromUnits(590), c.OutstandingAmount())
	c.Status = StatusCancelled
	assert.False(t, c.NeedsPaymentRetry())
}
