package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRK-ReservationService/pkg/money"
	"github.com/m04kA/MRK-ReservationService/pkg/ptr"
)

func TestReservationDraft_MenuItemsMergeByID(t *testing.T) {
	d := NewDraft(VariantTable)
	item := MenuItem{ID: 7, Name: "Lomo Saltado", Price: money.FromUnits(32)}

	d.AddMenuItem(item)
	d.AddMenuItem(item)
	require.Len(t, d.MenuItems, 1)
	assert.Equal(t, 2, d.MenuItems[0].Quantity)

	d.RemoveMenuItem(7)
	require.Len(t, d.MenuItems, 1)
	assert.Equal(t, 1, d.MenuQuantity(7))

	d.RemoveMenuItem(7)
	assert.Empty(t, d.MenuItems)
	assert.Equal(t, 0, d.MenuQuantity(7))

	// удаление отсутствующей позиции ничего не меняет
	d.RemoveMenuItem(99)
	assert.Empty(t, d.MenuItems)
}

func TestReservationDraft_ToggleServiceRoundTrip(t *testing.T) {
	d := NewDraft(VariantEvent)
	dj := AdditionalService{ID: 1, Name: "DJ Profesional", Price: money.FromUnits(300), Category: CategoryEntertainment}
	valet := AdditionalService{ID: 2, Name: "Valet Parking", Price: money.FromUnits(120), Category: CategoryService}

	d.ToggleService(valet)
	before := append([]AdditionalService{}, d.Services...)

	d.ToggleService(dj)
	assert.True(t, d.HasService(1))

	d.ToggleService(dj)
	assert.Equal(t, before, d.Services)
	assert.False(t, d.HasService(1))
}

func TestReservationDraft_SetScheduleClampsGuests(t *testing.T) {
	limits := GuestLimits{Min: 10, Max: 100}
	cases := []struct {
		name   string
		guests int
		want   int
	}{
		{name: "below min", guests: 9, want: 10},
		{name: "above max", guests: 101, want: 100},
		{name: "inside", guests: 42, want: 42},
		{name: "negative", guests: -3, want: 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDraft(VariantEvent)
			d.SetSchedule(Schedule{Date: "2026-11-20", Guests: tc.guests}, limits)
			assert.Equal(t, tc.want, d.Schedule.Guests)
		})
	}
}

func TestReservationDraft_SetCustomerMergesFields(t *testing.T) {
	d := NewDraft(VariantTable)
	d.SetCustomer(CustomerPatch{Name: ptr.Ptr("Ana Torres"), Email: ptr.Ptr("ana@example.com")})
	d.SetCustomer(CustomerPatch{Phone: ptr.Ptr("987654321")})

	assert.Equal(t, "Ana Torres", d.Customer.Name)
	assert.Equal(t, "ana@example.com", d.Customer.Email)
	assert.Equal(t, "987654321", d.Customer.Phone)
}

func TestReservationDraft_SelectResourceReplacesWholesale(t *testing.T) {
	d := NewDraft(VariantEvent)
	catalog := DefaultEventCatalog()
	dist, _ := catalog.FindDistribution("imperial")
	linen, _ := catalog.FindLinenColor("dorado")

	d.SelectEventConfig(EventConfig{Distribution: dist, Linen: linen})
	d.SelectEventConfig(EventConfig{Distribution: dist})

	require.NotNil(t, d.Resource.Event)
	assert.Nil(t, d.Resource.Event.Linen)

	d.SelectTable(Table{ID: 3, Capacity: 4, Available: true})
	assert.Nil(t, d.Resource.Event)
	assert.Equal(t, int64(3), d.Resource.Table.ID)
}

func TestReservationDraft_IncludeMenuOffClearsItems(t *testing.T) {
	d := NewDraft(VariantEvent)
	d.SetIncludeMenu(true)
	d.AddMenuItem(MenuItem{ID: 1, Price: money.FromUnits(25)})

	d.SetIncludeMenu(false)
	assert.Empty(t, d.MenuItems)
}

func TestReservationDraft_ResetAndClone(t *testing.T) {
	d := NewDraft(VariantEvent)
	d.SetTerms(true)
	d.AddMenuItem(MenuItem{ID: 1})
	catalog := DefaultEventCatalog()
	shift, _ := catalog.FindShift(2)
	d.SelectShift(shift)

	clone := d.Clone()
	clone.AddMenuItem(MenuItem{ID: 1})
	clone.Schedule.Shift.Name = "changed"
	assert.Equal(t, 1, d.MenuQuantity(1))
	assert.Equal(t, "Tarde", d.Schedule.Shift.Name)

	d.Reset()
	assert.Equal(t, VariantEvent, d.Variant)
	assert.False(t, d.TermsAccepted)
	assert.Empty(t, d.MenuItems)
	assert.Equal(t, DefaultEventGuests, d.Schedule.Guests)
	assert.Empty(t, d.SlotKey())
}

func TestReservationDraft_SetDateClearsSlot(t *testing.T) {
	d := NewDraft(VariantTable)
	d.SetDate("2026-11-20")
	d.SelectTime("19:00")

	d.SetDate("2026-11-20")
	assert.Equal(t, "19:00", d.SlotKey())

	d.SetDate("2026-11-21")
	assert.Empty(t, d.SlotKey())
}
