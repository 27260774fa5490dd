package drafts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/identity"
	sessionStore "github.com/m04kA/MRK-ReservationService/internal/infra/storage/session"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/customerservice"
	"github.com/m04kA/MRK-ReservationService/internal/service/catalog"
	"github.com/m04kA/MRK-ReservationService/internal/service/drafts/models"
	"github.com/m04kA/MRK-ReservationService/internal/service/pricing"
	"github.com/m04kA/MRK-ReservationService/internal/service/wizard"
	"github.com/m04kA/MRK-ReservationService/pkg/logger"
	"github.com/m04kA/MRK-ReservationService/pkg/money"
	"github.com/m04kA/MRK-ReservationService/pkg/ptr"
	"github.com/m04kA/MRK-ReservationService/pkg/types"
)

type fakeCatalog struct {
	menu     map[int64]domain.MenuItem
	tables   map[int64]domain.Table
	services map[int64]domain.AdditionalService
	err      error
}

func (f *fakeCatalog) GetMenuItem(_ context.Context, id int64) (*domain.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	item, ok := f.menu[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return &item, nil
}

func (f *fakeCatalog) GetAdditionalService(_ context.Context, id int64) (*domain.AdditionalService, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return &svc, nil
}

func (f *fakeCatalog) GetTable(_ context.Context, id int64) (*domain.Table, error) {
	t, ok := f.tables[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return &t, nil
}

func (f *fakeCatalog) EventCatalog() domain.EventCatalog {
	return domain.DefaultEventCatalog()
}

type fakeCustomers struct {
	customer *customerservice.Customer
	err      error
}

func (f *fakeCustomers) GetCustomer(context.Context, int64) (*customerservice.Customer, error) {
	return f.customer, f.err
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type seqIDs struct{ n int }

func (s *seqIDs) NewID() string {
	s.n++
	return "session-" + string(rune('0'+s.n))
}

type fixture struct {
	svc       *Service
	store     *sessionStore.MemoryStore
	catalog   *fakeCatalog
	customers *fakeCustomers
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := sessionStore.NewMemoryStore(0)
	cat := &fakeCatalog{
		menu: map[int64]domain.MenuItem{
			1: {ID: 1, Name: "Bife de Chorizo", Price: money.FromUnits(45), Available: true},
			2: {ID: 2, Name: "Provoleta", Price: money.FromUnits(18), Available: false},
		},
		tables: map[int64]domain.Table{
			10: {ID: 10, Code: "T10", Capacity: 4, Available: true},
			11: {ID: 11, Code: "T11", Capacity: 2, Available: true},
		},
		services: map[int64]domain.AdditionalService{
			5: {ID: 5, Name: "DJ", Price: money.FromUnits(300), Category: domain.CategoryEntertainment},
		},
	}
	customers := &fakeCustomers{err: customerservice.ErrServiceDegraded}

	svc := NewService(store, cat, customers, identity.ContextProvider{}, pricing.NewCalculator(pricing.DefaultConfig()), Config{
		TableGuests: domain.GuestLimits{Min: 1, Max: 20},
		EventGuests: domain.GuestLimits{Min: 10, Max: 100},
	}, logger.NewNop())
	svc.timeProvider = fixedTime{now: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)}
	svc.ids = &seqIDs{}

	return &fixture{svc: svc, store: store, catalog: cat, customers: customers}
}

func tableSnapshot(date string) *domain.AvailabilitySnapshot {
	return &domain.AvailabilitySnapshot{
		Date:    date,
		Variant: domain.VariantTable,
		Source:  domain.SourceLive,
		Slots: []domain.AvailabilitySlot{
			{Key: "18:00", Time: types.NewTimeString(18, 0), Available: false},
			{Key: "18:30", Time: types.NewTimeString(18, 30), Available: true,
				Tables: []domain.SlotTable{{ID: 10, Available: true}, {ID: 11, Available: false}}},
			{Key: "19:00", Time: types.NewTimeString(19, 0), Available: true},
		},
	}
}

func TestService_Start(t *testing.T) {
	f := newFixture(t)

	view, err := f.svc.Start(context.Background(), domain.VariantTable)
	require.NoError(t, err)
	assert.Equal(t, wizard.TableStepCustomer, view.Step)
	assert.Equal(t, 0, view.DisplayIndex)
	assert.Equal(t, "Datos", view.StepLabel)
	assert.Len(t, view.StepLabels, 5)
	assert.False(t, view.CanProceed)
	assert.Equal(t, 2, view.Draft.Schedule.Guests)
	assert.True(t, view.Draft.IncludeMenu)

	_, err = f.svc.Start(context.Background(), domain.Variant("brunch"))
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_StartPrefillsFromIdentity(t *testing.T) {
	f := newFixture(t)
	f.customers.err = nil
	f.customers.customer = &customerservice.Customer{
		ID: 7, FirstName: "Lucía", LastName: "Ramos", Phone: "987654321", IdentityDocument: "45871236",
	}
	ctx := identity.WithIdentity(context.Background(), &identity.Identity{CustomerID: 7, Name: "lucia", Email: "lucia@example.com"})

	view, err := f.svc.Start(ctx, domain.VariantTable)
	require.NoError(t, err)

	c := view.Draft.Customer
	assert.Equal(t, "Lucía Ramos", c.Name)
	assert.Equal(t, "lucia@example.com", c.Email)
	assert.Equal(t, "987654321", c.Phone)
	assert.Equal(t, domain.DocumentDNI, c.DocumentType)
	assert.True(t, view.CanProceed)
}

func TestService_StartWithDegradedCustomerService(t *testing.T) {
	f := newFixture(t)
	ctx := identity.WithIdentity(context.Background(), &identity.Identity{CustomerID: 7, Name: "Lucía", Email: "lucia@example.com"})

	view, err := f.svc.Start(ctx, domain.VariantEvent)
	require.NoError(t, err)
	assert.Equal(t, "Lucía", view.Draft.Customer.Name)
	assert.Empty(t, view.Draft.Customer.Phone)
	assert.Equal(t, 10, view.Draft.Schedule.Guests)
}

func TestService_OwnershipCheck(t *testing.T) {
	f := newFixture(t)
	owner := identity.WithIdentity(context.Background(), &identity.Identity{CustomerID: 7})
	view, err := f.svc.Start(owner, domain.VariantTable)
	require.NoError(t, err)

	_, err = f.svc.Get(owner, view.ID)
	require.NoError(t, err)

	other := identity.WithIdentity(context.Background(), &identity.Identity{CustomerID: 8})
	_, err = f.svc.Get(other, view.ID)
	require.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.svc.Get(context.Background(), view.ID)
	require.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.svc.Get(owner, "missing")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_ApplyMenuRecomputesTotals(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	view, err := f.svc.Start(ctx, domain.VariantTable)
	require.NoError(t, err)

	view, err = f.svc.Apply(ctx, view.ID, AddMenuItem{ItemID: 1})
	require.NoError(t, err)
	assert.Equal(t, money.FromUnits(45), view.Totals.Subtotal)
	assert.Equal(t, money.FromUnits(8), view.Totals.Tax)
	assert.Equal(t, money.FromUnits(53), view.Totals.Total)
	// с предзаказом у стола появляется шаг оплаты
	assert.Len(t, view.StepLabels, 6)

	_, err = f.svc.Apply(ctx, view.ID, AddMenuItem{ItemID: 2})
	require.ErrorIs(t, err, ErrItemUnavailable)

	_, err = f.svc.Apply(ctx, view.ID, AddMenuItem{ItemID: 99})
	require.ErrorIs(t, err, ErrUnknownReference)

	view, err = f.svc.Apply(ctx, view.ID, RemoveMenuItem{ItemID: 1})
	require.NoError(t, err)
	assert.Empty(t, view.Draft.MenuItems)
	assert.Equal(t, money.Amount(0), view.Totals.Total)

	f.catalog.err = errors.New("timeout")
	_, err = f.svc.Apply(ctx, view.ID, AddMenuItem{ItemID: 1})
	require.ErrorIs(t, err, ErrCatalogUnavailable)
}

func TestService_ApplyRejectsWrongVariant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	view, err := f.svc.Start(ctx, domain.VariantTable)
	require.NoError(t, err)

	_, err = f.svc.Apply(ctx, view.ID, ToggleService{ServiceID: 5})
	require.ErrorIs(t, err, ErrWrongVariant)

	_, err = f.svc.Apply(ctx, view.ID, SetPaymentMethod{Method: domain.PaymentOnline})
	require.ErrorIs(t, err, ErrInvalidInput)

	view, err = f.svc.Apply(ctx, view.ID, SetPaymentMethod{Method: domain.PaymentCash})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentCash, view.Draft.PaymentMethod)
}

func TestService_GuestsAreClamped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	view, err := f.svc.Start(ctx, domain.VariantEvent)
	require.NoError(t, err)

	view, err = f.svc.Apply(ctx, view.ID, SetSchedule{Guests: ptr.Ptr(3)})
	require.NoError(t, err)
	assert.Equal(t, 10, view.Draft.Schedule.Guests)

	view, err = f.svc.Apply(ctx, view.ID, SetSchedule{Guests: ptr.Ptr(500)})
	require.NoError(t, err)
	assert.Equal(t, 100, view.Draft.Schedule.Guests)
}

func TestService_AvailabilityAndSlotSelection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	view, err := f.svc.Start(ctx, domain.VariantTable)
	require.NoError(t, err)

	view, err = f.svc.ApplyAvailability(ctx, view.ID, tableSnapshot("2026-10-20"))
	require.NoError(t, err)
	assert.Equal(t, "2026-10-20", view.Draft.Schedule.Date)
	assert.Equal(t, "18:30", view.Draft.Schedule.Time.String())
	assert.Len(t, view.Inventory, 2)

	// занятый слот не выбирается
	view, err = f.svc.SelectSlot(ctx, view.ID, "18:00")
	require.NoError(t, err)
	assert.Equal(t, "18:30", view.Draft.Schedule.Time.String())

	view, err = f.svc.SelectSlot(ctx, view.ID, "19:00")
	require.NoError(t, err)
	assert.Equal(t, "19:00", view.Draft.Schedule.Time.String())
	assert.Empty(t, view.Inventory)

	// повторное разрешение сохраняет свободный выбранный слот
	view, err = f.svc.ApplyAvailability(ctx, view.ID, tableSnapshot("2026-10-20"))
	require.NoError(t, err)
	assert.Equal(t, "19:00", view.Draft.Schedule.Time.String())

	// смена даты сбрасывает слот и снимок
	view, err = f.svc.Apply(ctx, view.ID, SetSchedule{Date: ptr.Ptr("2026-10-22")})
	require.NoError(t, err)
	assert.True(t, view.Draft.Schedule.Time.IsZero())
	assert.Nil(t, view.Availability)

	_, err = f.svc.SelectSlot(ctx, view.ID, "19:00")
	require.ErrorIs(t, err, ErrAvailabilityNotResolved)
}

func TestService_ApplyAvailabilityWithoutFreeSlots(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	view, err := f.svc.Start(ctx, domain.VariantTable)
	require.NoError(t, err)

	_, err = f.svc.ApplyAvailability(ctx, view.ID, tableSnapshot("2026-10-20"))
	require.NoError(t, err)

	full := tableSnapshot("2026-10-20")
	for i := range full.Slots {
		full.Slots[i].Available = false
	}
	view, err = f.svc.ApplyAvailability(ctx, view.ID, full)
	require.NoError(t, err)
	assert.True(t, view.Draft.Schedule.Time.IsZero())
}

func TestService_SelectTableUsesSlotInventory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	view, err := f.svc.Start(ctx, domain.VariantTable)
	require.NoError(t, err)
	view, err = f.svc.ApplyAvailability(ctx, view.ID, tableSnapshot("2026-10-20"))
	require.NoError(t, err)

	_, err = f.svc.Apply(ctx, view.ID, SelectTable{TableID: 11})
	require.ErrorIs(t, err, ErrTableUnavailable)

	view, err = f.svc.Apply(ctx, view.ID, SetSchedule{Guests: ptr.Ptr(6)})
	require.NoError(t, err)
	_, err = f.svc.Apply(ctx, view.ID, SelectTable{TableID: 10})
	require.ErrorIs(t, err, ErrTableUnavailable)

	view, err = f.svc.Apply(ctx, view.ID, SetSchedule{Guests: ptr.Ptr(4)})
	require.NoError(t, err)
	view, err = f.svc.Apply(ctx, view.ID, SelectTable{TableID: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(10), view.Draft.Resource.Table.ID)
}

func TestService_Navigate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	view, err := f.svc.Start(ctx, domain.VariantTable)
	require.NoError(t, err)

	_, err = f.svc.Navigate(ctx, view.ID, models.ActionNext, 0)
	require.ErrorIs(t, err, ErrStepBlocked)

	_, err = f.svc.Apply(ctx, view.ID, SetCustomer{Patch: domain.CustomerPatch{
		DocumentType:   ptr.Ptr(domain.DocumentDNI),
		DocumentNumber: ptr.Ptr("45871236"),
		Name:           ptr.Ptr("Lucía Ramos"),
		Email:          ptr.Ptr("lucia@example.com"),
		Phone:          ptr.Ptr("987654321"),
	}})
	require.NoError(t, err)

	view, err = f.svc.Navigate(ctx, view.ID, models.ActionNext, 0)
	require.NoError(t, err)
	assert.Equal(t, wizard.TableStepSchedule, view.Step)
	assert.Equal(t, "Fecha", view.StepLabel)

	_, err = f.svc.Navigate(ctx, view.ID, models.ActionGoTo, wizard.TableStepMenu)
	require.ErrorIs(t, err, ErrInvalidNavigation)

	view, err = f.svc.Navigate(ctx, view.ID, models.ActionPrev, 0)
	require.NoError(t, err)
	assert.Equal(t, wizard.TableStepCustomer, view.Step)

	_, err = f.svc.Navigate(ctx, view.ID, models.NavigateAction("jump"), 0)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ResetAndCancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	view, err := f.svc.Start(ctx, domain.VariantEvent)
	require.NoError(t, err)

	view, err = f.svc.Apply(ctx, view.ID, ToggleService{ServiceID: 5})
	require.NoError(t, err)
	assert.True(t, view.Draft.HasService(5))

	view, err = f.svc.Apply(ctx, view.ID, ResetDraft{})
	require.NoError(t, err)
	assert.Empty(t, view.Draft.Services)
	assert.Equal(t, 1, view.Step)

	require.NoError(t, f.svc.Cancel(ctx, view.ID))
	_, err = f.svc.Get(ctx, view.ID)
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_BusySession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	view, err := f.svc.Start(ctx, domain.VariantEvent)
	require.NoError(t, err)

	acquired, err := f.store.AcquireProcessing(ctx, view.ID, time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	_, err = f.svc.Apply(ctx, view.ID, ToggleService{ServiceID: 5})
	require.ErrorIs(t, err, ErrSessionBusy)
	_, err = f.svc.Navigate(ctx, view.ID, models.ActionNext, 0)
	require.ErrorIs(t, err, ErrSessionBusy)
	require.ErrorIs(t, f.svc.Cancel(ctx, view.ID), ErrSessionBusy)

	got, err := f.svc.Get(ctx, view.ID)
	require.NoError(t, err)
	assert.False(t, got.Draft.HasService(5))

	// оформление удаляет сессию, пока держит флаг
	require.NoError(t, f.svc.Discard(ctx, view.ID))
	require.NoError(t, f.store.ReleaseProcessing(ctx, view.ID))

	_, err = f.svc.Apply(ctx, view.ID, ToggleService{ServiceID: 5})
	require.ErrorIs(t, err, ErrSessionNotFound)
	_, err = f.store.Get(ctx, view.ID)
	require.ErrorIs(t, err, sessionStore.ErrSessionNotFound)
}

func TestService_MutationReleasesFlag(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	view, err := f.svc.Start(ctx, domain.VariantEvent)
	require.NoError(t, err)

	_, err = f.svc.Apply(ctx, view.ID, ToggleService{ServiceID: 5})
	require.NoError(t, err)
	_, err = f.svc.Apply(ctx, view.ID, ToggleService{ServiceID: 999})
	require.Error(t, err)

	acquired, err := f.store.AcquireProcessing(ctx, view.ID, time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
}
