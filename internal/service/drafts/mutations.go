package drafts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/service/catalog"
)

// Mutation изменение черновика, которое применяет Service.Apply
type Mutation interface {
	Name() string
	apply(ctx context.Context, m *mutator) error
}

// mutator окружение одной мутации
type mutator struct {
	svc     *Service
	session *domain.BookingSession
	cell    *Cell
}

func (m *mutator) draft() *domain.ReservationDraft {
	return m.session.Draft
}

func (m *mutator) requireVariant(v domain.Variant) error {
	if m.session.Variant != v {
		return fmt.Errorf("%w: requires %s booking", ErrWrongVariant, v)
	}
	return nil
}

// SetCustomer обновляет данные клиента
type SetCustomer struct {
	Patch domain.CustomerPatch
}

func (SetCustomer) Name() string { return "customer" }

func (op SetCustomer) apply(_ context.Context, m *mutator) error {
	p := op.Patch
	if p.DocumentType != nil {
		switch *p.DocumentType {
		case domain.DocumentDNI, domain.DocumentCE, domain.DocumentPassport, domain.DocumentRUC:
		default:
			return fmt.Errorf("%w: unknown document type %q", ErrInvalidInput, *p.DocumentType)
		}
	}
	for _, field := range []*string{p.Name, p.Email, p.Phone, p.DocumentNumber} {
		if field != nil && utf8.RuneCountInString(*field) > domain.MaxNameLength {
			return fmt.Errorf("%w: customer field is too long", ErrInvalidInput)
		}
	}
	m.cell.Update(func(d *domain.ReservationDraft) { d.SetCustomer(p) })
	return nil
}

// SetEventType выбирает тип события
type SetEventType struct {
	EventTypeID string
}

func (SetEventType) Name() string { return "event_type" }

func (op SetEventType) apply(_ context.Context, m *mutator) error {
	if err := m.requireVariant(domain.VariantEvent); err != nil {
		return err
	}
	events := m.svc.catalog.EventCatalog()
	et, ok := events.FindEventType(op.EventTypeID)
	if !ok {
		return fmt.Errorf("%w: event type %q", ErrUnknownReference, op.EventTypeID)
	}
	m.cell.Update(func(d *domain.ReservationDraft) { d.SetEventType(et) })
	return nil
}

// SetSchedule меняет дату и/или количество гостей.
// Смена даты сбрасывает выбранный слот и снимок доступности.
type SetSchedule struct {
	Date   *string
	Guests *int
}

func (SetSchedule) Name() string { return "schedule" }

func (op SetSchedule) apply(_ context.Context, m *mutator) error {
	if op.Date != nil {
		if _, err := domain.ParseDate(*op.Date, m.svc.timeProvider.Now().Location()); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	limits := m.svc.guestLimits(m.session.Variant)

	m.cell.Update(func(d *domain.ReservationDraft) {
		if op.Date != nil && *op.Date != d.Schedule.Date {
			d.SetDate(*op.Date)
			m.session.Availability = nil
			m.session.Inventory = nil
		}
		if op.Guests != nil {
			d.SetGuests(*op.Guests, limits)
		}
	})
	return nil
}

// SelectTable выбирает стол
type SelectTable struct {
	TableID int64
}

func (SelectTable) Name() string { return "table" }

func (op SelectTable) apply(ctx context.Context, m *mutator) error {
	if err := m.requireVariant(domain.VariantTable); err != nil {
		return err
	}
	table, err := m.svc.catalog.GetTable(ctx, op.TableID)
	if err != nil {
		return mapCatalogError(err, "table", op.TableID)
	}

	if available, known := m.session.TableAvailability(table.ID); known {
		table.Available = available
	}
	if !table.CanSeat(m.draft().Schedule.Guests) {
		return fmt.Errorf("%w: table=%d capacity=%d guests=%d",
			ErrTableUnavailable, table.ID, table.Capacity, m.draft().Schedule.Guests)
	}

	m.cell.Update(func(d *domain.ReservationDraft) { d.SelectTable(*table) })
	return nil
}

// SelectEventConfig выбирает расстановку столов и цвет скатертей
type SelectEventConfig struct {
	DistributionID string
	LinenColorID   string
}

func (SelectEventConfig) Name() string { return "event_config" }

func (op SelectEventConfig) apply(_ context.Context, m *mutator) error {
	if err := m.requireVariant(domain.VariantEvent); err != nil {
		return err
	}
	events := m.svc.catalog.EventCatalog()

	var cfg domain.EventConfig
	if op.DistributionID != "" {
		dist, ok := events.FindDistribution(op.DistributionID)
		if !ok {
			return fmt.Errorf("%w: distribution %q", ErrUnknownReference, op.DistributionID)
		}
		cfg.Distribution = dist
	}
	if op.LinenColorID != "" {
		linen, ok := events.FindLinenColor(op.LinenColorID)
		if !ok {
			return fmt.Errorf("%w: linen color %q", ErrUnknownReference, op.LinenColorID)
		}
		cfg.Linen = linen
	}

	m.cell.Update(func(d *domain.ReservationDraft) { d.SelectEventConfig(cfg) })
	return nil
}

// AddMenuItem добавляет позицию меню (повторное добавление увеличивает количество)
type AddMenuItem struct {
	ItemID int64
}

func (AddMenuItem) Name() string { return "add_menu_item" }

func (op AddMenuItem) apply(ctx context.Context, m *mutator) error {
	if !m.draft().IncludeMenu {
		return ErrMenuNotIncluded
	}
	item, err := m.svc.catalog.GetMenuItem(ctx, op.ItemID)
	if err != nil {
		return mapCatalogError(err, "menu item", op.ItemID)
	}
	if !item.Available {
		return fmt.Errorf("%w: item=%d", ErrItemUnavailable, item.ID)
	}
	m.cell.Update(func(d *domain.ReservationDraft) { d.AddMenuItem(*item) })
	return nil
}

// RemoveMenuItem уменьшает количество позиции меню
type RemoveMenuItem struct {
	ItemID int64
}

func (RemoveMenuItem) Name() string { return "remove_menu_item" }

func (op RemoveMenuItem) apply(_ context.Context, m *mutator) error {
	m.cell.Update(func(d *domain.ReservationDraft) { d.RemoveMenuItem(op.ItemID) })
	return nil
}

// ToggleService добавляет или убирает дополнительную услугу
type ToggleService struct {
	ServiceID int64
}

func (ToggleService) Name() string { return "toggle_service" }

func (op ToggleService) apply(ctx context.Context, m *mutator) error {
	if err := m.requireVariant(domain.VariantEvent); err != nil {
		return err
	}
	svc, err := m.svc.catalog.GetAdditionalService(ctx, op.ServiceID)
	if err != nil {
		return mapCatalogError(err, "service", op.ServiceID)
	}
	m.cell.Update(func(d *domain.ReservationDraft) { d.ToggleService(*svc) })
	return nil
}

// SetIncludeMenu включает или выключает шаг меню события
type SetIncludeMenu struct {
	Include bool
}

func (SetIncludeMenu) Name() string { return "include_menu" }

func (op SetIncludeMenu) apply(_ context.Context, m *mutator) error {
	if err := m.requireVariant(domain.VariantEvent); err != nil {
		return err
	}
	m.cell.Update(func(d *domain.ReservationDraft) { d.SetIncludeMenu(op.Include) })
	return nil
}

// SetTerms принятие условий бронирования
type SetTerms struct {
	Accepted bool
}

func (SetTerms) Name() string { return "terms" }

func (op SetTerms) apply(_ context.Context, m *mutator) error {
	m.cell.Update(func(d *domain.ReservationDraft) { d.SetTerms(op.Accepted) })
	return nil
}

// SetSpecialRequests пожелания клиента
type SetSpecialRequests struct {
	Text string
}

func (SetSpecialRequests) Name() string { return "special_requests" }

func (op SetSpecialRequests) apply(_ context.Context, m *mutator) error {
	text := strings.TrimSpace(op.Text)
	if utf8.RuneCountInString(text) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: special requests exceed %d characters", ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}
	m.cell.Update(func(d *domain.ReservationDraft) { d.SetSpecialRequests(text) })
	return nil
}

// SetPaymentMethod способ оплаты
type SetPaymentMethod struct {
	Method domain.PaymentMethod
}

func (SetPaymentMethod) Name() string { return "payment_method" }

func (op SetPaymentMethod) apply(_ context.Context, m *mutator) error {
	allowed := map[domain.Variant][]domain.PaymentMethod{
		domain.VariantTable: {domain.PaymentCard, domain.PaymentCash},
		domain.VariantEvent: {domain.PaymentOnline, domain.PaymentPresential},
	}
	for _, method := range allowed[m.session.Variant] {
		if method == op.Method {
			m.cell.Update(func(d *domain.ReservationDraft) { d.SetPaymentMethod(op.Method) })
			return nil
		}
	}
	return fmt.Errorf("%w: payment method %q is not accepted for %s bookings", ErrInvalidInput, op.Method, m.session.Variant)
}

// SetPaymentPlan схема оплаты события
type SetPaymentPlan struct {
	Plan domain.PaymentPlan
}

func (SetPaymentPlan) Name() string { return "payment_plan" }

func (op SetPaymentPlan) apply(_ context.Context, m *mutator) error {
	if err := m.requireVariant(domain.VariantEvent); err != nil {
		return err
	}
	if !op.Plan.IsValid() {
		return fmt.Errorf("%w: unknown payment plan %q", ErrInvalidInput, op.Plan)
	}
	m.cell.Update(func(d *domain.ReservationDraft) { d.SetPaymentPlan(op.Plan) })
	return nil
}

// ResetDraft очищает черновик и возвращает мастер на первый шаг
type ResetDraft struct{}

func (ResetDraft) Name() string { return "reset" }

func (ResetDraft) apply(_ context.Context, m *mutator) error {
	m.cell.Reset()
	m.session.Step = 1
	m.session.Availability = nil
	m.session.Inventory = nil
	return nil
}

func mapCatalogError(err error, kind string, id int64) error {
	if errors.Is(err, catalog.ErrNotFound) {
		return fmt.Errorf("%w: %s=%d", ErrUnknownReference, kind, id)
	}
	return fmt.Errorf("%w: %s=%d: %v", ErrCatalogUnavailable, kind, id, err)
}
