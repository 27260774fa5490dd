package drafts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	sessionStore "github.com/m04kA/MRK-ReservationService/internal/infra/storage/session"
	"github.com/m04kA/MRK-ReservationService/internal/service/drafts/models"
	"github.com/m04kA/MRK-ReservationService/internal/service/pricing"
	"github.com/m04kA/MRK-ReservationService/internal/service/wizard"
)

// defaultProcessingTTL срок флага, если он не задан в конфигурации
const defaultProcessingTTL = 30 * time.Second

// Config границы гостей для вариантов мастера и срок флага оформления
type Config struct {
	TableGuests   domain.GuestLimits
	EventGuests   domain.GuestLimits
	ProcessingTTL time.Duration
}

// Service сервис сессий бронирования: черновик, навигация по мастеру, выбор слота
type Service struct {
	store        SessionStore
	catalog      CatalogService
	customers    CustomerDirectory
	identities   IdentityProvider
	calculator   *pricing.Calculator
	cfg          Config
	timeProvider TimeProvider
	ids          IDGenerator
	logger       Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(
	store SessionStore,
	catalog CatalogService,
	customers CustomerDirectory,
	identities IdentityProvider,
	calculator *pricing.Calculator,
	cfg Config,
	logger Logger,
) *Service {
	return &Service{
		store:        store,
		catalog:      catalog,
		customers:    customers,
		identities:   identities,
		calculator:   calculator,
		cfg:          cfg,
		timeProvider: &RealTimeProvider{},
		ids:          UUIDGenerator{},
		logger:       logger,
	}
}

// Start создаёт сессию с пустым черновиком.
// Для аутентифицированного клиента данные предзаполняются из токена и customer-service.
func (s *Service) Start(ctx context.Context, variant domain.Variant) (*models.SessionView, error) {
	if !variant.IsValid() {
		return nil, fmt.Errorf("%w: unknown variant %q", ErrInvalidInput, variant)
	}

	now := s.timeProvider.Now()
	session := &domain.BookingSession{
		ID:        s.ids.NewID(),
		Variant:   variant,
		Step:      wizard.For(variant).First(),
		Draft:     domain.NewDraft(variant),
		CreatedAt: now,
		UpdatedAt: now,
	}
	session.Draft.SetGuests(session.Draft.Schedule.Guests, s.guestLimits(variant))

	if id, ok := s.identities.Current(ctx); ok {
		customerID := id.CustomerID
		session.CustomerID = &customerID
		s.prefill(ctx, session.Draft, id.CustomerID, id.Name, id.Email)
	}

	if err := s.store.Save(ctx, session); err != nil {
		s.logger.Error("StartSession: failed to save session: %v", err)
		return nil, fmt.Errorf("%w: StartSession - save session: %v", ErrInternal, err)
	}

	s.logger.Info("StartSession: session=%s variant=%s customer=%v", session.ID, variant, session.CustomerID != nil)
	return s.view(session, s.calculator.ComputeTotals(session.Draft)), nil
}

// Get текущее состояние сессии
func (s *Service) Get(ctx context.Context, id string) (*models.SessionView, error) {
	session, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(session, s.calculator.ComputeTotals(session.Draft)), nil
}

// Apply применяет мутацию к черновику
func (s *Service) Apply(ctx context.Context, id string, m Mutation) (*models.SessionView, error) {
	return s.mutate(ctx, id, m.Name(), func(session *domain.BookingSession, cell *Cell) error {
		return m.apply(ctx, &mutator{svc: s, session: session, cell: cell})
	})
}

// Navigate перемещение по шагам мастера.
// Если условие текущего шага не выполнено, шаг не меняется и возвращается ErrStepBlocked.
func (s *Service) Navigate(ctx context.Context, id string, action models.NavigateAction, target int) (*models.SessionView, error) {
	var view *models.SessionView
	err := s.locked(ctx, id, "Navigate", func() error {
		var err error
		view, err = s.navigate(ctx, id, action, target)
		return err
	})
	return view, err
}

func (s *Service) navigate(ctx context.Context, id string, action models.NavigateAction, target int) (*models.SessionView, error) {
	session, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	graph := wizard.For(session.Variant)
	in := s.input(session, s.calculator.ComputeTotals(session.Draft))

	var next int
	switch action {
	case models.ActionNext:
		next, err = graph.Next(session.Step, in)
	case models.ActionPrev:
		next, err = graph.Prev(session.Step, in)
	case models.ActionGoTo:
		next, err = graph.GoTo(session.Step, target, in)
	default:
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidInput, action)
	}
	if err != nil {
		s.logger.Warn("Navigate: session=%s action=%s step=%d: %v", id, action, session.Step, err)
		if errors.Is(err, wizard.ErrStepBlocked) {
			return nil, fmt.Errorf("%w: %v", ErrStepBlocked, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidNavigation, err)
	}

	session.Step = next
	session.UpdatedAt = s.timeProvider.Now()
	if err := s.store.Save(ctx, session); err != nil {
		s.logger.Error("Navigate: failed to save session=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Navigate - save session: %v", ErrInternal, err)
	}

	s.logger.Info("Navigate: session=%s action=%s step=%d", id, action, next)
	return s.view(session, in.Totals), nil
}

// SelectSlot выбирает время или смену из снимка доступности.
// Занятый или неизвестный слот не выбирается: черновик остаётся без изменений.
func (s *Service) SelectSlot(ctx context.Context, id string, key string) (*models.SessionView, error) {
	return s.mutate(ctx, id, "slot", func(session *domain.BookingSession, cell *Cell) error {
		snap := session.Availability
		if snap == nil {
			return ErrAvailabilityNotResolved
		}
		slot, ok := snap.Find(key)
		if !ok || !slot.Available {
			s.logger.Warn("SelectSlot: session=%s slot=%s is not available, selection unchanged", id, key)
			return nil
		}
		s.selectSlot(session, cell, slot)
		return nil
	})
}

// ApplyAvailability сохраняет снимок доступности в сессии и выбирает слот:
// текущий, если он всё ещё свободен, иначе первый свободный; без свободных слотов выбор сбрасывается.
func (s *Service) ApplyAvailability(ctx context.Context, id string, snap *domain.AvailabilitySnapshot) (*models.SessionView, error) {
	return s.mutate(ctx, id, "availability", func(session *domain.BookingSession, cell *Cell) error {
		if snap == nil {
			return ErrAvailabilityNotResolved
		}
		if snap.Variant != session.Variant {
			return fmt.Errorf("%w: availability for %s applied to %s session", ErrInvalidInput, snap.Variant, session.Variant)
		}
		session.Availability = snap
		cell.Update(func(d *domain.ReservationDraft) { d.SetDate(snap.Date) })

		if current := session.Draft.SlotKey(); current != "" && snap.IsAvailable(current) {
			session.RefreshInventory()
			return nil
		}
		if slot, ok := snap.FirstAvailable(); ok {
			s.selectSlot(session, cell, slot)
			return nil
		}
		cell.Update(func(d *domain.ReservationDraft) { d.ClearSlot() })
		session.RefreshInventory()
		return nil
	})
}

// Cancel отказ от мастера: черновик удаляется без сохранения
func (s *Service) Cancel(ctx context.Context, id string) error {
	return s.locked(ctx, id, "CancelSession", func() error {
		if _, err := s.Load(ctx, id); err != nil {
			return err
		}
		return s.Discard(ctx, id)
	})
}

// Discard удаляет сессию без проверок; вызывающий уже держит флаг оформления
func (s *Service) Discard(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.Error("CancelSession: failed to delete session=%s: %v", id, err)
		return fmt.Errorf("%w: CancelSession - delete session: %v", ErrInternal, err)
	}
	s.logger.Info("CancelSession: session=%s discarded", id)
	return nil
}

// locked выполняет fn под флагом оформления сессии.
// Пока бронирование оформляется, черновик не меняется: ErrSessionBusy.
func (s *Service) locked(ctx context.Context, id string, op string, fn func() error) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	ttl := s.cfg.ProcessingTTL
	if ttl <= 0 {
		ttl = defaultProcessingTTL
	}
	acquired, err := s.store.AcquireProcessing(ctx, id, ttl)
	if err != nil {
		s.logger.Error("%s: failed to acquire processing flag for session=%s: %v", op, id, err)
		return fmt.Errorf("%w: %s - acquire processing flag: %v", ErrInternal, op, err)
	}
	if !acquired {
		s.logger.Warn("%s: session=%s is busy", op, id)
		return ErrSessionBusy
	}
	defer func() {
		if err := s.store.ReleaseProcessing(context.WithoutCancel(ctx), id); err != nil {
			s.logger.Error("%s: failed to release processing flag for session=%s: %v", op, id, err)
		}
	}()

	return fn()
}

// Load загружает сессию и проверяет, что она принадлежит текущему клиенту
func (s *Service) Load(ctx context.Context, id string) (*domain.BookingSession, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	session, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("LoadSession: storage error for session=%s: %v", id, err)
		return nil, fmt.Errorf("%w: LoadSession - storage error: %v", ErrInternal, err)
	}

	if session.CustomerID != nil {
		current, ok := s.identities.Current(ctx)
		if !ok || current.CustomerID != *session.CustomerID {
			s.logger.Warn("LoadSession: access denied to session=%s", id)
			return nil, ErrAccessDenied
		}
	}
	return session, nil
}

// Evaluate итоги и вход для проверок мастера по текущему состоянию сессии
func (s *Service) Evaluate(session *domain.BookingSession) (pricing.Totals, wizard.Input) {
	totals := s.calculator.ComputeTotals(session.Draft)
	return totals, s.input(session, totals)
}

// mutate под флагом оформления загружает сессию, применяет fn к наблюдаемому черновику и сохраняет результат.
// Итоги пересчитываются подписчиком ячейки на каждое изменение.
func (s *Service) mutate(
	ctx context.Context,
	id string,
	op string,
	fn func(session *domain.BookingSession, cell *Cell) error,
) (*models.SessionView, error) {
	var view *models.SessionView
	err := s.locked(ctx, id, "UpdateDraft", func() error {
		var err error
		view, err = s.update(ctx, id, op, fn)
		return err
	})
	return view, err
}

func (s *Service) update(
	ctx context.Context,
	id string,
	op string,
	fn func(session *domain.BookingSession, cell *Cell) error,
) (*models.SessionView, error) {
	session, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	cell := NewCell(session.Draft)
	var totals pricing.Totals
	changes := 0
	unsubscribe := cell.Subscribe(func(d *domain.ReservationDraft) {
		totals = s.calculator.ComputeTotals(d)
		changes++
	})
	defer unsubscribe()

	if err := fn(session, cell); err != nil {
		s.logger.Warn("UpdateDraft: session=%s op=%s rejected: %v", id, op, err)
		return nil, err
	}

	session.UpdatedAt = s.timeProvider.Now()
	if err := s.store.Save(ctx, session); err != nil {
		s.logger.Error("UpdateDraft: failed to save session=%s op=%s: %v", id, op, err)
		return nil, fmt.Errorf("%w: UpdateDraft - save session: %v", ErrInternal, err)
	}

	s.logger.Debug("UpdateDraft: session=%s op=%s changes=%d total=%s", id, op, changes-1, totals.Total)
	return s.view(session, totals), nil
}

func (s *Service) selectSlot(session *domain.BookingSession, cell *Cell, slot *domain.AvailabilitySlot) {
	if session.Variant == domain.VariantEvent {
		events := s.catalog.EventCatalog()
		shift, ok := events.FindShift(slot.ShiftID)
		if !ok {
			s.logger.Warn("SelectSlot: session=%s shift=%d is not configured", session.ID, slot.ShiftID)
			return
		}
		cell.Update(func(d *domain.ReservationDraft) { d.SelectShift(shift) })
	} else {
		cell.Update(func(d *domain.ReservationDraft) { d.SelectTime(slot.Time) })
	}
	session.RefreshInventory()
}

func (s *Service) guestLimits(v domain.Variant) domain.GuestLimits {
	if v == domain.VariantEvent {
		return s.cfg.EventGuests
	}
	return s.cfg.TableGuests
}

func (s *Service) input(session *domain.BookingSession, totals pricing.Totals) wizard.Input {
	return wizard.Input{Session: session, Totals: totals, Guests: s.guestLimits(session.Variant)}
}

func (s *Service) view(session *domain.BookingSession, totals pricing.Totals) *models.SessionView {
	graph := wizard.For(session.Variant)
	in := s.input(session, totals)

	labels := graph.Labels(in)
	idx := graph.DisplayIndex(session.Step, in)
	label := ""
	if idx >= 0 && idx < len(labels) {
		label = labels[idx]
	}
	canProceed := graph.CanProceed(session.Step, in)
	isFinal := graph.IsFinal(session.Step, in)

	return &models.SessionView{
		ID:           session.ID,
		Variant:      session.Variant,
		Step:         session.Step,
		StepLabel:    label,
		DisplayIndex: idx,
		StepLabels:   labels,
		CanProceed:   canProceed,
		IsFinal:      isFinal,
		CanSubmit:    isFinal && canProceed,
		Draft:        session.Draft.Clone(),
		Totals:       totals,
		Availability: session.Availability,
		Inventory:    session.Inventory,
		Degraded:     session.Availability != nil && session.Availability.IsFallback(),
		CreatedAt:    session.CreatedAt,
		UpdatedAt:    session.UpdatedAt,
	}
}
