package resolve_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/service/drafts"
)

// UseCase use case для получения доступности на дату и применения её к черновику
type UseCase struct {
	reservations ReservationClient
	drafts       DraftService
	catalog      CatalogService
	metrics      Metrics
	cfg          Config
	fallback     *fallbackGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservations ReservationClient,
	draftService DraftService,
	catalog CatalogService,
	metrics Metrics,
	cfg Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservations: reservations,
		drafts:       draftService,
		catalog:      catalog,
		metrics:      metrics,
		cfg:          cfg,
		fallback:     &fallbackGenerator{cfg: cfg.Fallback, random: globalRandom{}},
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступности.
// Ошибка reservation-service не возвращается клиенту: слоты генерируются локально и помечаются как резервные.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolveAvailability: session=%s, date=%s", req.SessionID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем сессию
	session, err := uc.drafts.Load(ctx, req.SessionID)
	if err != nil {
		return nil, uc.mapDraftError(err, req.SessionID)
	}

	// 3. Проверяем дату по правилам варианта
	now := uc.timeProvider.Now()
	if err := validateDate(uc.cfg.dateRules(session.Variant), req.Date, now); err != nil {
		uc.logger.Warn("ResolveAvailability: date validation failed: %v", err)
		return nil, err
	}
	date, _ := domain.ParseDate(req.Date, now.Location())

	// 4. Запрашиваем reservation-service, при ошибке строим резервный снимок
	snap := &domain.AvailabilitySnapshot{
		Date:       req.Date,
		Variant:    session.Variant,
		Source:     domain.SourceLive,
		ResolvedAt: now,
	}

	callCtx := ctx
	if uc.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, uc.cfg.Timeout)
		defer cancel()
	}

	shifts := uc.catalog.EventCatalog().Shifts
	if session.Variant == domain.VariantEvent {
		resp, err := uc.reservations.GetEventShiftAvailability(callCtx, req.Date)
		if err != nil {
			uc.logger.Warn("ResolveAvailability: shift availability unavailable for date=%s, using fallback: %v", req.Date, err)
			snap.Source = domain.SourceFallback
			snap.Reason = err.Error()
			snap.Slots = uc.fallback.shiftSlots(date, shifts)
		} else {
			snap.Slots = shiftSlotsFromAvailability(shifts, resp)
		}
	} else {
		schedule, err := uc.reservations.GetTableAvailability(callCtx, req.Date)
		switch {
		case err != nil:
			uc.logger.Warn("ResolveAvailability: table availability unavailable for date=%s, using fallback: %v", req.Date, err)
			snap.Source = domain.SourceFallback
			snap.Reason = err.Error()
		case len(schedule) == 0:
			uc.logger.Warn("ResolveAvailability: empty schedule for date=%s, using fallback", req.Date)
			snap.Source = domain.SourceFallback
			snap.Reason = "empty schedule"
		default:
			snap.Slots = tableSlotsFromSchedule(schedule)
		}
		if snap.IsFallback() {
			snap.Slots = uc.fallback.tableSlots(date, session.Draft.Schedule.Guests)
		}
	}
	uc.metrics.ObserveAvailability(string(session.Variant), string(snap.Source))

	// 5. Сохраняем снимок в сессии, черновик выбирает слот сам
	view, err := uc.drafts.ApplyAvailability(ctx, req.SessionID, snap)
	if err != nil {
		return nil, uc.mapDraftError(err, req.SessionID)
	}

	uc.logger.Info("ResolveAvailability: session=%s, date=%s, source=%s, slots=%d",
		req.SessionID, req.Date, snap.Source, len(snap.Slots))

	return view, nil
}

func (uc *UseCase) mapDraftError(err error, sessionID string) error {
	switch {
	case errors.Is(err, drafts.ErrSessionNotFound):
		uc.logger.Warn("ResolveAvailability: session=%s not found", sessionID)
		return ErrSessionNotFound
	case errors.Is(err, drafts.ErrAccessDenied):
		return ErrAccessDenied
	case errors.Is(err, drafts.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		uc.logger.Error("ResolveAvailability: draft error for session=%s: %v", sessionID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
