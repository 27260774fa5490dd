package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/paymentservice"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/reservationservice"
	"github.com/m04kA/MRK-ReservationService/internal/service/drafts"
)

// UseCase use case оформления бронирования: создание, оплата, смена статуса, уведомление, подтверждение.
// Стадии после создания бронирования не откатываются, их исходы попадают в подтверждение.
type UseCase struct {
	lock          ProcessingLock
	drafts        DraftService
	reservations  ReservationClient
	payments      PaymentClient
	tokenizer     CardTokenizer
	notifier      Notifier
	confirmations ConfirmationRepository
	metrics       Metrics
	cfg           Config
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	lock ProcessingLock,
	draftService DraftService,
	reservations ReservationClient,
	payments PaymentClient,
	tokenizer CardTokenizer,
	notifier Notifier,
	confirmations ConfirmationRepository,
	metrics Metrics,
	cfg Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		lock:          lock,
		drafts:        draftService,
		reservations:  reservations,
		payments:      payments,
		tokenizer:     tokenizer,
		notifier:      notifier,
		confirmations: confirmations,
		metrics:       metrics,
		cfg:           cfg,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case оформления бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: session=%s", req.SessionID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Флаг оформления ставится до чтения черновика, повторное нажатие отклоняется
	acquired, err := uc.lock.AcquireProcessing(ctx, req.SessionID, uc.cfg.ProcessingTTL)
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to acquire processing flag for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: acquire processing flag: %v", ErrInternal, err)
	}
	if !acquired {
		uc.logger.Warn("SubmitBooking: session=%s is already being submitted", req.SessionID)
		return nil, ErrSubmissionInProgress
	}
	defer func() {
		if err := uc.lock.ReleaseProcessing(context.WithoutCancel(ctx), req.SessionID); err != nil {
			uc.logger.Error("SubmitBooking: failed to release processing flag for session=%s: %v", req.SessionID, err)
		}
	}()

	// 3. Загружаем сессию (проверка владельца)
	session, err := uc.drafts.Load(ctx, req.SessionID)
	if err != nil {
		return nil, uc.mapDraftError(err, req.SessionID)
	}

	// 4. Проверяем готовность мастера и данные оплаты
	totals, in := uc.drafts.Evaluate(session)
	if err := validateReady(session, in); err != nil {
		uc.logger.Warn("SubmitBooking: session=%s: %v", req.SessionID, err)
		return nil, err
	}
	if err := validatePayment(req, totals, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("SubmitBooking: session=%s payment details rejected: %v", req.SessionID, err)
		return nil, err
	}

	// 5. Создаём бронирование; при ошибке сессия сохраняется для повторной попытки
	res, err := uc.reservations.Create(ctx, buildReservationRequest(session, totals))
	if err != nil {
		uc.observe(domain.StageCreateReservation, domain.OutcomeFailed)
		return nil, uc.mapCreateError(err, req.SessionID)
	}
	uc.observe(domain.StageCreateReservation, domain.OutcomeSuccess)

	conf := newConfirmation(session, res, totals)
	conf.Stages[domain.StageCreateReservation] = domain.OutcomeSuccess
	uc.logger.Info("SubmitBooking: session=%s created reservation id=%d code=%s status=%s",
		req.SessionID, res.ID, conf.ReservationCode, conf.Status)

	// 6. Онлайн-оплата: токен карты, списание, смена статуса
	if conf.AmountDue.IsPositive() && conf.PaymentMethod.IsOnline() {
		uc.pay(ctx, req, session.Draft.PaymentPlan, conf)
	}

	// 7. Уведомление, ошибка не влияет на результат
	if err := uc.notifier.NotifyConfirmed(ctx, buildNotification(session, conf)); err != nil {
		uc.logger.Warn("SubmitBooking: notification failed for reservation id=%d: %v", conf.ReservationID, err)
		conf.NotificationFailed = true
		uc.record(conf, domain.StageNotify, domain.OutcomeFailed)
	} else {
		uc.record(conf, domain.StageNotify, domain.OutcomeSuccess)
	}

	// 8. Сохраняем подтверждение
	conf.Stages[domain.StageRecordConfirmation] = domain.OutcomeSuccess
	if err := uc.confirmations.Save(ctx, conf); err != nil {
		uc.logger.Error("SubmitBooking: failed to record confirmation for reservation id=%d: %v", conf.ReservationID, err)
		conf.Stages[domain.StageRecordConfirmation] = domain.OutcomeFailed
	}
	uc.observe(domain.StageRecordConfirmation, conf.Stages[domain.StageRecordConfirmation])

	// 9. Черновик больше не нужен; удаляется до снятия флага
	if err := uc.drafts.Discard(ctx, req.SessionID); err != nil {
		uc.logger.Warn("SubmitBooking: failed to discard session=%s: %v", req.SessionID, err)
	}

	uc.logger.Info("SubmitBooking: reservation id=%d status=%s paid=%s payment_failed=%t status_update_failed=%t notification_failed=%t",
		conf.ReservationID, conf.Status, conf.AmountPaid, conf.PaymentFailed, conf.StatusUpdateFailed, conf.NotificationFailed)

	return conf, nil
}

// pay токенизирует карту, списывает сумму и переводит бронирование в оплаченный статус
func (uc *UseCase) pay(ctx context.Context, req *Request, plan domain.PaymentPlan, conf *domain.Confirmation) {
	// 6.1. Токен карты
	var (
		token *paymentservice.CardToken
		err   error
	)
	if req.CardToken != "" {
		token, err = paymentservice.FromClientToken(req.CardToken)
	} else {
		token, err = uc.tokenizer.Tokenize(*req.Card)
	}
	if err != nil {
		uc.logger.Warn("SubmitBooking: card tokenization failed for reservation id=%d: %v", conf.ReservationID, err)
		uc.record(conf, domain.StageTokenizeCard, domain.OutcomeFailed)
		failPayment(conf, err)
		return
	}
	uc.record(conf, domain.StageTokenizeCard, domain.OutcomeSuccess)

	// 6.2. Списание
	charge := &paymentservice.Charge{
		ReservationID: conf.ReservationID,
		Amount:        conf.AmountDue.Float64(),
		CustomerEmail: conf.CustomerEmail,
		CustomerName:  conf.CustomerName,
		CustomerPhone: conf.CustomerPhone,
		Token:         token,
	}
	resp, err := uc.payments.ProcessPayment(ctx, charge)
	if err != nil {
		uc.logger.Warn("SubmitBooking: payment failed for reservation id=%d: %v", conf.ReservationID, err)
		uc.record(conf, domain.StageProcessPayment, domain.OutcomeFailed)
		failPayment(conf, err)
		return
	}
	uc.record(conf, domain.StageProcessPayment, domain.OutcomeSuccess)

	conf.AmountPaid = conf.AmountDue
	if ref := resp.Reference(); ref != "" {
		conf.TransactionID = &ref
	}

	// 6.3. Смена статуса; при ошибке бронирование остаётся в исходном статусе
	status := domain.PaidStatus(conf.Variant, plan)
	update := &reservationservice.UpdateStatusRequest{
		Status:     string(status),
		AmountPaid: conf.AmountPaid.Float64(),
	}
	if conf.TransactionID != nil {
		update.TransactionID = *conf.TransactionID
	}
	if _, err := uc.reservations.UpdateStatus(ctx, conf.ReservationID, update); err != nil {
		uc.logger.Error("SubmitBooking: failed to update status of reservation id=%d to %s: %v", conf.ReservationID, status, err)
		conf.StatusUpdateFailed = true
		uc.record(conf, domain.StageUpdateStatus, domain.OutcomeFailed)
		return
	}
	conf.Status = status
	uc.record(conf, domain.StageUpdateStatus, domain.OutcomeSuccess)
}

func (uc *UseCase) record(conf *domain.Confirmation, stage domain.Stage, outcome domain.Outcome) {
	conf.Stages[stage] = outcome
	uc.observe(stage, outcome)
}

func (uc *UseCase) observe(stage domain.Stage, outcome domain.Outcome) {
	uc.metrics.ObserveStage(string(stage), string(outcome))
}

func (uc *UseCase) mapDraftError(err error, sessionID string) error {
	switch {
	case errors.Is(err, drafts.ErrSessionNotFound):
		uc.logger.Warn("SubmitBooking: session=%s not found", sessionID)
		return ErrSessionNotFound
	case errors.Is(err, drafts.ErrAccessDenied):
		return ErrAccessDenied
	case errors.Is(err, drafts.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		uc.logger.Error("SubmitBooking: draft error for session=%s: %v", sessionID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

func (uc *UseCase) mapCreateError(err error, sessionID string) error {
	switch {
	case errors.Is(err, reservationservice.ErrConflict):
		uc.logger.Warn("SubmitBooking: slot taken for session=%s: %v", sessionID, err)
		return fmt.Errorf("%w: %v", ErrSlotTaken, err)
	case errors.Is(err, reservationservice.ErrInvalidRequest):
		uc.logger.Warn("SubmitBooking: reservation rejected for session=%s: %v", sessionID, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		uc.logger.Error("SubmitBooking: failed to create reservation for session=%s: %v", sessionID, err)
		return fmt.Errorf("%w: %v", ErrReservationUnavailable, err)
	}
}

func failPayment(conf *domain.Confirmation, err error) {
	conf.PaymentFailed = true
	msg := paymentservice.UserMessage(err)
	conf.PaymentError = &msg
}
