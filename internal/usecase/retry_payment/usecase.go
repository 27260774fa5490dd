package retry_payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	confirmationRepo "github.com/m04kA/MRK-ReservationService/internal/infra/storage/confirmation"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/notificationservice"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/paymentservice"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/reservationservice"
)

// UseCase use case повторной оплаты уже созданного бронирования
type UseCase struct {
	confirmations ConfirmationRepository
	lock          ProcessingLock
	reservations  ReservationClient
	payments      PaymentClient
	tokenizer     CardTokenizer
	notifier      Notifier
	identities    IdentityProvider
	metrics       Metrics
	cfg           Config
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	confirmations ConfirmationRepository,
	lock ProcessingLock,
	reservations ReservationClient,
	payments PaymentClient,
	tokenizer CardTokenizer,
	notifier Notifier,
	identities IdentityProvider,
	metrics Metrics,
	cfg Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		confirmations: confirmations,
		lock:          lock,
		reservations:  reservations,
		payments:      payments,
		tokenizer:     tokenizer,
		notifier:      notifier,
		identities:    identities,
		metrics:       metrics,
		cfg:           cfg,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case повторной оплаты.
// Отказ шлюза не считается ошибкой: он отражается в подтверждении, как и при оформлении.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RetryPayment: reservation=%d", req.ReservationID)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("RetryPayment: validation failed: %v", err)
		return nil, err
	}

	// 2. Флаг повторной оплаты по бронированию
	lockID := "reservation-" + strconv.FormatInt(req.ReservationID, 10)
	acquired, err := uc.lock.AcquireProcessing(ctx, lockID, uc.cfg.ProcessingTTL)
	if err != nil {
		uc.logger.Error("RetryPayment: failed to acquire processing flag for reservation=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: acquire processing flag: %v", ErrInternal, err)
	}
	if !acquired {
		return nil, ErrRetryInProgress
	}
	defer func() {
		if err := uc.lock.ReleaseProcessing(context.WithoutCancel(ctx), lockID); err != nil {
			uc.logger.Error("RetryPayment: failed to release processing flag for reservation=%d: %v", req.ReservationID, err)
		}
	}()

	// 3. Получаем подтверждение
	conf, err := uc.confirmations.GetByReservationID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, confirmationRepo.ErrConfirmationNotFound) {
			uc.logger.Warn("RetryPayment: confirmation for reservation=%d not found", req.ReservationID)
			return nil, ErrConfirmationNotFound
		}
		uc.logger.Error("RetryPayment: failed to get confirmation for reservation=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get confirmation: %v", ErrInternal, err)
	}

	// 4. Проверяем владельца и что есть что оплачивать
	var customerID *int64
	if current, ok := uc.identities.Current(ctx); ok {
		customerID = &current.CustomerID
	}
	if !conf.AccessibleBy(customerID, req.AccessToken) {
		uc.logger.Warn("RetryPayment: access denied to reservation=%d", req.ReservationID)
		return nil, ErrAccessDenied
	}
	if !conf.NeedsPaymentRetry() {
		uc.logger.Warn("RetryPayment: reservation=%d has nothing to retry, status=%s", req.ReservationID, conf.Status)
		return nil, ErrNothingToRetry
	}

	// 5. Токен карты
	token, err := uc.cardToken(req)
	if err != nil {
		uc.logger.Warn("RetryPayment: card tokenization failed for reservation=%d: %v", req.ReservationID, err)
		uc.record(conf, domain.StageTokenizeCard, domain.OutcomeFailed)
		failPayment(conf, err)
		return uc.save(ctx, conf), nil
	}
	uc.record(conf, domain.StageTokenizeCard, domain.OutcomeSuccess)

	// 6. Списываем остаток
	amount := conf.OutstandingAmount()
	resp, err := uc.payments.ProcessPayment(ctx, &paymentservice.Charge{
		ReservationID: conf.ReservationID,
		Amount:        amount.Float64(),
		CustomerEmail: conf.CustomerEmail,
		CustomerName:  conf.CustomerName,
		CustomerPhone: conf.CustomerPhone,
		Token:         token,
	})
	if err != nil {
		uc.logger.Warn("RetryPayment: payment failed for reservation=%d: %v", req.ReservationID, err)
		uc.record(conf, domain.StageProcessPayment, domain.OutcomeFailed)
		failPayment(conf, err)
		return uc.save(ctx, conf), nil
	}
	uc.record(conf, domain.StageProcessPayment, domain.OutcomeSuccess)

	conf.AmountPaid += amount
	conf.PaymentFailed = false
	conf.PaymentError = nil
	if ref := resp.Reference(); ref != "" {
		conf.TransactionID = &ref
	}

	// 7. Переводим бронирование в оплаченный статус
	status := domain.PaidStatus(conf.Variant, conf.PaymentPlan)
	update := &reservationservice.UpdateStatusRequest{Status: string(status), AmountPaid: conf.AmountPaid.Float64()}
	if conf.TransactionID != nil {
		update.TransactionID = *conf.TransactionID
	}
	if _, err := uc.reservations.UpdateStatus(ctx, conf.ReservationID, update); err != nil {
		uc.logger.Error("RetryPayment: failed to update status of reservation=%d to %s: %v", conf.ReservationID, status, err)
		conf.StatusUpdateFailed = true
		uc.record(conf, domain.StageUpdateStatus, domain.OutcomeFailed)
	} else {
		conf.Status = status
		conf.StatusUpdateFailed = false
		uc.record(conf, domain.StageUpdateStatus, domain.OutcomeSuccess)
	}

	// 8. Уведомление, ошибка не влияет на результат
	if err := uc.notifier.NotifyConfirmed(ctx, notificationFromConfirmation(conf)); err != nil {
		uc.logger.Warn("RetryPayment: notification failed for reservation=%d: %v", conf.ReservationID, err)
		conf.NotificationFailed = true
		uc.record(conf, domain.StageNotify, domain.OutcomeFailed)
	} else {
		conf.NotificationFailed = false
		uc.record(conf, domain.StageNotify, domain.OutcomeSuccess)
	}

	uc.logger.Info("RetryPayment: reservation=%d paid=%s status=%s", conf.ReservationID, amount, conf.Status)
	return uc.save(ctx, conf), nil
}

func (uc *UseCase) cardToken(req *Request) (*paymentservice.CardToken, error) {
	if req.CardToken != "" {
		return paymentservice.FromClientToken(req.CardToken)
	}
	return uc.tokenizer.Tokenize(*req.Card)
}

// save сохраняет подтверждение; ошибка хранилища только логируется, списание уже произошло
func (uc *UseCase) save(ctx context.Context, conf *domain.Confirmation) *domain.Confirmation {
	conf.Stages[domain.StageRecordConfirmation] = domain.OutcomeSuccess
	if err := uc.confirmations.Save(ctx, conf); err != nil {
		uc.logger.Error("RetryPayment: failed to record confirmation for reservation=%d: %v", conf.ReservationID, err)
		conf.Stages[domain.StageRecordConfirmation] = domain.OutcomeFailed
	}
	uc.metrics.ObserveStage(string(domain.StageRecordConfirmation), string(conf.Stages[domain.StageRecordConfirmation]))
	return conf
}

func (uc *UseCase) record(conf *domain.Confirmation, stage domain.Stage, outcome domain.Outcome) {
	conf.Stages[stage] = outcome
	uc.metrics.ObserveStage(string(stage), string(outcome))
}

func failPayment(conf *domain.Confirmation, err error) {
	conf.PaymentFailed = true
	msg := paymentservice.UserMessage(err)
	conf.PaymentError = &msg
}

func notificationFromConfirmation(c *domain.Confirmation) *notificationservice.ReservationNotification {
	paymentStatus := "PAGADO"
	if c.AmountPaid < c.Total {
		paymentStatus = "PARCIAL"
	}
	return &notificationservice.ReservationNotification{
		CustomerName:      c.CustomerName,
		CustomerPhone:     notificationservice.NormalizePhone(c.CustomerPhone),
		CustomerEmail:     c.CustomerEmail,
		ReservationCode:   c.ReservationCode,
		ReservationDate:   c.Date,
		ReservationTime:   c.Slot,
		GuestCount:        c.Guests,
		PaymentType:       c.PaymentMethod.RemoteName(),
		PaymentStatus:     paymentStatus,
		TotalAmount:       c.Total.Float64(),
		ReservationStatus: string(c.Status),
		ReservationType:   c.Variant.ReservationType(),
		ReservationID:     c.ReservationID,
	}
}
