package cancel_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	confirmationRepo "github.com/m04kA/MRK-ReservationService/internal/infra/storage/confirmation"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/notificationservice"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/reservationservice"
)

// UseCase use case для отмены бронирования клиентом
type UseCase struct {
	reservations  ReservationClient
	notifier      Notifier
	confirmations ConfirmationRepository
	identities    IdentityProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservations ReservationClient,
	notifier Notifier,
	confirmations ConfirmationRepository,
	identities IdentityProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservations:  reservations,
		notifier:      notifier,
		confirmations: confirmations,
		identities:    identities,
		logger:        logger,
	}
}

// Execute выполняет use case отмены бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.ReservationID <= 0 {
		return nil, fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	current, ok := uc.identities.Current(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}
	uc.logger.Info("CancelReservation: customer=%d, reservation=%d", current.CustomerID, req.ReservationID)

	// 2. Получаем бронирование
	res, err := uc.reservations.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationservice.ErrReservationNotFound) {
			uc.logger.Warn("CancelReservation: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("CancelReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	// 3. Проверяем права
	isOwner := res.CustomerID != nil && *res.CustomerID == current.CustomerID
	if !isOwner && !current.HasRole(AdminRole) {
		uc.logger.Warn("CancelReservation: customer=%d is not the owner of reservation id=%d", current.CustomerID, req.ReservationID)
		return nil, ErrAccessDenied
	}

	// 4. Проверяем статус
	if !domain.ReservationStatus(res.Status).CanBeCancelled() {
		uc.logger.Warn("CancelReservation: reservation id=%d is already cancelled", req.ReservationID)
		return nil, ErrAlreadyCancelled
	}

	// 5. Отменяем в reservation-service
	cancelled, err := uc.reservations.Cancel(ctx, req.ReservationID)
	if err != nil {
		switch {
		case errors.Is(err, reservationservice.ErrConflict), errors.Is(err, reservationservice.ErrInvalidRequest):
			uc.logger.Warn("CancelReservation: reservation id=%d cannot be cancelled: %v", req.ReservationID, err)
			return nil, fmt.Errorf("%w: %v", ErrNotCancellable, err)
		case errors.Is(err, reservationservice.ErrReservationNotFound):
			return nil, ErrReservationNotFound
		default:
			uc.logger.Error("CancelReservation: failed to cancel reservation id=%d: %v", req.ReservationID, err)
			return nil, fmt.Errorf("%w: failed to cancel reservation: %v", ErrInternal, err)
		}
	}
	if cancelled != nil && cancelled.Code != "" {
		res.Code = cancelled.Code
	}

	resp := &Response{
		ReservationID:   res.ID,
		ReservationCode: res.Code,
		Status:          domain.StatusCancelled,
	}

	// 6. Уведомление и подтверждение обновляются без влияния на результат
	if err := uc.notifier.NotifyCancelled(ctx, cancellationNotification(res)); err != nil {
		uc.logger.Warn("CancelReservation: notification failed for reservation id=%d: %v", res.ID, err)
		resp.NotificationFailed = true
	}
	if err := uc.confirmations.UpdateStatus(ctx, res.ID, domain.StatusCancelled); err != nil &&
		!errors.Is(err, confirmationRepo.ErrConfirmationNotFound) {
		uc.logger.Error("CancelReservation: failed to update confirmation for reservation id=%d: %v", res.ID, err)
	}

	uc.logger.Info("CancelReservation: reservation id=%d cancelled", res.ID)
	return resp, nil
}

func cancellationNotification(res *reservationservice.Reservation) *notificationservice.ReservationNotification {
	return &notificationservice.ReservationNotification{
		CustomerName:      res.HolderName,
		CustomerPhone:     notificationservice.NormalizePhone(res.HolderPhone),
		CustomerEmail:     res.HolderEmail,
		ReservationCode:   res.Code,
		ReservationDate:   res.ReservationDate,
		ReservationTime:   res.ReservationTime,
		GuestCount:        res.PeopleCount,
		PaymentType:       res.PaymentMethod,
		TotalAmount:       res.TotalAmount,
		ReservationStatus: string(domain.StatusCancelled),
		ReservationType:   res.ReservationType,
		ReservationID:     res.ID,
	}
}
