package confirmations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	confirmationRepo "github.com/m04kA/MRK-ReservationService/internal/infra/storage/confirmation"
)

// Service чтение подтверждений для экрана подтверждения и квитанции
type Service struct {
	repo       Repository
	renderer   ReceiptRenderer
	identities IdentityProvider
	logger     Logger
}

// NewService создает новый экземпляр сервиса подтверждений
func NewService(repo Repository, renderer ReceiptRenderer, identities IdentityProvider, logger Logger) *Service {
	return &Service{
		repo:       repo,
		renderer:   renderer,
		identities: identities,
		logger:     logger,
	}
}

// Get подтверждение по id бронирования.
// Доступ по токену подтверждения, выданному при оформлении, или клиенту-владельцу.
func (s *Service) Get(ctx context.Context, reservationID int64, accessToken string) (*domain.Confirmation, error) {
	if reservationID <= 0 {
		return nil, fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	c, err := s.repo.GetByReservationID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, confirmationRepo.ErrConfirmationNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("GetConfirmation: failed to get confirmation for reservation=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: GetConfirmation - repository error: %v", ErrInternal, err)
	}

	var customerID *int64
	if current, ok := s.identities.Current(ctx); ok {
		customerID = &current.CustomerID
	}
	if !c.AccessibleBy(customerID, accessToken) {
		s.logger.Warn("GetConfirmation: access denied to reservation=%d, token=%t", reservationID, accessToken != "")
		return nil, ErrAccessDenied
	}
	return c, nil
}

// Receipt PDF-квитанция по подтверждению
func (s *Service) Receipt(ctx context.Context, reservationID int64, accessToken string) (*domain.Confirmation, []byte, error) {
	c, err := s.Get(ctx, reservationID, accessToken)
	if err != nil {
		return nil, nil, err
	}

	pdf, err := s.renderer.Render(c)
	if err != nil {
		s.logger.Error("GetReceipt: failed to render receipt for reservation=%d: %v", reservationID, err)
		return nil, nil, fmt.Errorf("%w: GetReceipt - render: %v", ErrInternal, err)
	}
	return c, pdf, nil
}
