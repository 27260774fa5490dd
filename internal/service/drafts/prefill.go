package drafts

import (
	"context"
	"strings"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/pkg/ptr"
)

// prefill заполняет данные клиента из токена, затем из профиля customer-service.
// Ошибка customer-service не мешает начать бронирование.
func (s *Service) prefill(ctx context.Context, d *domain.ReservationDraft, customerID int64, name, email string) {
	patch := domain.CustomerPatch{}
	if name != "" {
		patch.Name = ptr.Ptr(name)
	}
	if email != "" {
		patch.Email = ptr.Ptr(email)
	}

	customer, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		s.logger.Warn("StartSession: customer profile unavailable for customer=%d: %v", customerID, err)
	} else {
		if full := strings.TrimSpace(customer.FirstName + " " + customer.LastName); full != "" {
			patch.Name = ptr.Ptr(full)
		}
		if customer.Phone != "" {
			patch.Phone = ptr.Ptr(customer.Phone)
		}
		if doc := strings.TrimSpace(customer.IdentityDocument); doc != "" {
			patch.DocumentNumber = ptr.Ptr(doc)
			if docType, ok := guessDocumentType(doc); ok {
				patch.DocumentType = ptr.Ptr(docType)
			}
		}
	}

	d.SetCustomer(patch)
}

func guessDocumentType(number string) (domain.DocumentType, bool) {
	for _, t := range []domain.DocumentType{domain.DocumentDNI, domain.DocumentRUC, domain.DocumentCE, domain.DocumentPassport} {
		if domain.ValidDocument(t, number) {
			return t, true
		}
	}
	return "", false
}
