package update_draft

import (
	"errors"
	"fmt"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/service/drafts"
)

var (
	errUnknownOp    = errors.New("unknown operation")
	errMissingField = errors.New("missing required field")
)

// UpdateDraftRequest HTTP request model: op и поля, нужные этой операции
type UpdateDraftRequest struct {
	Op string `json:"op"`

	// customer
	DocumentType   *domain.DocumentType `json:"documentType,omitempty"`
	DocumentNumber *string              `json:"documentNumber,omitempty"`
	Name           *string              `json:"name,omitempty"`
	Email          *string              `json:"email,omitempty"`
	Phone          *string              `json:"phone,omitempty"`

	// schedule
	Date   *string `json:"date,omitempty"`
	Guests *int    `json:"guests,omitempty"`

	EventTypeID    *string `json:"eventTypeId,omitempty"`
	TableID        *int64  `json:"tableId,omitempty"`
	DistributionID *string `json:"distributionId,omitempty"`
	LinenColorID   *string `json:"linenColorId,omitempty"`
	ItemID         *int64  `json:"itemId,omitempty"`
	ServiceID      *int64  `json:"serviceId,omitempty"`
	Include        *bool   `json:"include,omitempty"`
	Accepted       *bool   `json:"accepted,omitempty"`
	Text           *string `json:"text,omitempty"`

	Method *domain.PaymentMethod `json:"method,omitempty"`
	Plan   *domain.PaymentPlan   `json:"plan,omitempty"`
}

// ToMutation конвертирует HTTP запрос в мутацию черновика
func (r *UpdateDraftRequest) ToMutation() (drafts.Mutation, error) {
	switch r.Op {
	case drafts.SetCustomer{}.Name():
		return drafts.SetCustomer{Patch: domain.CustomerPatch{
			DocumentType:   r.DocumentType,
			DocumentNumber: r.DocumentNumber,
			Name:           r.Name,
			Email:          r.Email,
			Phone:          r.Phone,
		}}, nil

	case drafts.SetSchedule{}.Name():
		if r.Date == nil && r.Guests == nil {
			return nil, fmt.Errorf("%w: date or guests", errMissingField)
		}
		return drafts.SetSchedule{Date: r.Date, Guests: r.Guests}, nil

	case drafts.SetEventType{}.Name():
		if r.EventTypeID == nil {
			return nil, fmt.Errorf("%w: eventTypeId", errMissingField)
		}
		return drafts.SetEventType{EventTypeID: *r.EventTypeID}, nil

	case drafts.SelectTable{}.Name():
		if r.TableID == nil {
			return nil, fmt.Errorf("%w: tableId", errMissingField)
		}
		return drafts.SelectTable{TableID: *r.TableID}, nil

	case drafts.SelectEventConfig{}.Name():
		if r.DistributionID == nil || r.LinenColorID == nil {
			return nil, fmt.Errorf("%w: distributionId and linenColorId", errMissingField)
		}
		return drafts.SelectEventConfig{DistributionID: *r.DistributionID, LinenColorID: *r.LinenColorID}, nil

	case drafts.AddMenuItem{}.Name():
		if r.ItemID == nil {
			return nil, fmt.Errorf("%w: itemId", errMissingField)
		}
		return drafts.AddMenuItem{ItemID: *r.ItemID}, nil

	case drafts.RemoveMenuItem{}.Name():
		if r.ItemID == nil {
			return nil, fmt.Errorf("%w: itemId", errMissingField)
		}
		return drafts.RemoveMenuItem{ItemID: *r.ItemID}, nil

	case drafts.ToggleService{}.Name():
		if r.ServiceID == nil {
			return nil, fmt.Errorf("%w: serviceId", errMissingField)
		}
		return drafts.ToggleService{ServiceID: *r.ServiceID}, nil

	case drafts.SetIncludeMenu{}.Name():
		if r.Include == nil {
			return nil, fmt.Errorf("%w: include", errMissingField)
		}
		return drafts.SetIncludeMenu{Include: *r.Include}, nil

	case drafts.SetTerms{}.Name():
		if r.Accepted == nil {
			return nil, fmt.Errorf("%w: accepted", errMissingField)
		}
		return drafts.SetTerms{Accepted: *r.Accepted}, nil

	case drafts.SetSpecialRequests{}.Name():
		if r.Text == nil {
			return nil, fmt.Errorf("%w: text", errMissingField)
		}
		return drafts.SetSpecialRequests{Text: *r.Text}, nil

	case drafts.SetPaymentMethod{}.Name():
		if r.Method == nil {
			return nil, fmt.Errorf("%w: method", errMissingField)
		}
		return drafts.SetPaymentMethod{Method: *r.Method}, nil

	case drafts.SetPaymentPlan{}.Name():
		if r.Plan == nil {
			return nil, fmt.Errorf("%w: plan", errMissingField)
		}
		return drafts.SetPaymentPlan{Plan: *r.Plan}, nil

	case drafts.ResetDraft{}.Name():
		return drafts.ResetDraft{}, nil
	}
	return nil, fmt.Errorf("%w: %q", errUnknownOp, r.Op)
}
