package navigate_step

import "github.com/m04kA/MRK-ReservationService/internal/service/drafts/models"

// NavigateRequest HTTP request model; step нужен только для goto
type NavigateRequest struct {
	Action models.NavigateAction `json:"action"`
	Step   int                   `json:"step,omitempty"`
}

func (r *NavigateRequest) valid() bool {
	switch r.Action {
	case models.ActionNext, models.ActionPrev:
		return true
	case models.ActionGoTo:
		return r.Step > 0
	}
	return false
}
