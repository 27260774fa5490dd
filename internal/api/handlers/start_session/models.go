package start_session

import "github.com/m04kA/MRK-ReservationService/internal/domain"

// StartSessionRequest HTTP request model
type StartSessionRequest struct {
	Variant domain.Variant `json:"variant"`
}
