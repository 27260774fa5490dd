package cancel_reservation

import cancelReservation "github.com/m04kA/MRK-ReservationService/internal/usecase/cancel_reservation"

// CancelReservationResponse HTTP response model
type CancelReservationResponse struct {
	ReservationID      int64  `json:"reservationId"`
	ReservationCode    string `json:"reservationCode"`
	Status             string `json:"status"`
	NotificationFailed bool   `json:"notificationFailed"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelReservation.Response) *CancelReservationResponse {
	return &CancelReservationResponse{
		ReservationID:      resp.ReservationID,
		ReservationCode:    resp.ReservationCode,
		Status:             string(resp.Status),
		NotificationFailed: resp.NotificationFailed,
	}
}
