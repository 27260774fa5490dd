package cancel_reservation

import "github.com/m04kA/MRK-ReservationService/internal/domain"

// AdminRole роль сотрудника ресторана, которому доступна отмена любых бронирований
const AdminRole = "ADMIN"

// Request модель запроса на отмену бронирования
type Request struct {
	ReservationID int64
}

// Response модель ответа после отмены
type Response struct {
	ReservationID      int64
	ReservationCode    string
	Status             domain.ReservationStatus
	NotificationFailed bool
}
