package cancel_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_reservation: invalid input data")

	// ErrUnauthenticated отмена доступна только аутентифицированному клиенту
	ErrUnauthenticated = errors.New("cancel_reservation: authentication required")

	// ErrReservationNotFound бронирование не найдено
	ErrReservationNotFound = errors.New("cancel_reservation: reservation not found")

	// ErrAccessDenied бронирование принадлежит другому клиенту
	ErrAccessDenied = errors.New("cancel_reservation: access denied")

	// ErrAlreadyCancelled бронирование уже отменено
	ErrAlreadyCancelled = errors.New("cancel_reservation: reservation is already cancelled")

	// ErrNotCancellable reservation-service отказал в отмене
	ErrNotCancellable = errors.New("cancel_reservation: reservation cannot be cancelled")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_reservation: internal error")
)
