package reservationservice

import "errors"

var (
	// ErrReservationNotFound бронирование не найдено
	ErrReservationNotFound = errors.New("reservationservice: reservation not found")

	// ErrInvalidRequest сервис отклонил запрос (400/422)
	ErrInvalidRequest = errors.New("reservationservice: invalid request")

	// ErrConflict слот или стол уже заняты (409)
	ErrConflict = errors.New("reservationservice: conflict")

	// ErrServiceUnavailable сервис не отвечает или вернул 5xx
	ErrServiceUnavailable = errors.New("reservationservice: service unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("reservationservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("reservationservice client: invalid response")
)
