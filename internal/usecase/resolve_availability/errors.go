package resolve_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("resolve_availability: invalid input data")

	// ErrInvalidDate возвращается, когда дату нельзя выбрать для бронирования
	ErrInvalidDate = errors.New("resolve_availability: date is not bookable")

	// ErrSessionNotFound сессия не найдена или истекла
	ErrSessionNotFound = errors.New("resolve_availability: session not found")

	// ErrAccessDenied сессия принадлежит другому клиенту
	ErrAccessDenied = errors.New("resolve_availability: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("resolve_availability: internal error")
)
