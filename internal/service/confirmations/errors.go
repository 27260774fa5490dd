package confirmations

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirmations: invalid input")

	// ErrNotFound подтверждение не найдено
	ErrNotFound = errors.New("confirmations: confirmation not found")

	// ErrAccessDenied подтверждение принадлежит другому клиенту
	ErrAccessDenied = errors.New("confirmations: access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("confirmations: internal error")
)
