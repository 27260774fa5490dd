package catalogservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")

	// ErrServiceUnavailable management-service не отвечает или вернул 5xx
	ErrServiceUnavailable = errors.New("catalogservice: service unavailable")
)
