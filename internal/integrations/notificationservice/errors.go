package notificationservice

import "errors"

var (
	// ErrInvalidRequest сервис уведомлений отклонил данные (400)
	ErrInvalidRequest = errors.New("notificationservice: invalid request")

	// ErrServiceUnavailable сервис уведомлений не отвечает или вернул 5xx
	ErrServiceUnavailable = errors.New("notificationservice: service unavailable")

	// ErrDeliveryFailed сервис ответил success=false
	ErrDeliveryFailed = errors.New("notificationservice: delivery failed")

	// ErrPublish ошибка публикации в брокер
	ErrPublish = errors.New("notificationservice: failed to publish")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notificationservice client: internal error")
)
