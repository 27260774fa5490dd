package retry_payment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("retry_payment: invalid input data")

	// ErrConfirmationNotFound подтверждение бронирования не найдено
	ErrConfirmationNotFound = errors.New("retry_payment: confirmation not found")

	// ErrAccessDenied бронирование принадлежит другому клиенту
	ErrAccessDenied = errors.New("retry_payment: access denied")

	// ErrNothingToRetry оплата уже прошла или бронирование отменено
	ErrNothingToRetry = errors.New("retry_payment: reservation has no failed payment")

	// ErrRetryInProgress повторная оплата уже выполняется
	ErrRetryInProgress = errors.New("retry_payment: payment retry already in progress")

	// ErrPaymentDetailsRequired нужны данные карты или токен
	ErrPaymentDetailsRequired = errors.New("retry_payment: card details are required")

	// ErrInvalidCard данные карты не прошли проверку
	ErrInvalidCard = errors.New("retry_payment: invalid card")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("retry_payment: internal error")
)
