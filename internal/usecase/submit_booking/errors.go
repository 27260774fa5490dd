package submit_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_booking: invalid input data")

	// ErrSessionNotFound сессия не найдена или истекла
	ErrSessionNotFound = errors.New("submit_booking: session not found")

	// ErrAccessDenied сессия принадлежит другому клиенту
	ErrAccessDenied = errors.New("submit_booking: access denied")

	// ErrSubmissionInProgress бронирование по этой сессии уже оформляется
	ErrSubmissionInProgress = errors.New("submit_booking: submission already in progress")

	// ErrNotReady мастер не на последнем шаге или его условие не выполнено
	ErrNotReady = errors.New("submit_booking: booking is not ready to be submitted")

	// ErrPaymentDetailsRequired для онлайн-оплаты нужны данные карты или токен
	ErrPaymentDetailsRequired = errors.New("submit_booking: card details are required")

	// ErrInvalidCard данные карты не прошли проверку
	ErrInvalidCard = errors.New("submit_booking: invalid card")

	// ErrSlotTaken слот заняли, пока клиент заполнял мастер
	ErrSlotTaken = errors.New("submit_booking: slot is no longer available")

	// ErrReservationUnavailable reservation-service не смог создать бронирование
	ErrReservationUnavailable = errors.New("submit_booking: reservation service unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)
