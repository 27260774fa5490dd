package paymentservice

import "errors"

var (
	// ErrPaymentDeclined платёж отклонён шлюзом (402 или статус FAILED)
	ErrPaymentDeclined = errors.New("paymentservice: payment declined")

	// ErrInvalidCard данные карты не прошли проверку
	ErrInvalidCard = errors.New("paymentservice: invalid card")

	// ErrServiceUnavailable сервис оплаты не отвечает или вернул 5xx
	ErrServiceUnavailable = errors.New("paymentservice: service unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("paymentservice client: invalid response")
)

// UserMessage сообщение для клиента о неудачной оплате
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrPaymentDeclined):
		return "El pago fue rechazado. Verifique los datos de su tarjeta o use otra tarjeta."
	case errors.Is(err, ErrInvalidCard):
		return "Los datos de la tarjeta no son válidos."
	case errors.Is(err, ErrServiceUnavailable):
		return "El servicio de pagos no está disponible. Intente nuevamente en unos minutos."
	default:
		return "No se pudo procesar el pago."
	}
}
