package customerservice

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("customerservice: customer not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("customerservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("customerservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// CustomerService недоступен, черновик заполняется только данными из токена.
	ErrServiceDegraded = errors.New("customerservice unavailable: graceful degradation applied")
)
