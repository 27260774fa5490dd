package catalog

import "errors"

var (
	// ErrNotFound элемент справочника не найден
	ErrNotFound = errors.New("catalog: not found")

	// ErrUnavailable справочник недоступен (management-service не отвечает)
	ErrUnavailable = errors.New("catalog: unavailable")
)
