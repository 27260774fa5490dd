package session

import "errors"

var (
	// ErrSessionNotFound сессия не найдена или истек TTL
	ErrSessionNotFound = errors.New("session.store: session not found")

	// ErrEncode ошибка сериализации сессии
	ErrEncode = errors.New("session.store: failed to encode session")

	// ErrDecode ошибка десериализации сессии
	ErrDecode = errors.New("session.store: failed to decode session")

	// ErrStorage ошибка хранилища
	ErrStorage = errors.New("session.store: storage error")
)
