package drafts

import "errors"

var (
	// ErrSessionNotFound сессия не найдена или истекла
	ErrSessionNotFound = errors.New("drafts: session not found")

	// ErrAccessDenied сессия принадлежит другому клиенту
	ErrAccessDenied = errors.New("drafts: access denied")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("drafts: invalid input")

	// ErrWrongVariant операция недоступна для этого варианта мастера
	ErrWrongVariant = errors.New("drafts: operation is not available for this booking variant")

	// ErrUnknownReference id не найден в справочниках
	ErrUnknownReference = errors.New("drafts: unknown catalog reference")

	// ErrItemUnavailable позиция меню недоступна
	ErrItemUnavailable = errors.New("drafts: menu item is not available")

	// ErrTableUnavailable стол занят или не вмещает гостей
	ErrTableUnavailable = errors.New("drafts: table is not available for the party")

	// ErrMenuNotIncluded меню не включено в событие
	ErrMenuNotIncluded = errors.New("drafts: menu is not included")

	// ErrAvailabilityNotResolved доступность на дату ещё не запрошена
	ErrAvailabilityNotResolved = errors.New("drafts: availability is not resolved")

	// ErrStepBlocked условие текущего шага не выполнено
	ErrStepBlocked = errors.New("drafts: current step is not complete")

	// ErrInvalidNavigation недопустимый переход между шагами
	ErrInvalidNavigation = errors.New("drafts: invalid step navigation")

	// ErrSessionBusy по сессии идёт оформление бронирования
	ErrSessionBusy = errors.New("drafts: session is being submitted")

	// ErrCatalogUnavailable сервис справочников недоступен
	ErrCatalogUnavailable = errors.New("drafts: catalog unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("drafts: internal error")
)
