package domain

import "errors"

var (
	// ErrInvalidDate дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("domain: invalid date")

	// ErrDateInPast дата раньше первой допустимой даты бронирования
	ErrDateInPast = errors.New("domain: date is before the first bookable day")

	// ErrDateTooFar дата дальше горизонта бронирования
	ErrDateTooFar = errors.New("domain: date is too far in the future")

	// ErrDateClosed ресторан не принимает бронирования в этот день недели
	ErrDateClosed = errors.New("domain: restaurant does not take bookings on this day")
)
