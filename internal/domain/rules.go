package domain

import (
	"fmt"
	"time"
	"unicode"
)

// GuestLimits границы количества гостей для варианта мастера
type GuestLimits struct {
	Min int
	Max int
}

// Clamp приводит количество гостей к [Min, Max]
func (l GuestLimits) Clamp(guests int) int {
	if guests < l.Min {
		return l.Min
	}
	if l.Max > 0 && guests > l.Max {
		return l.Max
	}
	return guests
}

// DateRules ограничения на выбор даты
type DateRules struct {
	DaysAhead       int            // горизонт бронирования, 0 = без ограничения
	StartOffsetDays int            // 0 = можно бронировать на сегодня
	ClosedWeekdays  []time.Weekday // дни недели без бронирований
}

// ParseDate разбирает дату бронирования в часовом поясе now
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateFormat, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return d, nil
}

// Validate проверяет дату относительно текущего момента
func (r DateRules) Validate(date string, now time.Time) error {
	d, err := ParseDate(date, now.Location())
	if err != nil {
		return err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	first := today.AddDate(0, 0, r.StartOffsetDays)
	if d.Before(first) {
		return fmt.Errorf("%w: %s", ErrDateInPast, date)
	}
	if r.DaysAhead > 0 && d.After(today.AddDate(0, 0, r.DaysAhead)) {
		return fmt.Errorf("%w: %s", ErrDateTooFar, date)
	}
	for _, wd := range r.ClosedWeekdays {
		if d.Weekday() == wd {
			return fmt.Errorf("%w: %s", ErrDateClosed, d.Weekday())
		}
	}
	return nil
}

// DocumentType тип документа клиента
type DocumentType string

const (
	DocumentDNI      DocumentType = "DNI"
	DocumentCE       DocumentType = "CE"
	DocumentPassport DocumentType = "PASAPORTE"
	DocumentRUC      DocumentType = "RUC"
)

// ValidDocument проверяет формат номера документа
func ValidDocument(docType DocumentType, number string) bool {
	switch docType {
	case DocumentDNI:
		return len(number) == 8 && allDigits(number)
	case DocumentRUC:
		return len(number) == 11 && allDigits(number)
	case DocumentCE:
		return len(number) >= 9 && len(number) <= 12 && allAlnum(number)
	case DocumentPassport:
		return len(number) >= 6 && len(number) <= 12 && allAlnum(number)
	}
	return false
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func allAlnum(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
