package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeString возвращается, если строка не в формате HH:MM
var ErrInvalidTimeString = errors.New("invalid time string format")

const timeLayout = "15:04"

// TimeString время суток в формате "HH:MM"
type TimeString string

// NewTimeStringFromString проверяет формат и нормализует время
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(t.Format(timeLayout)), nil
}

// NewTimeString собирает время из часов и минут
func NewTimeString(hour, minute int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute))
}

func (t TimeString) String() string {
	return string(t)
}

// IsZero true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes количество минут от начала суток
func (t TimeString) Minutes() int {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// Between true, если время попадает в [from, to] включительно
func (t TimeString) Between(from, to TimeString) bool {
	m := t.Minutes()
	return m >= from.Minutes() && m <= to.Minutes()
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	return string(t), nil
}

// Scan реализует sql.Scanner (поддерживает TIME из postgres)
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = TimeString(v.Format(timeLayout))
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}
	return nil
}

func (t *TimeString) scanString(s string) error {
	if len(s) >= 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
