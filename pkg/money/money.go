package money

import (
	"fmt"
	"math"
	"strconv"
)

// Amount денежная сумма в сотых долях валюты (céntimos)
type Amount int64

const (
	centsPerUnit    = 100
	basisPointsUnit = 10_000
)

// FromUnits сумма из целых единиц валюты
func FromUnits(units int64) Amount {
	return Amount(units * centsPerUnit)
}

// FromFloat сумма из значения с плавающей точкой (цены из внешних сервисов)
func FromFloat(v float64) Amount {
	return Amount(math.Round(v * centsPerUnit))
}

// RateToBasisPoints переводит долю (0.18) в базисные пункты (1800)
func RateToBasisPoints(rate float64) int64 {
	return int64(math.Round(rate * basisPointsUnit))
}

// Float64 значение в единицах валюты
func (a Amount) Float64() float64 {
	return float64(a) / centsPerUnit
}

// Mul умножение на количество
func (a Amount) Mul(qty int) Amount {
	return a * Amount(qty)
}

// IsPositive true для суммы больше нуля
func (a Amount) IsPositive() bool {
	return a > 0
}

// ApplyRateRounded возвращает a × bp/10000, округлённое до целых единиц валюты
// по правилу round-half-up. Отрицательные суммы дают ноль.
func (a Amount) ApplyRateRounded(bp int64) Amount {
	if a <= 0 || bp <= 0 {
		return 0
	}
	const half = centsPerUnit * basisPointsUnit / 2
	units := (int64(a)*bp + half) / (centsPerUnit * basisPointsUnit)
	return FromUnits(units)
}

// String формат "123.45"
func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/centsPerUnit, v%centsPerUnit)
}

// MarshalJSON сумма в JSON как число в единицах валюты: 45.5 -> 45.50
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON принимает число в единицах валюты
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("money: invalid amount %s: %w", data, err)
	}
	*a = FromFloat(v)
	return nil
}
