package paymentservice

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CardBrand платёжная система карты
type CardBrand string

const (
	BrandVisa       CardBrand = "visa"
	BrandMastercard CardBrand = "mastercard"
	BrandAmex       CardBrand = "amex"
	BrandDiners     CardBrand = "diners"
	BrandUnknown    CardBrand = "unknown"
)

// Card данные карты из формы оплаты; в черновике и сессии не хранятся
type Card struct {
	Number   string
	CVV      string
	ExpMonth string
	ExpYear  string
}

// CardToken одноразовый токен карты для списания
type CardToken struct {
	Token    string
	Brand    CardBrand
	LastFour string
	// card заполнен только для локально токенизированной карты
	card *Card
}

// DetectBrand определяет платёжную систему по номеру
func DetectBrand(number string) CardBrand {
	n := digitsOnly(number)
	switch {
	case strings.HasPrefix(n, "4"):
		return BrandVisa
	case strings.HasPrefix(n, "34"), strings.HasPrefix(n, "37"):
		return BrandAmex
	case strings.HasPrefix(n, "36"), strings.HasPrefix(n, "38"), strings.HasPrefix(n, "300"), strings.HasPrefix(n, "305"):
		return BrandDiners
	case len(n) >= 2 && n[0] == '5' && n[1] >= '1' && n[1] <= '5':
		return BrandMastercard
	case len(n) >= 4:
		if p, err := strconv.Atoi(n[:4]); err == nil && p >= 2221 && p <= 2720 {
			return BrandMastercard
		}
	}
	return BrandUnknown
}

// ValidateCard проверяет номер (Луна, 13-19 цифр), CVV и срок действия
func ValidateCard(c Card, now time.Time) error {
	number := digitsOnly(c.Number)
	if len(number) < 13 || len(number) > 19 || len(number) != len(strings.ReplaceAll(c.Number, " ", "")) {
		return fmt.Errorf("%w: card number must have 13-19 digits", ErrInvalidCard)
	}
	if !luhn(number) {
		return fmt.Errorf("%w: card number checksum failed", ErrInvalidCard)
	}

	cvvLen := 3
	if DetectBrand(number) == BrandAmex {
		cvvLen = 4
	}
	if len(c.CVV) != cvvLen || digitsOnly(c.CVV) != c.CVV {
		return fmt.Errorf("%w: cvv must have %d digits", ErrInvalidCard, cvvLen)
	}

	month, err := strconv.Atoi(c.ExpMonth)
	if err != nil || month < 1 || month > 12 {
		return fmt.Errorf("%w: invalid expiration month", ErrInvalidCard)
	}
	year, err := strconv.Atoi(c.ExpYear)
	if err != nil {
		return fmt.Errorf("%w: invalid expiration year", ErrInvalidCard)
	}
	if year < 100 {
		year += 2000
	}
	// карта действует до конца месяца истечения
	if year < now.Year() || (year == now.Year() && month < int(now.Month())) {
		return fmt.Errorf("%w: card expired", ErrInvalidCard)
	}
	return nil
}

// Tokenizer проверяет карту и выпускает одноразовый токен
type Tokenizer struct {
	now func() time.Time
}

func NewTokenizer() *Tokenizer {
	return &Tokenizer{now: time.Now}
}

// Tokenize валидирует карту и оборачивает её в непрозрачный токен
func (t *Tokenizer) Tokenize(c Card) (*CardToken, error) {
	if err := ValidateCard(c, t.now()); err != nil {
		return nil, err
	}

	number := digitsOnly(c.Number)
	card := c
	card.Number = number
	return &CardToken{
		Token:    "tkn_" + uuid.NewString(),
		Brand:    DetectBrand(number),
		LastFour: number[len(number)-4:],
		card:     &card,
	}, nil
}

// FromClientToken токен, полученный браузером напрямую от шлюза
func FromClientToken(token string) (*CardToken, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", ErrInvalidCard)
	}
	return &CardToken{Token: token, Brand: BrandUnknown}, nil
}

func luhn(number string) bool {
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// digitsOnly оставляет только ASCII-цифры 0-9
func digitsOnly(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
