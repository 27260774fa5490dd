package notificationservice

import (
	"strings"
	"unicode"
)

// DefaultCountryCode код страны для номеров без префикса
const DefaultCountryCode = "51"

// NormalizePhone приводит номер к формату +<код страны><номер>
func NormalizePhone(phone string) string {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return ""
	}

	var digits strings.Builder
	for _, r := range trimmed {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	d := digits.String()

	switch {
	case strings.HasPrefix(trimmed, "+"):
		return "+" + d
	case strings.HasPrefix(d, "00"):
		return "+" + d[2:]
	case strings.HasPrefix(d, DefaultCountryCode) && len(d) == len(DefaultCountryCode)+9:
		return "+" + d
	default:
		return "+" + DefaultCountryCode + d
	}
}
