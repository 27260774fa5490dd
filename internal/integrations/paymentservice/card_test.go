package paymentservice

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cardNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func TestDetectBrand(t *testing.T) {
	cases := map[string]CardBrand{
		"4111111111111111": BrandVisa,
		"5555555555554444": BrandMastercard,
		"2221000000000009": BrandMastercard,
		"378282246310005":  BrandAmex,
		"30569309025904":   BrandDiners,
		"6011111111111117": BrandUnknown,
	}
	for number, want := range cases {
		assert.Equal(t, want, DetectBrand(number), number)
	}
}

func TestValidateCard(t *testing.T) {
	valid := Card{Number: "4111 1111 1111 1111", CVV: "123", ExpMonth: "12", ExpYear: "2028"}
	require.NoError(t, ValidateCard(valid, cardNow))

	amex := Card{Number: "378282246310005", CVV: "1234", ExpMonth: "10", ExpYear: "26"}
	require.NoError(t, ValidateCard(amex, cardNow))

	cases := []struct {
		name   string
		mutate func(c *Card)
	}{
		{name: "bad checksum", mutate: func(c *Card) { c.Number = "4111111111111112" }},
		{name: "too short", mutate: func(c *Card) { c.Number = "411111111111" }},
		{name: "letters", mutate: func(c *Card) { c.Number = "4111-1111-1111-1111" }},
		{name: "arabic-indic digits", mutate: func(c *Card) { c.Number = "٤١١١١١١١١١١١١١١١" }},
		{name: "mixed non-ascii digit", mutate: func(c *Card) { c.Number = "411111111111111١" }},
		{name: "short cvv", mutate: func(c *Card) { c.CVV = "12" }},
		{name: "non-ascii cvv", mutate: func(c *Card) { c.CVV = "١٢٣" }},
		{name: "amex cvv on visa", mutate: func(c *Card) { c.CVV = "1234" }},
		{name: "bad month", mutate: func(c *Card) { c.ExpMonth = "13" }},
		{name: "expired", mutate: func(c *Card) { c.ExpMonth = "09"; c.ExpYear = "2026" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid
			tc.mutate(&c)
			require.ErrorIs(t, ValidateCard(c, cardNow), ErrInvalidCard)
		})
	}
}

func TestTokenizer(t *testing.T) {
	tk := NewTokenizer()
	tk.now = func() time.Time { return cardNow }

	token, err := tk.Tokenize(Card{Number: "5555 5555 5555 4444", CVV: "321", ExpMonth: "01", ExpYear: "2030"})
	require.NoError(t, err)
	assert.Contains(t, token.Token, "tkn_")
	_, err = uuid.Parse(strings.TrimPrefix(token.Token, "tkn_"))
	require.NoError(t, err)
	assert.Equal(t, BrandMastercard, token.Brand)
	assert.Equal(t, "4444", token.LastFour)

	_, err = tk.Tokenize(Card{Number: "1234", CVV: "1", ExpMonth: "1", ExpYear: "2030"})
	require.ErrorIs(t, err, ErrInvalidCard)

	client, err := FromClientToken("tkn_live_abc")
	require.NoError(t, err)
	assert.Equal(t, "tkn_live_abc", client.Token)

	_, err = FromClientToken("  ")
	require.ErrorIs(t, err, ErrInvalidCard)
}

func TestUserMessage(t *testing.T) {
	assert.Contains(t, UserMessage(fmt.Errorf("%w: insufficient funds", ErrPaymentDeclined)), "rechazado")
	assert.Contains(t, UserMessage(ErrInvalidCard), "tarjeta")
	assert.Contains(t, UserMessage(ErrServiceUnavailable), "no está disponible")
	assert.Equal(t, "No se pudo procesar el pago.", UserMessage(errors.New("boom")))
}
