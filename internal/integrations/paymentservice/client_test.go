package paymentservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRK-ReservationService/pkg/logger"
	"github.com/m04kA/MRK-ReservationService/pkg/metrics"
)

func newCharge(t *testing.T) *Charge {
	t.Helper()
	tk := NewTokenizer()
	tk.now = func() time.Time { return cardNow }
	token, err := tk.Tokenize(Card{Number: "4111111111111111", CVV: "123", ExpMonth: "12", ExpYear: "2028"})
	require.NoError(t, err)
	return &Charge{ReservationID: 42, Amount: 53, CustomerEmail: "ana@example.com", CustomerName: "Ana", Token: token}
}

func TestClient_ProcessPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment/culqi", r.URL.Path)
		var req ChargeRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(42), req.ReservationID)
		assert.Equal(t, "4111111111111111", req.CardNumber)
		assert.Empty(t, req.Token)

		_, _ = w.Write([]byte(`{"transactionId":9,"reservationId":42,"amount":53,"status":"COMPLETED","culqiChargeId":"chr_1"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, metrics.Noop{}, logger.NewNop())
	resp, err := c.ProcessPayment(context.Background(), newCharge(t))
	require.NoError(t, err)
	assert.Equal(t, "chr_1", resp.Reference())
}

func TestClient_ProcessPaymentWithClientToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ChargeRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "tkn_client", req.Token)
		assert.Empty(t, req.CardNumber)
		_, _ = w.Write([]byte(`{"status":"COMPLETED","referenceCode":"ref-1"}`))
	}))
	defer srv.Close()

	token, err := FromClientToken("tkn_client")
	require.NoError(t, err)

	c := NewClient(srv.URL, time.Second, metrics.Noop{}, logger.NewNop())
	resp, err := c.ProcessPayment(context.Background(), &Charge{ReservationID: 1, Amount: 10, Token: token})
	require.NoError(t, err)
	assert.Equal(t, "ref-1", resp.Reference())
}

func TestClient_ProcessPaymentFailures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "declined", status: http.StatusPaymentRequired, body: `{"status":"FAILED","errorMessage":"Tarjeta rechazada"}`, want: ErrPaymentDeclined},
		{name: "failed status", status: http.StatusOK, body: `{"status":"FAILED","errorMessage":"insufficient funds"}`, want: ErrPaymentDeclined},
		{name: "gateway down", status: http.StatusInternalServerError, want: ErrServiceUnavailable},
		{name: "bad request", status: http.StatusBadRequest, want: ErrInvalidResponse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, time.Second, metrics.Noop{}, logger.NewNop())
			_, err := c.ProcessPayment(context.Background(), newCharge(t))
			require.ErrorIs(t, err, tc.want)
		})
	}

	c := NewClient("http://127.0.0.1:0", time.Second, metrics.Noop{}, logger.NewNop())
	_, err := c.ProcessPayment(context.Background(), &Charge{ReservationID: 1})
	require.ErrorIs(t, err, ErrInvalidCard)
}

func TestClient_ErrorBodyIsTruncated(t *testing.T) {
	body := strings.Repeat("x", 64<<10)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, metrics.Noop{}, logger.NewNop())
	_, err := c.ProcessPayment(context.Background(), newCharge(t))
	require.ErrorIs(t, err, ErrInvalidResponse)
	assert.Contains(t, err.Error(), strings.Repeat("x", maxErrorBodySize))
	assert.Less(t, len(err.Error()), maxErrorBodySize+256)
}
