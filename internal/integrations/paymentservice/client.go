package paymentservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

const serviceName = "payment-service"

// maxErrorBodySize сколько байт тела ошибки читается для сообщения
const maxErrorBodySize = 4 << 10

// Client клиент для работы с сервисом оплаты
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса оплаты
func NewClient(baseURL string, timeout time.Duration, metrics Metrics, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		log:     log,
	}
}

// ProcessPayment списывает сумму с карты через шлюз Culqi
func (c *Client) ProcessPayment(ctx context.Context, charge *Charge) (resp *ChargeResponse, err error) {
	started := time.Now()
	defer func() { c.metrics.ObserveIntegration(serviceName, "charge", started, err) }()

	if charge.Token == nil {
		return nil, fmt.Errorf("%w: card token is required", ErrInvalidCard)
	}

	body := ChargeRequest{
		ReservationID: charge.ReservationID,
		Amount:        math.Round(charge.Amount*100) / 100,
		CustomerEmail: charge.CustomerEmail,
		CustomerName:  charge.CustomerName,
		CustomerPhone: charge.CustomerPhone,
		PaymentMethod: "TARJETA",
	}
	if card := charge.Token.card; card != nil {
		body.CardNumber = card.Number
		body.CVV = card.CVV
		body.ExpirationMonth = card.ExpMonth
		body.ExpirationYear = card.ExpYear
	} else {
		body.Token = charge.Token.Token
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payment/culqi", bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("PaymentService: charge request failed for reservation_id=%d: %v", charge.ReservationID, err)
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer httpResp.Body.Close()

	switch {
	case httpResp.StatusCode == http.StatusOK || httpResp.StatusCode == http.StatusCreated:
	case httpResp.StatusCode == http.StatusPaymentRequired:
		msg, _ := io.ReadAll(io.LimitReader(httpResp.Body, maxErrorBodySize))
		return nil, fmt.Errorf("%w: %s", ErrPaymentDeclined, declineMessage(msg))
	case httpResp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: status %d", ErrServiceUnavailable, httpResp.StatusCode)
	default:
		msg, _ := io.ReadAll(io.LimitReader(httpResp.Body, maxErrorBodySize))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, httpResp.StatusCode, string(msg))
	}

	var out ChargeResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if out.Status != StatusCompleted {
		return &out, fmt.Errorf("%w: status=%s: %s", ErrPaymentDeclined, out.Status, out.ErrorMessage)
	}

	c.log.Info("PaymentService: charged reservation_id=%d amount=%.2f reference=%s", charge.ReservationID, out.Amount, out.Reference())
	return &out, nil
}

// declineMessage достает errorMessage из тела отказа, если оно в JSON
func declineMessage(body []byte) string {
	var resp ChargeResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.ErrorMessage != "" {
		return resp.ErrorMessage
	}
	return string(body)
}
