package notificationservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const serviceName = "notification-service"

// maxErrorBodySize сколько байт тела ошибки читается для сообщения
const maxErrorBodySize = 4 << 10

// Client HTTP-клиент сервиса уведомлений
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса уведомлений
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

// NotifyConfirmed уведомление о подтверждённом бронировании
func (c *Client) NotifyConfirmed(ctx context.Context, n *ReservationNotification) error {
	return c.send(ctx, "confirmed", "/notification/reservation/confirmed", n)
}

// NotifyCancelled уведомление об отмене бронирования
func (c *Client) NotifyCancelled(ctx context.Context, n *ReservationNotification) error {
	return c.send(ctx, "cancelled", "/notification/reservation/cancelled", n)
}

// Health проверка доступности сервиса уведомлений
func (c *Client) Health(ctx context.Context) (err error) {
	started := time.Now()
	defer func() { c.metrics.ObserveIntegration(serviceName, "health", started, err) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/notification/health", nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	}
	return nil
}

func (c *Client) send(ctx context.Context, op, path string, n *ReservationNotification) (err error) {
	started := time.Now()
	defer func() { c.metrics.ObserveIntegration(serviceName, op, started, err) }()

	payload := *n
	payload.CustomerPhone = NormalizePhone(n.CustomerPhone)

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
	case resp.StatusCode == http.StatusBadRequest:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return fmt.Errorf("%w: %s", ErrInvalidRequest, string(msg))
	default:
		return fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		// тело ответа не обязательно, статус 2xx считается доставкой
		c.log.Warn("NotificationService: %s response is not JSON: %v", op, err)
		return nil
	}
	if !out.Success {
		return fmt.Errorf("%w: %s", ErrDeliveryFailed, out.Message)
	}

	c.log.Info("NotificationService: %s sent for code=%s", op, n.ReservationCode)
	return nil
}
