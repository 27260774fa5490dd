package reservationservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/MRK-ReservationService/internal/identity"
)

const serviceName = "reservation-service"

// maxErrorBodySize сколько байт тела ошибки читается для сообщения
const maxErrorBodySize = 4 << 10

// Client клиент для работы с reservation-service
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента reservation-service
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

// Create создает бронирование
func (c *Client) Create(ctx context.Context, req *CreateReservationRequest) (*Reservation, error) {
	var out Reservation
	if err := c.do(ctx, "create", http.MethodPost, "/reservation", req, &out); err != nil {
		return nil, err
	}
	c.log.Info("ReservationService.Create: reservation_id=%d code=%s status=%s", out.ID, out.Code, out.Status)
	return &out, nil
}

// GetByID получает бронирование
func (c *Client) GetByID(ctx context.Context, id int64) (*Reservation, error) {
	var out Reservation
	if err := c.do(ctx, "get", http.MethodGet, fmt.Sprintf("/reservation/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStatus меняет статус бронирования после оплаты
func (c *Client) UpdateStatus(ctx context.Context, id int64, req *UpdateStatusRequest) (*Reservation, error) {
	var out Reservation
	if err := c.do(ctx, "update_status", http.MethodPatch, fmt.Sprintf("/reservation/%d/status", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Cancel отменяет бронирование
func (c *Client) Cancel(ctx context.Context, id int64) (*Reservation, error) {
	var out Reservation
	if err := c.do(ctx, "cancel", http.MethodPatch, fmt.Sprintf("/reservation/%d/cancel", id), struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTableAvailability доступность времени и столов на дату
func (c *Client) GetTableAvailability(ctx context.Context, date string) ([]ScheduleAvailability, error) {
	var out []ScheduleAvailability
	path := "/reservation/availability?date=" + url.QueryEscape(date)
	if err := c.do(ctx, "table_availability", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetEventShiftAvailability занятость смен событий на дату
func (c *Client) GetEventShiftAvailability(ctx context.Context, date string) (*EventShiftAvailability, error) {
	var out EventShiftAvailability
	path := "/reservation/event-shifts/availability?date=" + url.QueryEscape(date)
	if err := c.do(ctx, "event_shift_availability", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body, dst interface{}) (err error) {
	started := time.Now()
	defer func() { c.metrics.ObserveIntegration(serviceName, op, started, err) }()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token, ok := identity.TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("ReservationService: %s request failed: %v", op, err)
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
	case resp.StatusCode == http.StatusNotFound:
		return ErrReservationNotFound
	case resp.StatusCode == http.StatusConflict:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return fmt.Errorf("%w: %s", ErrConflict, string(msg))
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return fmt.Errorf("%w: %s", ErrInvalidRequest, string(msg))
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(msg))
	}

	if dst == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}
