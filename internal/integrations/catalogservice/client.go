package catalogservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const serviceName = "management-service"

// maxErrorBodySize сколько байт тела ошибки читается для сообщения
const maxErrorBodySize = 4 << 10

// Client клиент для работы с каталогом management-service
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога
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

// ListProducts публичное меню
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := c.getJSON(ctx, "list_products", "/product/public", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTables активные столы
func (c *Client) ListTables(ctx context.Context) ([]Table, error) {
	var out []Table
	if err := c.getJSON(ctx, "list_tables", "/table/findAll?active=true", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListServices активные дополнительные услуги
func (c *Client) ListServices(ctx context.Context) ([]Service, error) {
	var out []Service
	if err := c.getJSON(ctx, "list_services", "/service/findAll?active=true", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, dst interface{}) (err error) {
	started := time.Now()
	defer func() { c.metrics.ObserveIntegration(serviceName, op, started, err) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("Catalog: %s request failed: %v", op, err)
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}
