package customerservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/MRK-ReservationService/internal/identity"
)

const serviceName = "customer-service"

// maxErrorBodySize сколько байт тела ошибки читается для сообщения
const maxErrorBodySize = 4 << 10

// Client клиент для работы с CustomerService
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента CustomerService
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

// GetCustomerByID получает профиль клиента
func (c *Client) GetCustomerByID(ctx context.Context, customerID int64) (customer *Customer, err error) {
	started := time.Now()
	defer func() { c.metrics.ObserveIntegration(serviceName, "get_customer", started, err) }()

	url := fmt.Sprintf("%s/customer/%d", c.baseURL, customerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")
	if token, ok := identity.TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrCustomerNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var out Customer
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return &out, nil
}

// GetCustomer получает профиль клиента с graceful degradation.
// При недоступности CustomerService возвращает ErrServiceDegraded.
func (c *Client) GetCustomer(ctx context.Context, customerID int64) (*Customer, error) {
	customer, err := c.GetCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			c.log.Info("GetCustomer: no profile for customer_id=%d", customerID)
			return nil, err
		}

		c.log.Error("GetCustomer: CustomerService unavailable, applying graceful degradation for customer_id=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: customer_id=%d, error=%v", ErrServiceDegraded, customerID, err)
	}

	c.log.Info("GetCustomer: fetched profile for customer_id=%d", customerID)
	return customer, nil
}
