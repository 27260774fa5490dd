package catalogservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRK-ReservationService/pkg/logger"
	"github.com/m04kA/MRK-ReservationService/pkg/metrics"
)

func TestClient_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/product/public":
			_, _ = w.Write([]byte(`[{"id":1,"name":"Bife de Chorizo","price":45.5,"status":"DISPONIBLE","active":true,"category":{"id":2,"name":"Carnes"}}]`))
		case "/table/findAll":
			assert.Equal(t, "true", r.URL.Query().Get("active"))
			_, _ = w.Write([]byte(`[{"id":3,"code":"T03","capacity":4,"shape":"Redonda","status":"DISPONIBLE","active":true}]`))
		case "/service/findAll":
			_, _ = w.Write([]byte(`[{"id":9,"name":"DJ","price":300,"tipoServicio":"Entretenimiento","active":true}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, metrics.Noop{}, logger.NewNop())
	ctx := context.Background()

	products, err := c.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 45.5, products[0].Price)
	assert.Equal(t, "Carnes", products[0].Category.Name)

	tables, err := c.ListTables(ctx)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, "Redonda", tables[0].Shape)

	services, err := c.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Entretenimiento", services[0].Type)
}

func TestClient_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   error
	}{
		{name: "server error", status: http.StatusBadGateway, want: ErrServiceUnavailable},
		{name: "unauthorized", status: http.StatusUnauthorized, want: ErrInvalidResponse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			c := NewClient(srv.URL, time.Second, metrics.Noop{}, logger.NewNop())
			_, err := c.ListProducts(context.Background())
			require.ErrorIs(t, err, tc.want)
		})
	}
}
