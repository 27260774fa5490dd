package notificationservice

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRK-ReservationService/pkg/logger"
	"github.com/m04kA/MRK-ReservationService/pkg/metrics"
)

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"987654321":        "+51987654321",
		"987 654 321":      "+51987654321",
		"51987654321":      "+51987654321",
		"+1 (555) 010-999": "+1555010999",
		"0034600111222":    "+34600111222",
		"":                 "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizePhone(in), in)
	}
}

func TestClient_NotifyConfirmed(t *testing.T) {
	var got ReservationNotification
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notification/reservation/confirmed", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"success":true,"message":"sent"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, metrics.Noop{}, logger.NewNop())
	err := c.NotifyConfirmed(context.Background(), &ReservationNotification{ReservationCode: "MRK-1", CustomerPhone: "987654321"})
	require.NoError(t, err)
	assert.Equal(t, "+51987654321", got.CustomerPhone)
}

func TestClient_Failures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "bad request", status: http.StatusBadRequest, want: ErrInvalidRequest},
		{name: "server error", status: http.StatusBadGateway, want: ErrServiceUnavailable},
		{name: "not delivered", status: http.StatusOK, body: `{"success":false,"message":"whatsapp down"}`, want: ErrDeliveryFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, time.Second, metrics.Noop{}, logger.NewNop())
			err := c.NotifyCancelled(context.Background(), &ReservationNotification{ReservationCode: "MRK-1"})
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestClient_Health(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/notification/health" {
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, metrics.Noop{}, logger.NewNop())
	require.NoError(t, c.Health(context.Background()))
}

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	return f.err
}

func TestPublisher(t *testing.T) {
	ch := &fakeChannel{}
	p := NewPublisher(ch, "reservations", time.Second, logger.NewNop())

	require.NoError(t, p.NotifyConfirmed(context.Background(), &ReservationNotification{ReservationCode: "MRK-7", CustomerPhone: "912345678"}))
	assert.Equal(t, "reservations", ch.exchange)
	assert.Equal(t, "reservation.confirmed", ch.key)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)

	var ev Event
	require.NoError(t, json.Unmarshal(ch.msg.Body, &ev))
	assert.Equal(t, KindConfirmed, ev.Kind)
	assert.Equal(t, "+51912345678", ev.Notification.CustomerPhone)

	ch.err = errors.New("channel closed")
	err := p.NotifyCancelled(context.Background(), &ReservationNotification{ReservationCode: "MRK-7"})
	require.ErrorIs(t, err, ErrPublish)
	assert.Equal(t, "reservation.cancelled", ch.key)
}
