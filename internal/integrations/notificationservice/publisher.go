package notificationservice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel часть *amqp.Channel, нужная издателю
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Publisher публикует события бронирования в RabbitMQ;
// сервис уведомлений читает их из своей очереди
type Publisher struct {
	ch       Channel
	exchange string
	timeout  time.Duration
	log      Logger
	now      func() time.Time
}

// NewPublisher издатель поверх открытого канала
func NewPublisher(ch Channel, exchange string, timeout time.Duration, log Logger) *Publisher {
	return &Publisher{
		ch:       ch,
		exchange: exchange,
		timeout:  timeout,
		log:      log,
		now:      time.Now,
	}
}

// Dial подключается к RabbitMQ и объявляет topic exchange
func Dial(url, exchange string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: dial: %v", ErrPublish, err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("%w: channel: %v", ErrPublish, err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, fmt.Errorf("%w: declare exchange %s: %v", ErrPublish, exchange, err)
	}
	return conn, ch, nil
}

// NotifyConfirmed публикует reservation.confirmed
func (p *Publisher) NotifyConfirmed(ctx context.Context, n *ReservationNotification) error {
	return p.publish(ctx, KindConfirmed, n)
}

// NotifyCancelled публикует reservation.cancelled
func (p *Publisher) NotifyCancelled(ctx context.Context, n *ReservationNotification) error {
	return p.publish(ctx, KindCancelled, n)
}

func (p *Publisher) publish(ctx context.Context, kind Kind, n *ReservationNotification) error {
	payload := *n
	payload.CustomerPhone = NormalizePhone(n.CustomerPhone)

	body, err := json.Marshal(Event{
		Kind:         kind,
		Notification: &payload,
		OccurredAt:   p.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrPublish, err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	routingKey := "reservation." + string(kind)
	err = p.ch.PublishWithContext(ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    p.now(),
		})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPublish, routingKey, err)
	}

	p.log.Info("NotificationPublisher: published %s for code=%s", routingKey, n.ReservationCode)
	return nil
}
