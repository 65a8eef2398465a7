package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/muhammadheryan/sanitary-shop/model"
	"github.com/rabbitmq/amqp091-go"
)

// Publisher schedules toast expiry through a delayed exchange. It satisfies
// notification.Scheduler.
type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	now     func() time.Time
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel, now: time.Now}, nil
}

func (p *Publisher) Schedule(ctx context.Context, exp model.ToastExpiration) error {
	msg, err := newPublishing(exp, p.now())
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(
		ctx,
		expirationExchange,   // exchange
		expirationRoutingKey, // routing key
		false,                // mandatory
		false,                // immediate
		msg,
	)
}

func newPublishing(exp model.ToastExpiration, now time.Time) (amqp091.Publishing, error) {
	body, err := json.Marshal(exp)
	if err != nil {
		return amqp091.Publishing{}, err
	}
	return amqp091.Publishing{
		ContentType: "application/json",
		Body:        body,
		Headers: amqp091.Table{
			"x-delay": delayMillis(exp.ExpiresAt, now),
		},
	}, nil
}

// delayMillis is the x-delay header value, never negative.
func delayMillis(expiresAt, now time.Time) int64 {
	delay := expiresAt.Sub(now).Milliseconds()
	if delay < 0 {
		return 0
	}
	return delay
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
