package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/muhammadheryan/sanitary-shop/model"
	"github.com/muhammadheryan/sanitary-shop/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Consumer drains due toast expirations and hands each one back to the API
// through the internal expire endpoint.
type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	apiURL  string
	apiKey  string
	client  *http.Client
}

func NewConsumer(host string, port int, user, password, apiURL, apiKey string) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		conn:    conn,
		channel: channel,
		apiURL:  apiURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		expirationQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				c.deliver(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) deliver(ctx context.Context, msg amqp091.Delivery) {
	exp, err := decodeExpiration(msg.Body)
	if err != nil {
		logger.Error("[Consumer] err unmarshal message", zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	if err := c.callExpireAPI(ctx, exp); err != nil {
		logger.Error("[Consumer] err expire toast",
			zap.String("session_id", exp.SessionID),
			zap.Uint64("toast_id", exp.ToastID),
			zap.String("error", err.Error()))
		_ = msg.Nack(false, true)
		return
	}

	_ = msg.Ack(false)
	logger.Debug("[Consumer] toast expired", zap.Uint64("toast_id", exp.ToastID))
}

func decodeExpiration(body []byte) (model.ToastExpiration, error) {
	var exp model.ToastExpiration
	if err := json.Unmarshal(body, &exp); err != nil {
		return exp, err
	}
	if exp.SessionID == "" || exp.ToastID == 0 {
		return exp, fmt.Errorf("incomplete expiration message")
	}
	return exp, nil
}

func (c *Consumer) callExpireAPI(ctx context.Context, exp model.ToastExpiration) error {
	endpoint := fmt.Sprintf("%s/internal/v1/notifications/%s/%d/expire",
		c.apiURL, url.PathEscape(exp.SessionID), exp.ToastID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return err
	}

	// Add authorization header using the API key (internal service key)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "toast-expiration-consumer")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 500 {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
