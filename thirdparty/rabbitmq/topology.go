package rabbitmq

import (
	"fmt"

	"github.com/rabbitmq/amqp091-go"
)

const (
	expirationExchange   = "toast_expiration_exchange"
	expirationQueue      = "toast_expiration_queue"
	expirationRoutingKey = "toast_expiration"
)

func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

// declareTopology sets up the delayed exchange (rabbitmq_delayed_message_exchange
// plugin) and the queue the consumer drains.
func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		expirationExchange,  // name
		"x-delayed-message", // type
		true,                // durable
		false,               // auto-delete
		false,               // internal
		false,               // no-wait
		amqp091.Table{"x-delayed-type": "direct"},
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		expirationQueue, // name
		true,            // durable
		false,           // auto-delete
		false,           // exclusive
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		expirationQueue,      // queue name
		expirationRoutingKey, // routing key
		expirationExchange,   // exchange
		false,                // no-wait
		nil,                  // arguments
	)
}
