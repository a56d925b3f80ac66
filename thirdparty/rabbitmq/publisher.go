package rabbitmq

import (
	"encoding/json"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
)

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = channel.ExchangeDeclare(
		EventsExchange, // name
		"topic",        // type
		true,           // durable
		false,          // auto-delete
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) PublishDistributionSaved(msg DistributionSavedMessage) error {
	return p.publish(RoutingDistributionSaved, msg)
}

func (p *Publisher) PublishQCReviewed(msg QCReviewedMessage) error {
	return p.publish(RoutingQCReviewed, msg)
}

func (p *Publisher) PublishChallanGenerated(msg ChallanGeneratedMessage) error {
	return p.publish(RoutingChallanGenerated, msg)
}

func (p *Publisher) PublishDispatchShipped(msg DispatchShippedMessage) error {
	return p.publish(RoutingDispatchShipped, msg)
}

// publish is a no-op on a nil Publisher, which is what the API runs with when
// no broker is configured.
func (p *Publisher) publish(routingKey string, msg any) error {
	if p == nil || p.channel == nil {
		return nil
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.Publish(
		EventsExchange, // exchange
		routingKey,     // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
