package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammadheryan/garment-erp/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Consumer turns courier delivery notifications into MarkDelivered calls on
// the internal API.
type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	apiURL  string
	apiKey  string
	client  *http.Client
}

func NewConsumer(host string, port int, user, password, apiURL, apiKey string) (*Consumer, error) {
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

	err = channel.ExchangeDeclare(EventsExchange, "topic", true, false, false, false, nil)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	_, err = channel.QueueDeclare(
		CourierDeliveryQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	err = channel.QueueBind(
		CourierDeliveryQueue,
		RoutingCourierDelivered,
		EventsExchange,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
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
	// process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		CourierDeliveryQueue,
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
				c.handle(msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) handle(msg amqp091.Delivery) {
	var delivered CourierDeliveredMessage
	if err := json.Unmarshal(msg.Body, &delivered); err != nil || delivered.DispatchOrderID == 0 {
		logger.Warn("[CourierConsumer] drop malformed message", zap.ByteString("body", msg.Body))
		_ = msg.Ack(false)
		return
	}

	requeue, err := c.callDeliverAPI(delivered.DispatchOrderID)
	if err != nil {
		logger.Error("[CourierConsumer] mark delivered",
			zap.Uint64("dispatch_order_id", delivered.DispatchOrderID),
			zap.Bool("requeue", requeue),
			zap.String("error", err.Error()))
		_ = msg.Nack(false, requeue)
		return
	}

	_ = msg.Ack(false)
	logger.Info("[CourierConsumer] dispatch order delivered",
		zap.Uint64("dispatch_order_id", delivered.DispatchOrderID),
		zap.String("tracking_number", delivered.TrackingNumber))
}

// callDeliverAPI reports whether a failed call is worth requeueing. Client
// errors such as an unknown or not yet shipped dispatch order are not.
func (c *Consumer) callDeliverAPI(dispatchOrderID uint64) (bool, error) {
	url := fmt.Sprintf("%s/internal/v1/dispatch-orders/%d/deliver", c.apiURL, dispatchOrderID)

	req, err := http.NewRequest(http.MethodPost, url, nil)
	if err != nil {
		return false, err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "courier-delivery-consumer")

	resp, err := c.client.Do(req)
	if err != nil {
		return true, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	switch {
	case resp.StatusCode >= 500:
		return true, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	case resp.StatusCode >= 300:
		return false, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}
	return false, nil
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
