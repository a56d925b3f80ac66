package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/garment-erp/cmd/config"
	"github.com/muhammadheryan/garment-erp/thirdparty/rabbitmq"
	"github.com/muhammadheryan/garment-erp/utils/logger"
	"go.uber.org/zap"
)

// The courier consumer listens for delivery notifications and marks the
// matching dispatch orders delivered through the internal API.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, "garment-erp-courier-consumer"); err != nil {
		panic(err)
	}
	defer logger.Close()

	if cfg.RabbitMQ.Host == "" {
		logger.Fatal("RABBITMQ_HOST is required")
	}
	if cfg.Internal.APIKey == "" {
		logger.Fatal("INTERNAL_API_KEY is required")
	}

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		cfg.Internal.APIURL, cfg.Internal.APIKey)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("Courier consumer running", zap.String("queue", rabbitmq.CourierDeliveryQueue), zap.String("api_url", cfg.Internal.APIURL))

	<-ctx.Done()
	logger.Info("Courier consumer stopped")
}
