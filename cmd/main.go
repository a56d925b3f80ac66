package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	dispatchapp "github.com/muhammadheryan/garment-erp/application/dispatch"
	distributionapp "github.com/muhammadheryan/garment-erp/application/distribution"
	orderapp "github.com/muhammadheryan/garment-erp/application/order"
	pickingapp "github.com/muhammadheryan/garment-erp/application/picking"
	qcapp "github.com/muhammadheryan/garment-erp/application/qc"
	"github.com/muhammadheryan/garment-erp/cmd/config"
	redisclient "github.com/muhammadheryan/garment-erp/cmd/redis"
	_ "github.com/muhammadheryan/garment-erp/docs"
	batchRepo "github.com/muhammadheryan/garment-erp/repository/batch"
	dispatchRepo "github.com/muhammadheryan/garment-erp/repository/dispatch"
	orderRepo "github.com/muhammadheryan/garment-erp/repository/order"
	qcRepo "github.com/muhammadheryan/garment-erp/repository/qc"
	redisRepo "github.com/muhammadheryan/garment-erp/repository/redis"
	txRepo "github.com/muhammadheryan/garment-erp/repository/tx"
	"github.com/muhammadheryan/garment-erp/thirdparty/rabbitmq"
	"github.com/muhammadheryan/garment-erp/transport"
	"github.com/muhammadheryan/garment-erp/utils/logger"
	validatorx "github.com/muhammadheryan/garment-erp/utils/validator"
	"go.uber.org/zap"
)

// @title GARMENT ERP API
// @version 1.0
// @description Quantity reconciliation from batch distribution to dispatch
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, "garment-erp-api"); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment), zap.String("quantity_policy", string(cfg.Quantity.Policy)))
	validatorx.Init()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Events are optional: without a broker the publisher stays nil and
	// publishing is skipped.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Host != "" {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer publisher.Close()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	BatchRepo := batchRepo.NewBatchRepository(db)
	QCRepo := qcRepo.NewQCRepository(db)
	DispatchRepo := dispatchRepo.NewDispatchRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	httpTransport := transport.NewTransport(cfg, &transport.RestHandler{
		DistributionApp: distributionapp.NewDistributionApp(cfg, TxRepo, OrderRepo, BatchRepo, QCRepo, publisher),
		PickingApp:      pickingapp.NewPickingApp(cfg, TxRepo, OrderRepo, BatchRepo, QCRepo),
		QCApp:           qcapp.NewQCApp(cfg, TxRepo, OrderRepo, BatchRepo, QCRepo, publisher),
		DispatchApp:     dispatchapp.NewDispatchApp(cfg, TxRepo, OrderRepo, QCRepo, DispatchRepo, RedisRepo, publisher),
		OrderApp:        orderapp.NewOrderApp(cfg, OrderRepo, BatchRepo, QCRepo, DispatchRepo),
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed graceful shutdown", zap.Error(err))
	}
}
