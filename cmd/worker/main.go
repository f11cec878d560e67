package main

import (
	"context"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	orderapp "github.com/dimasprsty/storefront/application/order"
	"github.com/dimasprsty/storefront/cmd/config"
	orderRepo "github.com/dimasprsty/storefront/repository/order"
	txRepo "github.com/dimasprsty/storefront/repository/tx"
	"github.com/dimasprsty/storefront/thirdparty/rabbitmq"
	"github.com/dimasprsty/storefront/utils/logger"
)

// Order events worker: consumes order-placed messages and moves the local
// order copy to processing.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting order events worker", zap.String("env", cfg.Environment))

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	OrderRepo := orderRepo.NewOrderRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	OrderApp := orderapp.NewOrderApp(nil, TxRepo, OrderRepo, nil)

	handler := func(ctx context.Context, msg rabbitmq.OrderPlacedMessage) error {
		logger.Info("order placed", zap.String("order_number", msg.OrderNumber), zap.String("user_id", msg.UserID))
		return OrderApp.MarkProcessing(ctx, msg.OrderNumber)
	}

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, handler)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil && err != context.Canceled {
		logger.Fatal("consumer stopped", zap.Error(err))
	}
	logger.Info("worker shut down")
}
