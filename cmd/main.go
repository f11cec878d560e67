package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	adminapp "github.com/dimasprsty/storefront/application/admin"
	authapp "github.com/dimasprsty/storefront/application/auth"
	cartapp "github.com/dimasprsty/storefront/application/cart"
	catalogapp "github.com/dimasprsty/storefront/application/catalog"
	orderapp "github.com/dimasprsty/storefront/application/order"
	"github.com/dimasprsty/storefront/cmd/config"
	redisclient "github.com/dimasprsty/storefront/cmd/redis"
	categoryRepo "github.com/dimasprsty/storefront/repository/category"
	orderRepo "github.com/dimasprsty/storefront/repository/order"
	productRepo "github.com/dimasprsty/storefront/repository/product"
	redisRepo "github.com/dimasprsty/storefront/repository/redis"
	txRepo "github.com/dimasprsty/storefront/repository/tx"
	userRepo "github.com/dimasprsty/storefront/repository/user"
	"github.com/dimasprsty/storefront/thirdparty/rabbitmq"
	"github.com/dimasprsty/storefront/thirdparty/storeapi"
	"github.com/dimasprsty/storefront/transport"
	"github.com/dimasprsty/storefront/utils/logger"
)

// @title STOREFRONT API
// @version 1.0
// @description Server-rendered storefront backend: catalog, cart, checkout, orders and admin back office
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Order events publisher; checkout degrades gracefully without it
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("err connect rabbitmq, order events disabled", zap.Error(err))
		publisher = nil
	} else {
		defer publisher.Close()
	}

	// Initialize repositories and the store api client
	ProductRepo := productRepo.NewProductRepository(db)
	CategoryRepo := categoryRepo.NewCategoryRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository()
	StoreAPI := storeapi.NewClient(cfg)

	// Initialize application layers
	CatalogApp := catalogapp.NewCatalogApp(cfg, ProductRepo, CategoryRepo)
	CartApp := cartapp.NewCartApp(StoreAPI)
	AuthApp := authapp.NewAuthApp(cfg, StoreAPI, UserRepo, RedisRepo)
	OrderApp := orderapp.NewOrderApp(StoreAPI, TxRepo, OrderRepo, publisher)
	AdminApp := adminapp.NewAdminApp(cfg, ProductRepo, CategoryRepo, StoreAPI, CatalogApp)

	httpTransport := transport.NewTransport(AuthApp, CatalogApp, CartApp, OrderApp, AdminApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
