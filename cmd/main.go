package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	authapp "github.com/muhammadheryan/sanitary-shop/application/auth"
	cartapp "github.com/muhammadheryan/sanitary-shop/application/cart"
	notificationapp "github.com/muhammadheryan/sanitary-shop/application/notification"
	productapp "github.com/muhammadheryan/sanitary-shop/application/product"
	"github.com/muhammadheryan/sanitary-shop/cmd/config"
	storageclient "github.com/muhammadheryan/sanitary-shop/cmd/storage"
	_ "github.com/muhammadheryan/sanitary-shop/docs"
	cartRepo "github.com/muhammadheryan/sanitary-shop/repository/cart"
	productRepo "github.com/muhammadheryan/sanitary-shop/repository/product"
	sessionRepo "github.com/muhammadheryan/sanitary-shop/repository/session"
	"github.com/muhammadheryan/sanitary-shop/thirdparty/rabbitmq"
	"github.com/muhammadheryan/sanitary-shop/transport"
	"github.com/muhammadheryan/sanitary-shop/utils/logger"
	validatorx "github.com/muhammadheryan/sanitary-shop/utils/validator"
	"go.uber.org/zap"
)

// @title SANITARY SHOP API
// @version 1.0
// @description Sanitary-ware storefront: catalog, quote cart, notifications and admin
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

	logger.Info("Starting server",
		zap.String("env", cfg.Environment),
		zap.String("storage", cfg.Storage.Driver))

	validatorx.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Open the key-value storage backing catalog, carts and admin sessions
	store, closeStore, err := storageclient.Open(cfg)
	if err != nil {
		logger.Fatal("err open storage", zap.Error(err))
	}
	defer func() {
		_ = closeStore()
	}()

	// Initialize repositories
	ProductRepo := productRepo.NewProductRepository(store)
	CartRepo := cartRepo.NewCartRepository(store)
	SessionRepo := sessionRepo.NewSessionRepository(store)

	// Initialize application layers
	ProductApp := productapp.NewProductApp(ProductRepo)
	if err := ProductApp.Load(ctx); err != nil {
		logger.Fatal("err load catalog", zap.Error(err))
	}
	CartApp := cartapp.NewCartApp(cfg.Shop, CartRepo)
	AuthApp, err := authapp.NewAuthApp(cfg, SessionRepo)
	if err != nil {
		logger.Fatal("err init auth", zap.Error(err))
	}

	var notificationOpts []notificationapp.Option
	if cfg.RabbitMQ.Enabled {
		publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
		}
		defer publisher.Close()

		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
			cfg.Internal.APIURL, cfg.Internal.APIKey)
		if err != nil {
			logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
		}
		defer consumer.Close()

		if err := consumer.Start(ctx); err != nil {
			logger.Fatal("err start toast expiration consumer", zap.Error(err))
		}
		notificationOpts = append(notificationOpts, notificationapp.WithScheduler(publisher))
		logger.Info("toast expiration via rabbitmq enabled")
	}
	NotificationApp := notificationapp.NewNotificationApp(cfg.Notification.TTL, notificationOpts...)

	httpTransport := transport.NewTransport(cfg, ProductApp, CartApp, NotificationApp, AuthApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("err shutdown server", zap.Error(err))
		}
	}()

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("failed server", zap.Error(err))
	}
	logger.Info("server stopped")
}
