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
	listingapp "github.com/muhammadheryan/car-market/application/listing"
	supportapp "github.com/muhammadheryan/car-market/application/support"
	userapp "github.com/muhammadheryan/car-market/application/user"
	"github.com/muhammadheryan/car-market/cmd/config"
	redisclient "github.com/muhammadheryan/car-market/cmd/redis"
	_ "github.com/muhammadheryan/car-market/docs"
	"github.com/muhammadheryan/car-market/migrations"
	listingRepo "github.com/muhammadheryan/car-market/repository/listing"
	redisRepo "github.com/muhammadheryan/car-market/repository/redis"
	supportRepo "github.com/muhammadheryan/car-market/repository/support"
	txRepo "github.com/muhammadheryan/car-market/repository/tx"
	userRepo "github.com/muhammadheryan/car-market/repository/user"
	"github.com/muhammadheryan/car-market/thirdparty/rabbitmq"
	"github.com/muhammadheryan/car-market/thirdparty/storage"
	"github.com/muhammadheryan/car-market/transport"
	"github.com/muhammadheryan/car-market/utils/logger"
	validatorx "github.com/muhammadheryan/car-market/utils/validator"
	"go.uber.org/zap"
)

// @title CAR MARKET API
// @version 1.0
// @description Car marketplace API Documentation
// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name access_token
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}
	validatorx.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

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

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(ctx, db.DB); err != nil {
			logger.Fatal("err run migrations", zap.Error(err))
		}
	}

	// Redis only backs the token revocation list; the API keeps serving without it
	redisClient, err := redisclient.New(ctx, cfg)
	if err != nil {
		logger.Warn("redis unavailable, token revocation disabled", zap.Error(err))
	} else {
		defer redisClient.Close()
	}

	// Without a broker, images of deleted listings are purged inline
	var publisher rabbitmq.ListingEventPublisher
	rabbitPublisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ)
	if err != nil {
		logger.Warn("rabbitmq unavailable, purging images inline", zap.Error(err))
	} else {
		publisher = rabbitPublisher
		defer rabbitPublisher.Close()
	}

	store, err := storage.New(ctx, cfg)
	if err != nil {
		logger.Fatal("err init storage", zap.Error(err))
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository(redisClient)
	ListingRepo := listingRepo.NewListingRepository(db)
	SupportRepo := supportRepo.NewSupportRepository(db)
	TxRepo := txRepo.NewTxRepository(db)

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	ListingApp := listingapp.NewListingApp(cfg, TxRepo, ListingRepo, store, publisher)
	SupportApp := supportapp.NewSupportApp(SupportRepo)

	httpTransport := transport.NewTransport(cfg, UserApp, ListingApp, SupportApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port), zap.String("storage", store.Driver()))
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
