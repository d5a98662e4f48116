package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/car-market/cmd/config"
	"github.com/muhammadheryan/car-market/thirdparty/rabbitmq"
	"github.com/muhammadheryan/car-market/utils/logger"
	"go.uber.org/zap"
)

// The image purge worker removes stored images of deleted listings through
// the API's internal purge endpoint.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	if cfg.Internal.APIKey == "" {
		logger.Fatal("INTERNAL_API_KEY is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer, err := rabbitmq.NewConsumer(cfg)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("Image purge consumer running", zap.String("api", cfg.Internal.APIURL))

	<-ctx.Done()
	logger.Info("Stopping image purge consumer")
}
