package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sk9212k/opaltech-aws/internal/adapters/eventbroker/nats"
	"github.com/sk9212k/opaltech-aws/internal/adapters/storage/minio"
	"github.com/sk9212k/opaltech-aws/internal/adapters/storage/s3"
	"github.com/sk9212k/opaltech-aws/internal/config"
	"github.com/sk9212k/opaltech-aws/internal/core/port"
	"github.com/sk9212k/opaltech-aws/internal/core/service/uploadevent"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load config
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.NATS.URL == "" {
		logger.Error("NATS_URL is required")
		os.Exit(1)
	}

	inspector, err := initInspector(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	logger.Info("storage initialized", "driver", cfg.Storage.Driver)

	// Initialize services
	messageService := uploadevent.NewUploadEventService(inspector, logger)

	// Initialize NATS consumer
	natsConsumer, err := nats.NewNATSConsumer(cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to create NATS consumer", "error", err)
		os.Exit(1)
	}
	logger.Info("NATS consumer initialized")

	// Subscribe to NATS
	if err := natsConsumer.Subscribe(ctx, messageService); err != nil {
		logger.Error("failed to subscribe to NATS", "error", err)
		_ = natsConsumer.Close()
		os.Exit(1)
	}
	logger.Info("NATS subscription active", "subject", cfg.NATS.Subject)

	// Wait for termination signal
	<-ctx.Done()
	logger.Info("gracefully shutting down upload events service")

	if err := natsConsumer.Close(); err != nil {
		logger.Error("failed to close NATS consumer during shutdown", "error", err)
	}

	logger.Info("upload events service shutdown complete")
}

func initInspector(ctx context.Context, cfg *config.Config, logger *slog.Logger) (port.ObjectInspector, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverS3:
		adapter, err := s3.NewAdapter(ctx, cfg.S3, cfg.Storage.BucketName, logger)
		if err != nil {
			return nil, err
		}
		return adapter, nil
	case config.StorageDriverMinio:
		adapter, err := minio.NewAdapter(ctx, cfg.Minio, cfg.Storage.BucketName, logger)
		if err != nil {
			return nil, err
		}
		return adapter, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
