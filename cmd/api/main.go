package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/sk9212k/opaltech-aws/internal/adapters/eventbroker"
	"github.com/sk9212k/opaltech-aws/internal/adapters/eventbroker/nats"
	"github.com/sk9212k/opaltech-aws/internal/adapters/handlers/http/chi"
	file2 "github.com/sk9212k/opaltech-aws/internal/adapters/handlers/http/chi/v1/file"
	"github.com/sk9212k/opaltech-aws/internal/adapters/storage/minio"
	"github.com/sk9212k/opaltech-aws/internal/adapters/storage/s3"
	"github.com/sk9212k/opaltech-aws/internal/config"
	"github.com/sk9212k/opaltech-aws/internal/core/port"
	"github.com/sk9212k/opaltech-aws/internal/core/service/file"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	//storage
	storage, err := initStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	logger.Info("storage initialized", "driver", cfg.Storage.Driver, "bucket", cfg.Storage.BucketName)

	//events
	publisher, err := initPublisher(ctx, cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to init event publisher", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close event publisher", "error", err)
		}
	}()

	fileService := file.NewFileService(storage, publisher, cfg.Upload, logger)

	//http
	fileHandler := file2.NewFileHandlerV1(fileService, cfg.Upload, logger)

	router := chi.NewRouter(logger, fileHandler, storage, cfg.Env.Env, cfg.Server.RequestTimeout)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (port.FileStorage, error) {
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

// initPublisher falls back to a no-op publisher when NATS is not configured
func initPublisher(ctx context.Context, cfg config.NATSConfig, logger *slog.Logger) (port.EventPublisher, error) {
	if cfg.URL == "" {
		logger.Info("NATS_URL not set, upload events disabled")
		return eventbroker.NoopPublisher{}, nil
	}

	publisher, err := nats.NewNATSPublisher(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("NATS publisher initialized", "stream", cfg.StreamName, "subject", cfg.Subject)
	return publisher, nil
}
