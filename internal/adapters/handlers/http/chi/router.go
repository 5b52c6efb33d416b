package chi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sk9212k/opaltech-aws/internal/adapters/handlers/http/chi/v1/file"
	"github.com/sk9212k/opaltech-aws/internal/core/port"
)

const healthCheckTimeout = 3 * time.Second

// NewRouter builds http.Handler with chi
func NewRouter(logger *slog.Logger, fileHandler *file.HandlerV1, storage port.FileStorage, env string, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(CaseInsensitivePaths)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	if requestTimeout > 0 {
		r.Use(middleware.Timeout(requestTimeout))
	}

	if env != "prod" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Mount("/fileupload", fileHandler.Routes())
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
			Storage:   "ok",
		}
		code := http.StatusOK

		if storage != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
			defer cancel()
			if err := storage.Ping(ctx); err != nil {
				logger.Error("storage health check failed", "error", err)
				resp.Status = "degraded"
				resp.Storage = "unreachable"
				code = http.StatusServiceUnavailable
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(resp)
	})

	return r
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Storage   string    `json:"storage"`
}
