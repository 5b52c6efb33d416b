package file

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/sk9212k/opaltech-aws/internal/config"
	"github.com/sk9212k/opaltech-aws/internal/core/port"
)

// multipartOverhead leaves room for boundaries and part headers on top of the file size limit
const multipartOverhead = 1 << 20

// HandlerV1 is the handler for file upload routes
type HandlerV1 struct {
	fileService port.FileService
	uploadCfg   config.FileUploadConfig
	logger      *slog.Logger
}

// NewFileHandlerV1 creates HandlerV1
func NewFileHandlerV1(service port.FileService, cfg config.FileUploadConfig, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		fileService: service,
		uploadCfg:   cfg,
		logger:      logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/upload", h.UploadFileV1)

	return router
}

func (h *HandlerV1) maxRequestBytes() int64 {
	if h.uploadCfg.MaxFileSize <= 0 {
		return 0
	}
	return h.uploadCfg.MaxFileSize + multipartOverhead
}
