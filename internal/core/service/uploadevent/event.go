package uploadevent

import (
	"log/slog"

	"github.com/sk9212k/opaltech-aws/internal/core/port"
)

type uploadEventService struct {
	storage port.ObjectInspector
	logger  *slog.Logger
}

// NewUploadEventService creates the handler for stored upload events
func NewUploadEventService(storage port.ObjectInspector, logger *slog.Logger) port.MessageService {
	return &uploadEventService{
		storage: storage,
		logger:  logger,
	}
}
