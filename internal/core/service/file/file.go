package file

import (
	"fmt"
	"log/slog"
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sk9212k/opaltech-aws/internal/config"
	"github.com/sk9212k/opaltech-aws/internal/core/domain"
	"github.com/sk9212k/opaltech-aws/internal/core/port"
)

const genericContentType = "application/octet-stream"

type fileService struct {
	fileStorage   port.FileStorage
	publisher     port.EventPublisher
	fileUploadCfg config.FileUploadConfig
	logger        *slog.Logger
}

// NewFileService creates a new file service
func NewFileService(storage port.FileStorage, publisher port.EventPublisher, cfg config.FileUploadConfig, logger *slog.Logger) port.FileService {
	return &fileService{fileStorage: storage, publisher: publisher, fileUploadCfg: cfg, logger: logger}
}

// validateFile runs the checks in order: presence, extension, size.
func (f *fileService) validateFile(file domain.IncomingFile) error {
	if file.FileName == "" || len(file.Data) == 0 {
		return domain.ErrNoFileUploaded
	}

	if !domain.HasAllowedExtension(file.FileName) {
		return fmt.Errorf("%w: allowed types: %s", domain.ErrInvalidFileType, domain.AllowedExtensionsList())
	}

	if f.fileUploadCfg.MaxFileSize > 0 && int64(len(file.Data)) > f.fileUploadCfg.MaxFileSize {
		return fmt.Errorf("%w: %d bytes exceeds %d", domain.ErrFileSizeTooBig, len(file.Data), f.fileUploadCfg.MaxFileSize)
	}

	return nil
}

// resolveContentType keeps the declared type and only sniffs the body when the
// client sent nothing useful.
func resolveContentType(declared string, data []byte) string {
	mimeType := extractMimeType(declared)
	if mimeType != "" && mimeType != genericContentType {
		return declared
	}

	detected := mimetype.Detect(data)
	if detected == nil {
		return genericContentType
	}
	return detected.String()
}

func extractMimeType(contentType string) string {
	mimeType, _, err := mime.ParseMediaType(strings.TrimSpace(contentType))
	if err != nil {
		return ""
	}
	return mimeType
}
