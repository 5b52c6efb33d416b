package uploadevent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sk9212k/opaltech-aws/internal/core/domain"
)

func (s *uploadEventService) HandleMessage(ctx context.Context, data []byte) error {
	var event domain.UploadStoredEvent

	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidEvent, err)
	}
	if event.Key == "" {
		return fmt.Errorf("%w: missing key", domain.ErrInvalidEvent)
	}

	info, err := s.storage.StatObject(ctx, event.Key)
	if err != nil {
		return err
	}

	// a later upload under the same key may have replaced the object
	if info.SizeBytes != event.SizeBytes {
		s.logger.Warn("stored object differs from event",
			"key", event.Key, "event_size", event.SizeBytes, "stored_size", info.SizeBytes)
		return fmt.Errorf("%w: key %s", domain.ErrSizeMismatch, event.Key)
	}

	s.logger.Info("upload stored",
		"key", event.Key,
		"file_name", event.FileName,
		"content_type", event.ContentType,
		"size", event.SizeBytes,
		"etag", info.ETag,
		"stored_at", event.StoredAt)

	return nil
}
