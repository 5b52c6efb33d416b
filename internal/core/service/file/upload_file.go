package file

import (
	"context"
	"fmt"
	"time"

	"github.com/sk9212k/opaltech-aws/internal/core/domain"
)

func (f *fileService) UploadFile(ctx context.Context, file domain.IncomingFile) (*domain.StoredObject, error) {

	if err := f.validateFile(file); err != nil {
		return nil, err
	}

	key, err := f.storageKey(file.FileName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageWrite, err)
	}

	contentType := resolveContentType(file.ContentType, file.Data)

	storeCtx := ctx
	if f.fileUploadCfg.StorageTimeout > 0 {
		var cancel context.CancelFunc
		storeCtx, cancel = context.WithTimeout(ctx, f.fileUploadCfg.StorageTimeout)
		defer cancel()
	}

	if err := f.fileStorage.PutObject(storeCtx, key, contentType, file.Data); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageWrite, err)
	}

	stored := &domain.StoredObject{
		Key:         key,
		FileName:    file.FileName,
		ContentType: contentType,
		SizeBytes:   int64(len(file.Data)),
	}

	f.logger.Info("file stored", "key", stored.Key, "content_type", stored.ContentType, "size", stored.SizeBytes)

	if f.publisher != nil {
		event := domain.UploadStoredEvent{
			Key:         stored.Key,
			FileName:    stored.FileName,
			ContentType: stored.ContentType,
			SizeBytes:   stored.SizeBytes,
			StoredAt:    time.Now().UTC(),
		}
		// best effort, the object is already written
		if pubErr := f.publisher.PublishUploadStored(ctx, event); pubErr != nil {
			f.logger.Warn("failed to publish upload event", "key", stored.Key, "error", pubErr)
		}
	}

	return stored, nil
}
