package port

import (
	"context"

	"github.com/sk9212k/opaltech-aws/internal/core/domain"
)

// FileStorage is an interface to define file storage interactions
type FileStorage interface {
	PutObject(ctx context.Context, key string, contentType string, data []byte) error
	Ping(ctx context.Context) error
}

// FileService is an interface to define file service
type FileService interface {
	UploadFile(ctx context.Context, file domain.IncomingFile) (*domain.StoredObject, error)
}

// ObjectInspector is an interface to read back stored object metadata
type ObjectInspector interface {
	StatObject(ctx context.Context, key string) (*domain.ObjectInfo, error)
}
