package port

import (
	"context"

	"github.com/sk9212k/opaltech-aws/internal/core/domain"
)

// EventPublisher is an interface to define an upload event publisher (nats, ...)
type EventPublisher interface {
	PublishUploadStored(ctx context.Context, event domain.UploadStoredEvent) error
	Close() error
}

// EventConsumer is an interface to define an event consumer (kafka, nats, ...)
type EventConsumer interface {
	Subscribe(ctx context.Context, handler MessageService) error
	Close() error
}

// MessageService is an interface to define message handling
type MessageService interface {
	HandleMessage(ctx context.Context, data []byte) error
}
