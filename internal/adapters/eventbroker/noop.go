package eventbroker

import (
	"context"

	"github.com/sk9212k/opaltech-aws/internal/core/domain"
)

// NoopPublisher drops every event, used when no broker is configured
type NoopPublisher struct{}

func (NoopPublisher) PublishUploadStored(context.Context, domain.UploadStoredEvent) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
