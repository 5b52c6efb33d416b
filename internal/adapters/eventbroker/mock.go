package eventbroker

import (
	"context"

	"github.com/sk9212k/opaltech-aws/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockPublisher is a mock implementation of EventPublisher
type MockPublisher struct {
	mock.Mock
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) PublishUploadStored(ctx context.Context, event domain.UploadStoredEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
