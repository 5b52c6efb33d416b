package transport

import (
	"context"

	"github.com/sk9212k/opaltech-aws/internal/core/domain"
	"github.com/sk9212k/opaltech-aws/internal/core/port"
	"github.com/stretchr/testify/mock"
)

// MockTransport is a mock implementation of UploadTransport
type MockTransport struct {
	mock.Mock
}

func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

func (m *MockTransport) Upload(ctx context.Context, src domain.FileSource, onProgress port.ProgressFunc) (*port.UploadReceipt, error) {
	args := m.Called(ctx, src, onProgress)
	receipt, _ := args.Get(0).(*port.UploadReceipt)
	return receipt, args.Error(1)
}
