package file

import (
	"context"

	"github.com/sk9212k/opaltech-aws/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockFileService is a mock implementation of FileService
type MockFileService struct {
	mock.Mock
}

// NewMockFileService creates a new MockFileService
func NewMockFileService() *MockFileService {
	return &MockFileService{}
}

func (m *MockFileService) UploadFile(ctx context.Context, file domain.IncomingFile) (*domain.StoredObject, error) {
	args := m.Called(ctx, file)
	stored, _ := args.Get(0).(*domain.StoredObject)
	return stored, args.Error(1)
}
