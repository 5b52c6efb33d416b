package storage

import (
	"context"

	"github.com/sk9212k/opaltech-aws/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

func (m *MockStorage) PutObject(ctx context.Context, key string, contentType string, data []byte) error {
	args := m.Called(ctx, key, contentType, data)
	return args.Error(0)
}

func (m *MockStorage) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStorage) StatObject(ctx context.Context, key string) (*domain.ObjectInfo, error) {
	args := m.Called(ctx, key)
	info, _ := args.Get(0).(*domain.ObjectInfo)
	return info, args.Error(1)
}
