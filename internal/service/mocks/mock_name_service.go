package mocks

import (
	"context"

	"nameapi/internal/model"
	"nameapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockNameService struct {
	mock.Mock
}

func (m *MockNameService) Create(ctx context.Context, in service.NameInput) (*model.Name, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Name), args.Error(1)
}

func (m *MockNameService) Get(ctx context.Context, id int64) (*model.Name, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Name), args.Error(1)
}

func (m *MockNameService) List(ctx context.Context) ([]model.Name, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Name), args.Error(1)
}

func (m *MockNameService) Update(ctx context.Context, id int64, in service.NameInput) (*model.Name, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Name), args.Error(1)
}

func (m *MockNameService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSnapshotService struct {
	mock.Mock
}

func (m *MockSnapshotService) Create(ctx context.Context) (*service.SnapshotResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SnapshotResult), args.Error(1)
}
