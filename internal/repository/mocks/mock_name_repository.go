package mocks

import (
	"context"

	"nameapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockNameRepository struct {
	mock.Mock
}

func (m *MockNameRepository) Create(ctx context.Context, n *model.Name) (*model.Name, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Name), args.Error(1)
}

func (m *MockNameRepository) FindByID(ctx context.Context, id int64) (*model.Name, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Name), args.Error(1)
}

func (m *MockNameRepository) List(ctx context.Context) ([]model.Name, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Name), args.Error(1)
}

func (m *MockNameRepository) Update(ctx context.Context, n *model.Name) (*model.Name, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Name), args.Error(1)
}

func (m *MockNameRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNameRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
