package mocks

import (
	"context"

	"s3gateway/internal/model"
	"s3gateway/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockSampleRepository struct {
	mock.Mock
}

func (m *MockSampleRepository) Create(ctx context.Context, sample *model.Sample) (*model.Sample, error) {
	args := m.Called(ctx, sample)
	if s, ok := args.Get(0).(*model.Sample); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSampleRepository) FindByID(ctx context.Context, id int64) (*model.Sample, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*model.Sample); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSampleRepository) List(ctx context.Context, pq repository.PageQuery) ([]model.Sample, error) {
	args := m.Called(ctx, pq)
	if items, ok := args.Get(0).([]model.Sample); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSampleRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockSampleRepository) Update(ctx context.Context, sample *model.Sample) (int64, error) {
	args := m.Called(ctx, sample)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSampleRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
