package mocks

import (
	"context"

	"s3gateway/internal/model"
	"s3gateway/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockSampleService struct {
	mock.Mock
}

func (m *MockSampleService) List(ctx context.Context, limit, offset int) (*service.SampleListResult, error) {
	args := m.Called(ctx, limit, offset)
	if res, ok := args.Get(0).(*service.SampleListResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSampleService) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockSampleService) Get(ctx context.Context, id int64) (*model.Sample, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*model.Sample); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSampleService) Create(ctx context.Context, sample *model.Sample) (*model.Sample, error) {
	args := m.Called(ctx, sample)
	if s, ok := args.Get(0).(*model.Sample); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSampleService) Update(ctx context.Context, sample *model.Sample) error {
	args := m.Called(ctx, sample)
	return args.Error(0)
}

func (m *MockSampleService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
