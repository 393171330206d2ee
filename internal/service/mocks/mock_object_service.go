package mocks

import (
	"context"
	"io"

	"s3gateway/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockObjectService struct {
	mock.Mock
}

func (m *MockObjectService) Upload(ctx context.Context, r io.Reader, orgCode, originalFilename, contentType string, size int64) (string, error) {
	args := m.Called(ctx, r, orgCode, originalFilename, contentType, size)
	return args.String(0), args.Error(1)
}

func (m *MockObjectService) Download(ctx context.Context, key string) (io.ReadCloser, model.ObjectEntry, error) {
	args := m.Called(ctx, key)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Get(1).(model.ObjectEntry), args.Error(2)
}

func (m *MockObjectService) DownloadZip(ctx context.Context, keys []string, dst io.Writer) error {
	args := m.Called(ctx, keys, dst)
	if f, ok := args.Get(0).(func(io.Writer) error); ok {
		return f(dst)
	}
	return args.Error(0)
}

func (m *MockObjectService) Presign(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockObjectService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockObjectService) Info(ctx context.Context, key string) (model.ObjectEntry, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(model.ObjectEntry), args.Error(1)
}

func (m *MockObjectService) List(ctx context.Context, orgCode, dateString string) ([]model.ObjectEntry, error) {
	args := m.Called(ctx, orgCode, dateString)
	if entries, ok := args.Get(0).([]model.ObjectEntry); ok {
		return entries, args.Error(1)
	}
	return nil, args.Error(1)
}
