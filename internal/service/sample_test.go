package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"s3gateway/internal/model"
	"s3gateway/internal/repository"
	repoMocks "s3gateway/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSampleServiceList(t *testing.T) {
	t.Run("defaults limit and clamps offset", func(t *testing.T) {
		repo := new(repoMocks.MockSampleRepository)
		svc := NewSampleService(repo)

		repo.On("List", mock.Anything, repository.PageQuery{Limit: 10, Offset: 0}).
			Return([]model.Sample{{ID: 1}}, nil)
		repo.On("Count", mock.Anything).Return(1, nil)

		res, err := svc.List(context.Background(), 0, -5)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		assert.Len(t, res.Items, 1)
		repo.AssertExpectations(t)
	})

	t.Run("propagates repository error", func(t *testing.T) {
		repo := new(repoMocks.MockSampleRepository)
		svc := NewSampleService(repo)

		repo.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

		_, err := svc.List(context.Background(), 10, 0)
		assert.Error(t, err)
	})
}

func TestSampleServiceGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := new(repoMocks.MockSampleRepository)
		svc := NewSampleService(repo)

		repo.On("FindByID", mock.Anything, int64(3)).
			Return(&model.Sample{ID: 3, Title: "t"}, nil)

		sample, err := svc.Get(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, int64(3), sample.ID)
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		repo := new(repoMocks.MockSampleRepository)
		svc := NewSampleService(repo)

		repo.On("FindByID", mock.Anything, int64(9)).Return(nil, sql.ErrNoRows)

		_, err := svc.Get(context.Background(), 9)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("non-positive id", func(t *testing.T) {
		repo := new(repoMocks.MockSampleRepository)
		svc := NewSampleService(repo)

		_, err := svc.Get(context.Background(), 0)
		assert.ErrorIs(t, err, ErrIDRequired)
		repo.AssertNotCalled(t, "FindByID")
	})
}

func TestSampleServiceCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(repoMocks.MockSampleRepository)
		svc := NewSampleService(repo)

		in := &model.Sample{Title: "hello", Content: "body", Author: "tester"}
		repo.On("Create", mock.Anything, in).
			Return(&model.Sample{ID: 1, Title: "hello", Content: "body", Author: "tester"}, nil)

		out, err := svc.Create(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, int64(1), out.ID)
	})

	t.Run("missing title", func(t *testing.T) {
		repo := new(repoMocks.MockSampleRepository)
		svc := NewSampleService(repo)

		_, err := svc.Create(context.Background(), &model.Sample{Author: "tester"})
		assert.ErrorIs(t, err, ErrInvalidRequest)
		repo.AssertNotCalled(t, "Create")
	})
}

func TestSampleServiceUpdate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(repoMocks.MockSampleRepository)
		svc := NewSampleService(repo)

		repo.On("Update", mock.Anything, mock.Anything).Return(int64(1), nil)

		err := svc.Update(context.Background(), &model.Sample{ID: 1, Title: "t"})
		assert.NoError(t, err)
	})

	t.Run("zero rows affected maps to not found", func(t *testing.T) {
		repo := new(repoMocks.MockSampleRepository)
		svc := NewSampleService(repo)

		repo.On("Update", mock.Anything, mock.Anything).Return(int64(0), nil)

		err := svc.Update(context.Background(), &model.Sample{ID: 99, Title: "t"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing id", func(t *testing.T) {
		repo := new(repoMocks.MockSampleRepository)
		svc := NewSampleService(repo)

		err := svc.Update(context.Background(), &model.Sample{Title: "t"})
		assert.ErrorIs(t, err, ErrIDRequired)
		repo.AssertNotCalled(t, "Update")
	})
}

func TestSampleServiceDelete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(repoMocks.MockSampleRepository)
		svc := NewSampleService(repo)

		repo.On("Delete", mock.Anything, int64(4)).Return(int64(1), nil)

		assert.NoError(t, svc.Delete(context.Background(), 4))
	})

	t.Run("zero rows affected maps to not found", func(t *testing.T) {
		repo := new(repoMocks.MockSampleRepository)
		svc := NewSampleService(repo)

		repo.On("Delete", mock.Anything, int64(4)).Return(int64(0), nil)

		assert.ErrorIs(t, svc.Delete(context.Background(), 4), ErrNotFound)
	})

	t.Run("missing id", func(t *testing.T) {
		repo := new(repoMocks.MockSampleRepository)
		svc := NewSampleService(repo)

		assert.ErrorIs(t, svc.Delete(context.Background(), 0), ErrIDRequired)
		repo.AssertNotCalled(t, "Delete")
	})
}
