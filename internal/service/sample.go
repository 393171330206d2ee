package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"s3gateway/internal/model"
	"s3gateway/internal/repository"
)

// SampleListResult is the service-level DTO for paginated sample posts.
type SampleListResult struct {
	Items []model.Sample `json:"data"`
	Total int            `json:"total"`
}

// SampleService defines the use cases for the sample board. It is an ordinary
// paged CRUD surface with no special invariants.
type SampleService interface {
	// List returns samples using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*SampleListResult, error)

	// Count returns the total number of samples.
	Count(ctx context.Context) (int, error)

	// Get returns a single sample by its ID.
	Get(ctx context.Context, id int64) (*model.Sample, error)

	// Create validates and inserts a new sample.
	Create(ctx context.Context, sample *model.Sample) (*model.Sample, error)

	// Update rewrites an existing sample.
	Update(ctx context.Context, sample *model.Sample) error

	// Delete removes a sample by ID.
	Delete(ctx context.Context, id int64) error
}

// sampleService is a concrete implementation of SampleService.
type sampleService struct {
	repo repository.SampleRepository
}

// NewSampleService constructs a new SampleService.
func NewSampleService(repo repository.SampleRepository) SampleService {
	return &sampleService{repo: repo}
}

// List returns paginated samples without exposing repository types.
func (s *sampleService) List(ctx context.Context, limit, offset int) (*SampleListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	items, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &SampleListResult{Items: items, Total: total}, nil
}

func (s *sampleService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *sampleService) Get(ctx context.Context, id int64) (*model.Sample, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}
	sample, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sample, nil
}

func (s *sampleService) Create(ctx context.Context, sample *model.Sample) (*model.Sample, error) {
	if sample == nil || sample.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidRequest)
	}
	return s.repo.Create(ctx, sample)
}

func (s *sampleService) Update(ctx context.Context, sample *model.Sample) error {
	if sample == nil || sample.ID <= 0 {
		return ErrIDRequired
	}
	if sample.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidRequest)
	}
	affected, err := s.repo.Update(ctx, sample)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *sampleService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrIDRequired
	}
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
