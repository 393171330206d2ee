package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.

import (
	"context"

	"s3gateway/internal/model"
)

// SampleRepository defines data access for sample board posts using SQL queries only.
// No business logic here — strictly persistence operations.
type SampleRepository interface {
	// Create inserts a new sample row and returns the stored record,
	// including values set by the database (ID, timestamps).
	Create(ctx context.Context, sample *model.Sample) (*model.Sample, error)

	// FindByID returns a sample by its ID.
	FindByID(ctx context.Context, id int64) (*model.Sample, error)

	// List returns a paginated list of samples ordered newest first.
	List(ctx context.Context, pq PageQuery) ([]model.Sample, error)

	// Count returns the total number of sample rows.
	Count(ctx context.Context) (int, error)

	// Update rewrites title/content/author of an existing row and reports
	// how many rows were affected.
	Update(ctx context.Context, sample *model.Sample) (int64, error)

	// Delete removes a sample by ID and reports how many rows were affected.
	Delete(ctx context.Context, id int64) (int64, error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}
