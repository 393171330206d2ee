package postgres

import (
	"context"
	"database/sql"

	"s3gateway/internal/model"
	"s3gateway/internal/repository"
)

// SamplePostgres is a PostgreSQL implementation of repository.SampleRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type SamplePostgres struct {
	db *sql.DB
}

// NewSamplePostgres creates a new SamplePostgres repository.
func NewSamplePostgres(db *sql.DB) *SamplePostgres {
	return &SamplePostgres{db: db}
}

var _ repository.SampleRepository = (*SamplePostgres)(nil)

// Create inserts a new sample row and returns the stored record.
func (r *SamplePostgres) Create(ctx context.Context, sample *model.Sample) (*model.Sample, error) {
	const q = `
		INSERT INTO samples (title, content, author)
		VALUES ($1, $2, $3)
		RETURNING id, title, content, author, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, q, sample.Title, sample.Content, sample.Author)
	var out model.Sample
	if err := row.Scan(
		&out.ID,
		&out.Title,
		&out.Content,
		&out.Author,
		&out.CreatedAt,
		&out.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single sample by its ID.
func (r *SamplePostgres) FindByID(ctx context.Context, id int64) (*model.Sample, error) {
	const q = `
		SELECT id, title, content, author, created_at, updated_at
		FROM samples
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var s model.Sample
	if err := row.Scan(
		&s.ID,
		&s.Title,
		&s.Content,
		&s.Author,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns samples using LIMIT/OFFSET pagination, newest first.
func (r *SamplePostgres) List(ctx context.Context, pq repository.PageQuery) ([]model.Sample, error) {
	const q = `
		SELECT id, title, content, author, created_at, updated_at
		FROM samples
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, q, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Sample, 0)
	for rows.Next() {
		var s model.Sample
		if err := rows.Scan(
			&s.ID,
			&s.Title,
			&s.Content,
			&s.Author,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Count returns the total number of sample rows.
func (r *SamplePostgres) Count(ctx context.Context) (int, error) {
	const q = `SELECT COUNT(*) FROM samples`
	var total int
	if err := r.db.QueryRowContext(ctx, q).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// Update rewrites an existing row and reports rows affected.
func (r *SamplePostgres) Update(ctx context.Context, sample *model.Sample) (int64, error) {
	const q = `
		UPDATE samples
		SET title = $1, content = $2, author = $3, updated_at = now()
		WHERE id = $4
	`
	res, err := r.db.ExecContext(ctx, q, sample.Title, sample.Content, sample.Author, sample.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes a sample by ID and reports rows affected.
func (r *SamplePostgres) Delete(ctx context.Context, id int64) (int64, error) {
	const q = `DELETE FROM samples WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
