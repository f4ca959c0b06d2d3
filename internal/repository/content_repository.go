package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quizforge/quizforge-backend/internal/model"
)

// ContentRepository handles content data access.
type ContentRepository struct {
	pool *pgxpool.Pool
}

// NewContentRepository creates a new ContentRepository.
func NewContentRepository(pool *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{pool: pool}
}

// List retrieves all content entries.
func (r *ContentRepository) List(ctx context.Context) ([]model.Content, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, body, topic, created_at, updated_at
		 FROM contents ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contents []model.Content
	for rows.Next() {
		var c model.Content
		if err := rows.Scan(&c.ID, &c.Title, &c.Body, &c.Topic, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		contents = append(contents, c)
	}
	return contents, rows.Err()
}

// GetByID retrieves a single content entry.
func (r *ContentRepository) GetByID(ctx context.Context, id string) (*model.Content, error) {
	var c model.Content
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, body, topic, created_at, updated_at
		 FROM contents WHERE id = $1`, id,
	).Scan(&c.ID, &c.Title, &c.Body, &c.Topic, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Create inserts a new content entry.
func (r *ContentRepository) Create(ctx context.Context, c *model.Content) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contents (id, title, body, topic)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		c.ID, c.Title, c.Body, c.Topic,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
}

// Update replaces an existing content entry.
func (r *ContentRepository) Update(ctx context.Context, c *model.Content) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contents SET title = $2, body = $3, topic = $4, updated_at = NOW()
		 WHERE id = $1`,
		c.ID, c.Title, c.Body, c.Topic,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a content entry.
func (r *ContentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
