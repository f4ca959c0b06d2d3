package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quizforge/quizforge-backend/internal/model"
)

// AssessmentRepository handles assessment data access. The question list is
// stored as its wire payload (jsonb).
type AssessmentRepository struct {
	pool *pgxpool.Pool
}

// NewAssessmentRepository creates a new AssessmentRepository.
func NewAssessmentRepository(pool *pgxpool.Pool) *AssessmentRepository {
	return &AssessmentRepository{pool: pool}
}

func scanAssessment(row pgx.Row) (*model.Assessment, error) {
	var (
		a         model.Assessment
		questions []byte
	)
	err := row.Scan(&a.ID, &a.Title, &a.Description, &a.Duration, &questions, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(questions) > 0 {
		if err := json.Unmarshal(questions, &a.Questions); err != nil {
			return nil, fmt.Errorf("decode assessment questions: %w", err)
		}
	}
	if a.Questions == nil {
		a.Questions = []model.Question{}
	}
	return &a, nil
}

// List retrieves all assessments.
func (r *AssessmentRepository) List(ctx context.Context) ([]model.Assessment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, duration, questions, created_at, updated_at
		 FROM assessments ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assessments []model.Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, *a)
	}
	return assessments, rows.Err()
}

// GetByID retrieves a single assessment.
func (r *AssessmentRepository) GetByID(ctx context.Context, id string) (*model.Assessment, error) {
	return scanAssessment(r.pool.QueryRow(ctx,
		`SELECT id, title, description, duration, questions, created_at, updated_at
		 FROM assessments WHERE id = $1`, id))
}

// Create inserts a new assessment.
func (r *AssessmentRepository) Create(ctx context.Context, a *model.Assessment) error {
	questions, err := json.Marshal(a.Questions)
	if err != nil {
		return fmt.Errorf("encode assessment questions: %w", err)
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO assessments (id, title, description, duration, questions)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		a.ID, a.Title, a.Description, a.Duration, questions,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
}

// Update replaces an existing assessment.
func (r *AssessmentRepository) Update(ctx context.Context, a *model.Assessment) error {
	questions, err := json.Marshal(a.Questions)
	if err != nil {
		return fmt.Errorf("encode assessment questions: %w", err)
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE assessments
		 SET title = $2, description = $3, duration = $4, questions = $5, updated_at = NOW()
		 WHERE id = $1`,
		a.ID, a.Title, a.Description, a.Duration, questions,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an assessment.
func (r *AssessmentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM assessments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
