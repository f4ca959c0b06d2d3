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

// QuestionRepository handles saved-question data access. Questions are
// stored as their full wire payload (jsonb) with the discriminator and topic
// lifted into columns for listing.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// List retrieves all saved questions in insertion order.
func (r *QuestionRepository) List(ctx context.Context) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT payload FROM questions ORDER BY position, created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []model.Question
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var q model.Question
		if err := json.Unmarshal(payload, &q); err != nil {
			return nil, fmt.Errorf("decode question payload: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// InsertBatch appends a batch of questions, preserving their order.
func (r *QuestionRepository) InsertBatch(ctx context.Context, questions []model.Question) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var next int
	if err := tx.QueryRow(ctx,
		`SELECT COALESCE(MAX(position), 0) FROM questions`).Scan(&next); err != nil {
		return err
	}

	for i := range questions {
		payload, err := json.Marshal(&questions[i])
		if err != nil {
			return fmt.Errorf("encode question payload: %w", err)
		}
		next++
		if _, err := tx.Exec(ctx,
			`INSERT INTO questions (id, question_type, topic, payload, position)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (id) DO UPDATE
			 SET question_type = EXCLUDED.question_type,
			     topic = EXCLUDED.topic,
			     payload = EXCLUDED.payload,
			     updated_at = NOW()`,
			questions[i].ID, questions[i].Type(), questions[i].Topic, payload, next,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Upsert stores a single question, keeping its position if it already exists.
func (r *QuestionRepository) Upsert(ctx context.Context, q *model.Question) error {
	payload, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("encode question payload: %w", err)
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO questions (id, question_type, topic, payload, position)
		 VALUES ($1, $2, $3, $4,
		         (SELECT COALESCE(MAX(position), 0) + 1 FROM questions))
		 ON CONFLICT (id) DO UPDATE
		 SET question_type = EXCLUDED.question_type,
		     topic = EXCLUDED.topic,
		     payload = EXCLUDED.payload,
		     updated_at = NOW()`,
		q.ID, q.Type(), q.Topic, payload,
	)
	return err
}

// GetByID retrieves one saved question.
func (r *QuestionRepository) GetByID(ctx context.Context, id string) (*model.Question, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx,
		`SELECT payload FROM questions WHERE id = $1`, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var q model.Question
	if err := json.Unmarshal(payload, &q); err != nil {
		return nil, fmt.Errorf("decode question payload: %w", err)
	}
	return &q, nil
}

// Delete removes a saved question.
func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
