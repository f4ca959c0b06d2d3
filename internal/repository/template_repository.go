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

// TemplateRepository handles question-template data access.
type TemplateRepository struct {
	pool *pgxpool.Pool
}

// NewTemplateRepository creates a new TemplateRepository.
func NewTemplateRepository(pool *pgxpool.Pool) *TemplateRepository {
	return &TemplateRepository{pool: pool}
}

const templateColumns = `id, name, template_type, body, subject, difficulty, category,
	tags, variables, examples, description, is_public, language,
	format_instructions, validation_rules, created_at, updated_at`

func scanTemplate(row pgx.Row) (*model.QuestionTemplate, error) {
	var (
		t     model.QuestionTemplate
		rules []byte
	)
	err := row.Scan(
		&t.ID, &t.Name, &t.Type, &t.Template, &t.Subject, &t.Difficulty,
		&t.Category, &t.Tags, &t.Variables, &t.Examples, &t.Description,
		&t.IsPublic, &t.Language, &t.FormatInstructions, &rules,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(rules) > 0 {
		var vr model.ValidationRules
		if err := json.Unmarshal(rules, &vr); err != nil {
			return nil, fmt.Errorf("decode validation rules: %w", err)
		}
		t.ValidationRules = &vr
	}
	return &t, nil
}

func encodeRules(rules *model.ValidationRules) ([]byte, error) {
	if rules == nil {
		return nil, nil
	}
	return json.Marshal(rules)
}

// List retrieves templates, optionally filtered by category and/or type.
// Empty filter values match everything.
func (r *TemplateRepository) List(ctx context.Context, category, templateType string) ([]model.QuestionTemplate, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+templateColumns+`
		 FROM question_templates
		 WHERE ($1 = '' OR category = $1)
		   AND ($2 = '' OR template_type = $2)
		 ORDER BY created_at`, category, templateType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []model.QuestionTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, *t)
	}
	return templates, rows.Err()
}

// GetByID retrieves a single template.
func (r *TemplateRepository) GetByID(ctx context.Context, id string) (*model.QuestionTemplate, error) {
	return scanTemplate(r.pool.QueryRow(ctx,
		`SELECT `+templateColumns+` FROM question_templates WHERE id = $1`, id))
}

// Create inserts a new template.
func (r *TemplateRepository) Create(ctx context.Context, t *model.QuestionTemplate) error {
	rules, err := encodeRules(t.ValidationRules)
	if err != nil {
		return fmt.Errorf("encode validation rules: %w", err)
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO question_templates
		 (id, name, template_type, body, subject, difficulty, category, tags,
		  variables, examples, description, is_public, language,
		  format_instructions, validation_rules)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 RETURNING created_at, updated_at`,
		t.ID, t.Name, t.Type, t.Template, t.Subject, t.Difficulty, t.Category,
		t.Tags, t.Variables, t.Examples, t.Description, t.IsPublic, t.Language,
		t.FormatInstructions, rules,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
}

// Update replaces an existing template.
func (r *TemplateRepository) Update(ctx context.Context, t *model.QuestionTemplate) error {
	rules, err := encodeRules(t.ValidationRules)
	if err != nil {
		return fmt.Errorf("encode validation rules: %w", err)
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE question_templates
		 SET name = $2, template_type = $3, body = $4, subject = $5,
		     difficulty = $6, category = $7, tags = $8, variables = $9,
		     examples = $10, description = $11, is_public = $12, language = $13,
		     format_instructions = $14, validation_rules = $15, updated_at = NOW()
		 WHERE id = $1`,
		t.ID, t.Name, t.Type, t.Template, t.Subject, t.Difficulty, t.Category,
		t.Tags, t.Variables, t.Examples, t.Description, t.IsPublic, t.Language,
		t.FormatInstructions, rules,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a template by ID.
func (r *TemplateRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM question_templates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
