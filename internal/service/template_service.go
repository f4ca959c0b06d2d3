package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge-backend/internal/model"
	"github.com/quizforge/quizforge-backend/internal/repository"
	"github.com/rs/zerolog"
)

// Template service errors.
var (
	// ErrImportNotArray rejects an import payload that is not a JSON array.
	ErrImportNotArray = errors.New("imported document is not a JSON array")
)

// ErrTemplateInvalid carries the ordered validation messages of a rejected
// template.
type ErrTemplateInvalid struct {
	Errors []string
}

func (e *ErrTemplateInvalid) Error() string {
	return fmt.Sprintf("template validation failed: %d error(s)", len(e.Errors))
}

// TemplateService handles question-template lifecycle, validation,
// import/export and previewing.
type TemplateService struct {
	templateRepo *repository.TemplateRepository
	log          zerolog.Logger
}

// NewTemplateService creates a new TemplateService.
func NewTemplateService(templateRepo *repository.TemplateRepository, log zerolog.Logger) *TemplateService {
	return &TemplateService{
		templateRepo: templateRepo,
		log:          log.With().Str("component", "template_service").Logger(),
	}
}

// List retrieves templates with optional category/type filters.
func (s *TemplateService) List(ctx context.Context, category, templateType string) ([]model.QuestionTemplate, error) {
	templates, err := s.templateRepo.List(ctx, category, templateType)
	if err != nil {
		return nil, err
	}
	if templates == nil {
		templates = []model.QuestionTemplate{}
	}
	return templates, nil
}

// Get retrieves a single template.
func (s *TemplateService) Get(ctx context.Context, id string) (*model.QuestionTemplate, error) {
	return s.templateRepo.GetByID(ctx, id)
}

// Examples returns the built-in example templates.
func (s *TemplateService) Examples() []model.QuestionTemplate {
	return ExampleTemplates
}

// Create validates and stores a new template, minting its identifier.
func (s *TemplateService) Create(ctx context.Context, t *model.QuestionTemplate) error {
	if result := ValidateTemplate(t); !result.IsValid {
		return &ErrTemplateInvalid{Errors: result.Errors}
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return s.templateRepo.Create(ctx, t)
}

// Update validates and replaces an existing template.
func (s *TemplateService) Update(ctx context.Context, t *model.QuestionTemplate) error {
	if result := ValidateTemplate(t); !result.IsValid {
		return &ErrTemplateInvalid{Errors: result.Errors}
	}
	return s.templateRepo.Update(ctx, t)
}

// Delete removes a template by ID.
func (s *TemplateService) Delete(ctx context.Context, id string) error {
	return s.templateRepo.Delete(ctx, id)
}

// Validate runs template validation without persisting anything.
func (s *TemplateService) Validate(t *model.QuestionTemplate) ValidationResult {
	return ValidateTemplate(t)
}

// Preview substitutes placeholder values into a template's body.
func (s *TemplateService) Preview(ctx context.Context, id string, values map[string]string) (string, error) {
	t, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return RenderTemplate(t.Template, values), nil
}

// ExportFilename returns the download name for an export taken now,
// stamped with the current date.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("templates_%s.json", now.Format("2006-01-02"))
}

// Export serializes the full template list for download.
func (s *TemplateService) Export(ctx context.Context) ([]byte, error) {
	templates, err := s.List(ctx, "", "")
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(templates, "", "  ")
}

// ImportResult summarizes a template import.
type ImportResult struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

// Import parses an exported document and creates its templates one by one.
// A document that is not a JSON array is rejected outright; individual
// templates that fail validation or storage are skipped and reported while
// the rest still import.
func (s *TemplateService) Import(ctx context.Context, doc []byte) (*ImportResult, error) {
	var templates []model.QuestionTemplate
	if err := json.Unmarshal(doc, &templates); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportNotArray, err)
	}

	result := &ImportResult{}
	for i := range templates {
		t := templates[i]
		t.ID = "" // Imported templates get fresh identifiers.
		if err := s.Create(ctx, &t); err != nil {
			result.Failed++
			var invalid *ErrTemplateInvalid
			if errors.As(err, &invalid) {
				result.Errors = append(result.Errors,
					fmt.Sprintf("%s: %v", t.Name, invalid.Errors))
				continue
			}
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", t.Name, err))
			continue
		}
		result.Imported++
	}

	s.log.Info().
		Int("imported", result.Imported).
		Int("failed", result.Failed).
		Msg("Template import finished")

	return result, nil
}
