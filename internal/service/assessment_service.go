package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge-backend/internal/model"
	"github.com/quizforge/quizforge-backend/internal/repository"
)

// AssessmentService handles assessment CRUD.
type AssessmentService struct {
	assessmentRepo *repository.AssessmentRepository
}

// NewAssessmentService creates a new AssessmentService.
func NewAssessmentService(assessmentRepo *repository.AssessmentRepository) *AssessmentService {
	return &AssessmentService{assessmentRepo: assessmentRepo}
}

// List retrieves all assessments.
func (s *AssessmentService) List(ctx context.Context) ([]model.Assessment, error) {
	assessments, err := s.assessmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if assessments == nil {
		assessments = []model.Assessment{}
	}
	return assessments, nil
}

// Get retrieves a single assessment.
func (s *AssessmentService) Get(ctx context.Context, id string) (*model.Assessment, error) {
	return s.assessmentRepo.GetByID(ctx, id)
}

// Create stores a new assessment with a minted identifier.
func (s *AssessmentService) Create(ctx context.Context, a *model.Assessment) error {
	a.ID = uuid.New().String()
	if a.Questions == nil {
		a.Questions = []model.Question{}
	}
	return s.assessmentRepo.Create(ctx, a)
}

// Update replaces an existing assessment.
func (s *AssessmentService) Update(ctx context.Context, a *model.Assessment) error {
	if a.Questions == nil {
		a.Questions = []model.Question{}
	}
	return s.assessmentRepo.Update(ctx, a)
}

// Delete removes an assessment.
func (s *AssessmentService) Delete(ctx context.Context, id string) error {
	return s.assessmentRepo.Delete(ctx, id)
}
