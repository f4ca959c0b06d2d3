package service

import (
	"context"

	"github.com/quizforge/quizforge-backend/internal/model"
	"github.com/quizforge/quizforge-backend/internal/repository"
)

// QuestionService handles the saved question list.
type QuestionService struct {
	questionRepo *repository.QuestionRepository
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(questionRepo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

// List retrieves all saved questions.
func (s *QuestionService) List(ctx context.Context) ([]model.Question, error) {
	return s.questionRepo.List(ctx)
}

// Get retrieves a single saved question.
func (s *QuestionService) Get(ctx context.Context, id string) (*model.Question, error) {
	return s.questionRepo.GetByID(ctx, id)
}

// SaveAll appends a batch of questions in order, upserting entries whose
// identifiers already exist. Returns the number of questions saved.
func (s *QuestionService) SaveAll(ctx context.Context, questions []model.Question) (int, error) {
	if len(questions) == 0 {
		return 0, nil
	}
	if err := s.questionRepo.InsertBatch(ctx, questions); err != nil {
		return 0, err
	}
	return len(questions), nil
}

// Delete removes a saved question.
func (s *QuestionService) Delete(ctx context.Context, id string) error {
	return s.questionRepo.Delete(ctx, id)
}
