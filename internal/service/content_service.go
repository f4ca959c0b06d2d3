package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge-backend/internal/model"
	"github.com/quizforge/quizforge-backend/internal/repository"
)

// ContentService handles content CRUD.
type ContentService struct {
	contentRepo *repository.ContentRepository
}

// NewContentService creates a new ContentService.
func NewContentService(contentRepo *repository.ContentRepository) *ContentService {
	return &ContentService{contentRepo: contentRepo}
}

// List retrieves all content entries.
func (s *ContentService) List(ctx context.Context) ([]model.Content, error) {
	contents, err := s.contentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if contents == nil {
		contents = []model.Content{}
	}
	return contents, nil
}

// Get retrieves a single content entry.
func (s *ContentService) Get(ctx context.Context, id string) (*model.Content, error) {
	return s.contentRepo.GetByID(ctx, id)
}

// Create stores a new content entry with a minted identifier.
func (s *ContentService) Create(ctx context.Context, c *model.Content) error {
	c.ID = uuid.New().String()
	return s.contentRepo.Create(ctx, c)
}

// Update replaces an existing content entry.
func (s *ContentService) Update(ctx context.Context, c *model.Content) error {
	return s.contentRepo.Update(ctx, c)
}

// Delete removes a content entry.
func (s *ContentService) Delete(ctx context.Context, id string) error {
	return s.contentRepo.Delete(ctx, id)
}
