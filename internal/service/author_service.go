package service

import (
	"context"

	"github.com/quizforge/quizforge-backend/internal/model"
	"github.com/quizforge/quizforge-backend/internal/repository"
)

// AuthorService handles author account lookups and creation.
type AuthorService struct {
	authorRepo *repository.AuthorRepository
}

// NewAuthorService creates a new AuthorService.
func NewAuthorService(authorRepo *repository.AuthorRepository) *AuthorService {
	return &AuthorService{authorRepo: authorRepo}
}

// GetByEmail retrieves an author by email.
func (s *AuthorService) GetByEmail(ctx context.Context, email string) (*model.Author, error) {
	return s.authorRepo.GetByEmail(ctx, email)
}

// GetByID retrieves an author by ID.
func (s *AuthorService) GetByID(ctx context.Context, id int) (*model.Author, error) {
	return s.authorRepo.GetByID(ctx, id)
}

// Create stores a new author account.
func (s *AuthorService) Create(ctx context.Context, a *model.Author) error {
	return s.authorRepo.Create(ctx, a)
}
