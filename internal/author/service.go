package author

import (
	"context"
	"errors"
	"log"

	"bookcatalog/internal/apperr"
)

// Service provides author-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new author service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add stores a new author.
func (s *Service) Add(ctx context.Context, name string) (Author, error) {
	a, err := s.repo.Create(ctx, name)
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			log.Printf("add author rejected: name=%q reason=%q", name, ErrDuplicate.Message)
			return Author{}, ErrDuplicate
		}
		log.Printf("add author failed: name=%q error=%v", name, err)
		return Author{}, apperr.Wrap(apperr.KindUnexpected, ErrNotSaved.Message, err)
	}
	log.Printf("author added: id=%d name=%q", a.ID, a.Name)
	return a, nil
}

// List returns all authors.
func (s *Service) List(ctx context.Context) ([]Author, error) {
	authors, err := s.repo.List(ctx)
	if err != nil {
		log.Printf("list authors failed: error=%v", err)
		return nil, err
	}
	return authors, nil
}
