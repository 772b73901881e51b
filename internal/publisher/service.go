package publisher

import (
	"context"
	"errors"
	"log"

	"bookcatalog/internal/apperr"
)

// Service provides publisher-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new publisher service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add stores a new publisher.
func (s *Service) Add(ctx context.Context, name string) (Publisher, error) {
	p, err := s.repo.Create(ctx, name)
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			log.Printf("add publisher rejected: name=%q reason=%q", name, ErrDuplicate.Message)
			return Publisher{}, ErrDuplicate
		}
		log.Printf("add publisher failed: name=%q error=%v", name, err)
		return Publisher{}, apperr.Wrap(apperr.KindUnexpected, ErrNotSaved.Message, err)
	}
	log.Printf("publisher added: id=%d name=%q", p.ID, p.Name)
	return p, nil
}

// List returns all publishers.
func (s *Service) List(ctx context.Context) ([]Publisher, error) {
	publishers, err := s.repo.List(ctx)
	if err != nil {
		log.Printf("list publishers failed: error=%v", err)
		return nil, err
	}
	return publishers, nil
}
