package book

import (
	"context"
	"log"
	"unicode/utf8"

	"bookcatalog/internal/apperr"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add creates a book. Repeated author IDs count once.
func (s *Service) Add(ctx context.Context, d Draft) (Book, error) {
	d.AuthorIDs = uniqueIDs(d.AuthorIDs)

	b, err := s.repo.Create(ctx, d)
	if err != nil {
		switch apperr.KindOf(err) {
		case apperr.KindValidation, apperr.KindDuplicate:
			log.Printf("add book rejected: title=%q reason=%q", d.Title, apperr.MessageOf(err, err.Error()))
			return Book{}, err
		default:
			log.Printf("add book failed: title=%q error=%v", d.Title, err)
			return Book{}, apperr.Wrap(apperr.KindUnexpected, ErrNotSaved.Message, err)
		}
	}
	log.Printf("book added: id=%d title=%q authors=%d", b.ID, b.Title, len(b.Authors))
	return b, nil
}

// List returns all books.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		log.Printf("list books failed: error=%v", err)
		return nil, err
	}
	return books, nil
}

// FindByTitle returns the book with exactly this title.
// A title that is not valid UTF-8 cannot be stored, so it is never found.
func (s *Service) FindByTitle(ctx context.Context, title string) (Book, error) {
	if !utf8.ValidString(title) {
		log.Printf("find book: title=%q reason=%q", title, "invalid utf-8")
		return Book{}, ErrNotFound
	}

	b, err := s.repo.GetByTitle(ctx, title)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			log.Printf("find book: title=%q reason=%q", title, ErrNotFound.Message)
			return Book{}, err
		}
		log.Printf("find book failed: title=%q error=%v", title, err)
		return Book{}, apperr.Wrap(apperr.KindUnexpected, ErrNotLoaded.Message, err)
	}
	return b, nil
}

// DeleteByTitle decodes rawTitle (see DecodeTitle), deletes the matching
// book and returns the decoded title. Invalid UTF-8 is never found.
func (s *Service) DeleteByTitle(ctx context.Context, rawTitle string) (string, error) {
	title := DecodeTitle(rawTitle)
	if !utf8.ValidString(title) {
		log.Printf("delete book: title=%q reason=%q", title, "invalid utf-8")
		return title, ErrNotFound
	}

	if err := s.repo.DeleteByTitle(ctx, title); err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			log.Printf("delete book: title=%q reason=%q", title, ErrNotFound.Message)
			return title, err
		}
		log.Printf("delete book failed: title=%q error=%v", title, err)
		return title, apperr.Wrap(apperr.KindUnexpected, ErrNotDeleted.Message, err)
	}
	log.Printf("book deleted: title=%q", title)
	return title, nil
}

func uniqueIDs(ids []int64) []int64 {
	if len(ids) == 0 {
		return ids
	}
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
