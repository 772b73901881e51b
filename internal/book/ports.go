package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository_test.go -package=book

// Repository defines the contract for book data storage.
// Every method runs in its own unit of work.
type Repository interface {
	// Create resolves the publisher and authors of d, then inserts the book
	// and its author associations in one transaction.
	Create(ctx context.Context, d Draft) (Book, error)
	List(ctx context.Context) ([]Book, error)
	GetByTitle(ctx context.Context, title string) (Book, error)
	// DeleteByTitle removes the book's author associations and then the book.
	DeleteByTitle(ctx context.Context, title string) error
}
