package author

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository_test.go -package=author

// Repository defines the contract for author storage.
type Repository interface {
	// Create inserts an author and returns it with its assigned ID.
	// A name clash yields ErrDuplicate.
	Create(ctx context.Context, name string) (Author, error)
	// List returns every author ordered by ID.
	List(ctx context.Context) ([]Author, error)
}
