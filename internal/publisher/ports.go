package publisher

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository_test.go -package=publisher

// Repository defines the contract for publisher storage.
type Repository interface {
	// Create inserts a publisher and returns it with its assigned ID.
	// A name clash yields ErrDuplicate.
	Create(ctx context.Context, name string) (Publisher, error)
	// List returns every publisher ordered by ID.
	List(ctx context.Context) ([]Publisher, error)
}
