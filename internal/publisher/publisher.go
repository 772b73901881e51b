package publisher

import (
	"bookcatalog/internal/apperr"
)

var (
	// ErrDuplicate is returned when a publisher with the same name exists.
	ErrDuplicate = apperr.New(apperr.KindDuplicate, "a publisher with the same name already exists")
	// ErrNotSaved hides unexpected failures while adding a publisher.
	ErrNotSaved = apperr.New(apperr.KindUnexpected, "could not save the publisher")
)

// Publisher is the house that issues books. A book has exactly one.
type Publisher struct {
	ID   int64
	Name string
}

// View is the external representation of a Publisher.
type View struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func Present(p Publisher) View {
	return View{ID: p.ID, Name: p.Name}
}

func PresentAll(publishers []Publisher) []View {
	out := make([]View, 0, len(publishers))
	for _, p := range publishers {
		out = append(out, Present(p))
	}
	return out
}
