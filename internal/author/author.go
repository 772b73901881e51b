package author

import (
	"bookcatalog/internal/apperr"
)

var (
	// ErrDuplicate is returned when an author with the same name exists.
	ErrDuplicate = apperr.New(apperr.KindDuplicate, "an author with the same name already exists")
	// ErrNotSaved hides unexpected failures while adding an author.
	ErrNotSaved = apperr.New(apperr.KindUnexpected, "could not save the author")
)

// Author is a person credited on books.
type Author struct {
	ID   int64
	Name string
}

// View is the external representation of an Author.
type View struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func Present(a Author) View {
	return View{ID: a.ID, Name: a.Name}
}

func PresentAll(authors []Author) []View {
	out := make([]View, 0, len(authors))
	for _, a := range authors {
		out = append(out, Present(a))
	}
	return out
}
