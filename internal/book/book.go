package book

import (
	"time"

	"bookcatalog/internal/apperr"
	"bookcatalog/internal/author"
	"bookcatalog/internal/publisher"
)

var (
	// ErrNotFound is returned when no book has the requested title.
	ErrNotFound = apperr.New(apperr.KindNotFound, "book not found")
	// ErrDuplicate is returned when a book with the same title exists.
	ErrDuplicate = apperr.New(apperr.KindDuplicate, "a book with the same title already exists")
	// ErrPublisherNotFound is returned when the referenced publisher does not exist.
	ErrPublisherNotFound = apperr.New(apperr.KindValidation, "publisher not found")
	// ErrAuthorsNotFound is returned when any referenced author does not exist.
	ErrAuthorsNotFound = apperr.New(apperr.KindValidation, "one or more authors not found")

	ErrNotSaved   = apperr.New(apperr.KindUnexpected, "could not save the book")
	ErrNotLoaded  = apperr.New(apperr.KindUnexpected, "could not load the book")
	ErrNotDeleted = apperr.New(apperr.KindUnexpected, "could not delete the book")
)

// Book represents a book entity with its publisher and authors resolved.
// Authors keep the order in which they were associated.
type Book struct {
	ID              int64
	Title           string
	PublicationDate time.Time
	Publisher       publisher.Publisher
	Authors         []author.Author
}

// New builds a Book. A zero publication date means "now".
func New(title string, publicationDate time.Time, pub publisher.Publisher, authors []author.Author) Book {
	if publicationDate.IsZero() {
		publicationDate = time.Now()
	}
	if authors == nil {
		authors = []author.Author{}
	}
	return Book{
		Title:           title,
		PublicationDate: publicationDate,
		Publisher:       pub,
		Authors:         authors,
	}
}

// Draft is the input for creating a book. References are by ID and are
// resolved inside the creating transaction.
type Draft struct {
	Title           string
	PublicationDate time.Time
	PublisherID     int64
	AuthorIDs       []int64
}

// View is the external representation of a Book.
type View struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	PublicationYear int      `json:"publication_year"`
	PublisherName   string   `json:"publisher_name"`
	AuthorNames     []string `json:"author_names"`
}

func Present(b Book) View {
	names := make([]string, 0, len(b.Authors))
	for _, a := range b.Authors {
		names = append(names, a.Name)
	}
	return View{
		ID:              b.ID,
		Title:           b.Title,
		PublicationYear: b.PublicationDate.Year(),
		PublisherName:   b.Publisher.Name,
		AuthorNames:     names,
	}
}

func PresentAll(books []Book) []View {
	out := make([]View, 0, len(books))
	for _, b := range books {
		out = append(out, Present(b))
	}
	return out
}
