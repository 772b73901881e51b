package book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookcatalog/internal/author"
	"bookcatalog/internal/platform/postgres"
	"bookcatalog/internal/publisher"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const titleConstraint = "books_title_key"

// selectBooks yields one row per book with its authors aggregated in
// association order.
const selectBooks = `
	SELECT b.id, b.title, b.publication_date, p.id, p.name,
	       COALESCE(array_agg(a.id ORDER BY ba.position) FILTER (WHERE a.id IS NOT NULL), '{}'),
	       COALESCE(array_agg(a.name ORDER BY ba.position) FILTER (WHERE a.id IS NOT NULL), '{}')
	FROM books b
	JOIN publishers p ON p.id = b.publisher_id
	LEFT JOIN book_authors ba ON ba.book_id = b.id
	LEFT JOIN authors a ON a.id = ba.author_id`

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Create(ctx context.Context, d Draft) (Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return Book{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(timeoutCtx)

	pub, err := findPublisher(timeoutCtx, tx, d.PublisherID)
	if err != nil {
		return Book{}, err
	}

	authors, err := findAuthors(timeoutCtx, tx, d.AuthorIDs)
	if err != nil {
		return Book{}, err
	}
	if len(authors) != len(d.AuthorIDs) {
		return Book{}, ErrAuthorsNotFound
	}

	b := New(d.Title, d.PublicationDate, pub, authors)

	const insertBook = `
		INSERT INTO books (title, publication_date, publisher_id)
		VALUES ($1, $2, $3)
		RETURNING id, publication_date`
	err = tx.QueryRow(timeoutCtx, insertBook, b.Title, b.PublicationDate, b.Publisher.ID).
		Scan(&b.ID, &b.PublicationDate)
	if err != nil {
		if postgres.IsUniqueViolation(err, titleConstraint) {
			return Book{}, ErrDuplicate
		}
		return Book{}, fmt.Errorf("insert book: %w", err)
	}

	if len(b.Authors) > 0 {
		_, err = tx.CopyFrom(timeoutCtx,
			pgx.Identifier{"book_authors"},
			[]string{"book_id", "author_id", "position"},
			pgx.CopyFromSlice(len(b.Authors), func(i int) ([]any, error) {
				return []any{b.ID, b.Authors[i].ID, i}, nil
			}),
		)
		if err != nil {
			return Book{}, fmt.Errorf("insert book authors: %w", err)
		}
	}

	if err := tx.Commit(timeoutCtx); err != nil {
		return Book{}, fmt.Errorf("commit: %w", err)
	}
	return b, nil
}

func findPublisher(ctx context.Context, tx pgx.Tx, id int64) (publisher.Publisher, error) {
	var p publisher.Publisher
	err := tx.QueryRow(ctx, `SELECT id, name FROM publishers WHERE id = $1`, id).Scan(&p.ID, &p.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return publisher.Publisher{}, ErrPublisherNotFound
		}
		return publisher.Publisher{}, fmt.Errorf("find publisher: %w", err)
	}
	return p, nil
}

// findAuthors returns the authors that exist among ids, in the order of ids.
func findAuthors(ctx context.Context, tx pgx.Tx, ids []int64) ([]author.Author, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := tx.Query(ctx, `SELECT id, name FROM authors WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("find authors: %w", err)
	}
	found, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (author.Author, error) {
		var a author.Author
		err := row.Scan(&a.ID, &a.Name)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan authors: %w", err)
	}

	byID := make(map[int64]author.Author, len(found))
	for _, a := range found {
		byID[a.ID] = a
	}
	ordered := make([]author.Author, 0, len(found))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			ordered = append(ordered, a)
		}
	}
	return ordered, nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, selectBooks+`
	GROUP BY b.id, p.id
	ORDER BY b.id`)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	books, err := pgx.CollectRows(rows, scanBook)
	if err != nil {
		return nil, fmt.Errorf("scan books: %w", err)
	}
	return books, nil
}

func (r *PostgresRepo) GetByTitle(ctx context.Context, title string) (Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, selectBooks+`
	WHERE b.title = $1
	GROUP BY b.id, p.id`, title)
	if err != nil {
		return Book{}, fmt.Errorf("get book: %w", err)
	}
	b, err := pgx.CollectExactlyOneRow(rows, scanBook)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, fmt.Errorf("scan book: %w", err)
	}
	return b, nil
}

func scanBook(row pgx.CollectableRow) (Book, error) {
	var (
		b           Book
		authorIDs   []int64
		authorNames []string
	)
	err := row.Scan(&b.ID, &b.Title, &b.PublicationDate, &b.Publisher.ID, &b.Publisher.Name, &authorIDs, &authorNames)
	if err != nil {
		return Book{}, err
	}
	b.Authors = make([]author.Author, len(authorIDs))
	for i := range authorIDs {
		b.Authors[i] = author.Author{ID: authorIDs[i], Name: authorNames[i]}
	}
	return b, nil
}

func (r *PostgresRepo) DeleteByTitle(ctx context.Context, title string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(timeoutCtx)

	var id int64
	err = tx.QueryRow(timeoutCtx, `SELECT id FROM books WHERE title = $1 FOR UPDATE`, title).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("find book: %w", err)
	}

	if _, err := tx.Exec(timeoutCtx, `DELETE FROM book_authors WHERE book_id = $1`, id); err != nil {
		return fmt.Errorf("delete book authors: %w", err)
	}
	if _, err := tx.Exec(timeoutCtx, `DELETE FROM books WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	if err := tx.Commit(timeoutCtx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
