package author

import (
	"context"
	"fmt"
	"time"

	"bookcatalog/internal/platform/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const nameConstraint = "authors_name_key"

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

func (r *PostgresRepo) Create(ctx context.Context, name string) (Author, error) {
	const query = `INSERT INTO authors (name) VALUES ($1) RETURNING id, name`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var a Author
	err := r.db.QueryRow(timeoutCtx, query, name).Scan(&a.ID, &a.Name)
	if err != nil {
		if postgres.IsUniqueViolation(err, nameConstraint) {
			return Author{}, ErrDuplicate
		}
		return Author{}, fmt.Errorf("insert author: %w", err)
	}
	return a, nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]Author, error) {
	const query = `SELECT id, name FROM authors ORDER BY id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	authors, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Author, error) {
		var a Author
		err := row.Scan(&a.ID, &a.Name)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan authors: %w", err)
	}
	return authors, nil
}
