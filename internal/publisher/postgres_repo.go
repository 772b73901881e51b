package publisher

import (
	"context"
	"fmt"
	"time"

	"bookcatalog/internal/platform/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const nameConstraint = "publishers_name_key"

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

func (r *PostgresRepo) Create(ctx context.Context, name string) (Publisher, error) {
	const query = `INSERT INTO publishers (name) VALUES ($1) RETURNING id, name`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var p Publisher
	err := r.db.QueryRow(timeoutCtx, query, name).Scan(&p.ID, &p.Name)
	if err != nil {
		if postgres.IsUniqueViolation(err, nameConstraint) {
			return Publisher{}, ErrDuplicate
		}
		return Publisher{}, fmt.Errorf("insert publisher: %w", err)
	}
	return p, nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]Publisher, error) {
	const query = `SELECT id, name FROM publishers ORDER BY id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, fmt.Errorf("list publishers: %w", err)
	}
	publishers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Publisher, error) {
		var p Publisher
		err := row.Scan(&p.ID, &p.Name)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan publishers: %w", err)
	}
	return publishers, nil
}
