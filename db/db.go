// Package db holds the SQL migrations for the catalog schema.
package db

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

// Migrations is rooted at the db directory; MigrationsDir is the goose
// directory inside it.
//
//go:embed migrations/*.sql
var Migrations embed.FS

const MigrationsDir = "migrations"

// Up applies every embedded migration to sqlDB.
func Up(ctx context.Context, sqlDB *sql.DB) error {
	goose.SetBaseFS(Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, sqlDB, MigrationsDir)
}
