package main

import (
	"io/fs"

	"bookcatalog/db"
)

// defaultCreateDir is where "create" writes new files when MIGRATIONS_DIR is
// not set.
const defaultCreateDir = "db/migrations"

// migrationSource picks the embedded migrations unless dir points at a
// directory on disk.
func migrationSource(dir string) (fs.FS, string) {
	if dir == "" {
		return db.Migrations, db.MigrationsDir
	}
	return nil, dir
}

func createDir(dir string) string {
	if dir == "" {
		return defaultCreateDir
	}
	return dir
}
