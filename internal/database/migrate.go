package database

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/langtutor/schemas"
)

// Migrate runs every file of fsys matching schemas.MigrationPattern of fsys in name order and returns the applied names.
// Files must be safe to run again, e.g. CREATE TABLE IF NOT EXISTS.
func Migrate(ctx context.Context, db *sqlx.DB, fsys fs.FS) ([]string, error) {
	files, err := fs.Glob(fsys, schemas.MigrationPattern)
	if err != nil {
		return nil, fmt.Errorf("fs.Glob() > %w", err)
	}
	sort.Strings(files)

	applied := make([]string, 0, len(files))
	for _, file := range files {
		content, err := fs.ReadFile(fsys, file)
		if err != nil {
			return applied, fmt.Errorf("fs.ReadFile(%s) > %w", file, err)
		}
		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return applied, fmt.Errorf("db.ExecContext(%s) > %w", file, err)
		}
		name := path.Base(file)
		slog.Default().Info("applied migration", "file", name)
		applied = append(applied, name)
	}
	return applied, nil
}
