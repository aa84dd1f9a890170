package savestore

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	goosedb "github.com/pressly/goose/v3/database"

	"github.com/osse101/ArcFarmia_Go/internal/logger"
)

//go:embed migrations
var migrationFiles embed.FS

func migrate(ctx context.Context, db *sql.DB, dialect goosedb.Dialect, dir string) error {
	fsys, err := fs.Sub(migrationFiles, "migrations/"+dir)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMigrationFailed, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMigrationFailed, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMigrationFailed, err)
	}

	if len(results) > 0 {
		logger.FromContext(ctx).Info(LogMsgMigrated, "dialect", string(dialect), "applied", len(results))
	}
	return nil
}
