package savestore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/logger"
)

// Store is a durable key-value store for serialised snapshots.
// Load returns domain.ErrSaveNotFound when the key has never been saved.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// Options selects and configures a backend
type Options struct {
	Backend  string
	Path     string // sqlite database file or directory for the file backend
	Compress bool   // zstd, file backend only

	ConnString  string
	MaxConns    int
	MaxConnIdle time.Duration
	MaxConnLife time.Duration
}

// Open creates the store for opts.Backend and applies pending migrations
func Open(ctx context.Context, opts Options) (Store, error) {
	var (
		store Store
		err   error
	)
	switch strings.ToLower(opts.Backend) {
	case BackendSQLite:
		store, err = OpenSQLite(ctx, opts.Path)
	case BackendPostgres:
		store, err = OpenPostgres(ctx, opts.ConnString, opts.MaxConns, opts.MaxConnIdle, opts.MaxConnLife)
	case BackendFile:
		store, err = OpenFile(opts.Path, opts.Compress)
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownBackend, opts.Backend)
	}
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgStoreOpened, "backend", opts.Backend)
	return store, nil
}

func validateKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgInvalidKey, key)
	}
	return nil
}
