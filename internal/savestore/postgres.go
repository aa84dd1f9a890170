package savestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	goosedb "github.com/pressly/goose/v3/database"

	"github.com/osse101/ArcFarmia_Go/internal/database"
	"github.com/osse101/ArcFarmia_Go/internal/domain"
)

type postgresStore struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects through the shared pool helper and migrates the saves table
func OpenPostgres(ctx context.Context, connString string, maxConns int, maxIdle, maxLife time.Duration) (Store, error) {
	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:  connString,
		MaxConns:    maxConns,
		MaxConnIdle: maxIdle,
		MaxConnLife: maxLife,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenFailed, err)
	}
	return newPostgresStore(ctx, pool)
}

func newPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*postgresStore, error) {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := migrate(ctx, db, goosedb.DialectPostgres, BackendPostgres); err != nil {
		pool.Close()
		return nil, err
	}
	return &postgresStore{pool: pool}, nil
}

func (s *postgresStore) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, `SELECT data FROM saves WHERE key = $1`, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSaveNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadFailed, err)
	}
	return data, nil
}

func (s *postgresStore) Save(ctx context.Context, key string, data []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO saves (key, data, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		key, data)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteFailed, err)
	}
	return nil
}

func (s *postgresStore) Delete(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM saves WHERE key = $1`, key); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDeleteFailed, err)
	}
	return nil
}

func (s *postgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *postgresStore) Close() error {
	s.pool.Close()
	return nil
}
