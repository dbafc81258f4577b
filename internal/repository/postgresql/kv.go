package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/pkg/kvstore"
	"github.com/jackc/pgx/v5"
)

// kvStoreImpl keeps each blob as one row of kv_store. Values are opaque to
// the database; no relational schema is derived from them.
type kvStoreImpl struct {
	db database.Querier
}

func NewKVStore(db database.Querier) kvstore.Store {
	return &kvStoreImpl{db: db}
}

// EnsureKVSchema creates the kv_store table when it does not exist.
func EnsureKVSchema(ctx context.Context, db database.Querier) error {
	query := `
		CREATE TABLE IF NOT EXISTS kv_store (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create kv_store table: %w", err)
	}
	return nil
}

// Get implements kvstore.Store.
func (s *kvStoreImpl) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM kv_store WHERE key = $1`

	var value []byte
	err := s.db.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, kvstore.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return value, nil
}

// Put implements kvstore.Store.
func (s *kvStoreImpl) Put(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := s.db.Exec(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("failed to put key %s: %w", key, err)
	}
	return nil
}
