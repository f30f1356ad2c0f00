package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const cacheSchema = `
CREATE TABLE IF NOT EXISTS cache_entries (
	key        TEXT PRIMARY KEY,
	value      BYTEA NOT NULL,
	expires_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS cache_entries_expires_at_idx ON cache_entries (expires_at);
`

// CacheStore - provider-response cache kept in the cache_entries table.
// Expired rows are invisible to reads and removed by PurgeExpired.
type CacheStore struct {
	db     *DB
	logger *zap.Logger
	now    func() time.Time
}

// NewCacheStore creates a Postgres-backed cache store
func NewCacheStore(db *DB) *CacheStore {
	return &CacheStore{
		db:     db,
		logger: db.logger,
		now:    time.Now,
	}
}

// Migrate creates the cache table when missing
func (s *CacheStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, cacheSchema); err != nil {
		return fmt.Errorf("migrate cache_entries: %w", err)
	}
	return nil
}

func (s *CacheStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.GetContext(ctx, &value,
		`SELECT value FROM cache_entries WHERE key = $1 AND expires_at > $2`,
		key, s.now())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // Cache miss
	}
	if err != nil {
		s.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	s.logger.Debug("Cache hit", zap.String("key", key))
	return value, nil
}

func (s *CacheStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cache_entries (key, value, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at`,
		key, value, s.now().Add(ttl))
	if err != nil {
		s.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	s.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (s *CacheStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM cache_entries WHERE key = $1`, key); err != nil {
		s.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}
	return nil
}

func (s *CacheStore) Exists(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM cache_entries WHERE key = $1 AND expires_at > $2)`,
		key, s.now())
	if err != nil {
		s.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}
	return exists, nil
}

// PurgeExpired deletes expired rows and returns how many were removed
func (s *CacheStore) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM cache_entries WHERE expires_at <= $1`, s.now())
	if err != nil {
		return 0, fmt.Errorf("purge cache_entries: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge cache_entries: %w", err)
	}
	return n, nil
}
