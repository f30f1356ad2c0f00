package testhelpers

import (
	"github.com/commute-map/internal/repository/postgres"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewCacheStoreForTest creates a cache store with test database and logger
func NewCacheStoreForTest(db *sqlx.DB, logger *zap.Logger) *postgres.CacheStore {
	return postgres.NewCacheStore(NewDBForTest(db, logger))
}
