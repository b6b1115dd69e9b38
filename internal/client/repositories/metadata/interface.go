// Package metadata is a small key/value repository over the local database's
// metadata table.
package metadata

import (
	"context"

	"github.com/dmitrijs2005/carlog/internal/dbx"
)

// Repository stores opaque values under string keys.
//
// Get returns (nil, nil) when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
}

// Factory binds a Repository to a connection or a transaction.
type Factory func(db dbx.DBTX) Repository

// SQLite is the Factory for SQLiteRepository.
func SQLite(db dbx.DBTX) Repository {
	return NewSQLiteRepository(db)
}
