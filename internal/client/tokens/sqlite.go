package tokens

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/carlog/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/carlog/internal/cryptox"
	"github.com/dmitrijs2005/carlog/internal/dbx"
)

// SaltKey holds the Argon2 salt of a sealed store.
const SaltKey = "token_salt"

// SQLiteBackend stores the record in the metadata table. All writes of a
// record happen in one transaction.
type SQLiteBackend struct {
	db     *sql.DB
	repo   metadata.Factory
	sealer *cryptox.Sealer
}

// NewSQLiteBackend stores values in plain text.
func NewSQLiteBackend(db *sql.DB) *SQLiteBackend {
	return &SQLiteBackend{db: db, repo: metadata.SQLite}
}

// NewSealedSQLiteBackend encrypts every value with a key derived from
// passphrase. The salt is created on first use and kept in the same table,
// so the same passphrase opens the store across runs.
func NewSealedSQLiteBackend(ctx context.Context, db *sql.DB, passphrase []byte) (*SQLiteBackend, error) {
	repo := metadata.SQLite(db)

	salt, err := repo.Get(ctx, SaltKey)
	if err != nil {
		return nil, err
	}
	if salt == nil {
		salt = cryptox.NewSalt()
		if err := repo.Set(ctx, SaltKey, salt); err != nil {
			return nil, err
		}
	}

	sealer, err := cryptox.NewSealer(cryptox.DeriveKey(passphrase, salt))
	if err != nil {
		return nil, err
	}
	return &SQLiteBackend{db: db, repo: metadata.SQLite, sealer: sealer}, nil
}

// Load reads the table once and keeps only the record's keys; the salt and
// any other metadata are skipped.
func (b *SQLiteBackend) Load(ctx context.Context) (map[string]string, error) {
	pairs, err := b.repo(b.db).List(ctx)
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(Keys))
	for _, k := range Keys {
		raw, ok := pairs[k]
		if !ok || raw == nil {
			continue
		}
		if b.sealer != nil {
			if raw, err = b.sealer.Open(raw); err != nil {
				return nil, fmt.Errorf("unseal %s: %w", k, err)
			}
		}
		values[k] = string(raw)
	}
	return values, nil
}

func (b *SQLiteBackend) Save(ctx context.Context, values map[string]string) error {
	return dbx.WithTx(ctx, b.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := b.repo(tx)
		for k, v := range values {
			raw := []byte(v)
			if b.sealer != nil {
				raw = b.sealer.Seal(raw)
			}
			if err := repo.Set(ctx, k, raw); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *SQLiteBackend) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, b.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return b.repo(tx).Delete(ctx, Keys...)
	})
}
