package metadata

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/carlog/internal/client/storage"
	"github.com/dmitrijs2005/carlog/internal/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLiteRepository_SetGetOverwrite(t *testing.T) {
	ctx := context.Background()
	r := SQLite(openDB(t))

	v, err := r.Get(ctx, "access_token")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, r.Set(ctx, "access_token", []byte("a1")))
	require.NoError(t, r.Set(ctx, "access_token", []byte("a2")))

	v, err = r.Get(ctx, "access_token")
	require.NoError(t, err)
	assert.Equal(t, []byte("a2"), v)
}

func TestSQLiteRepository_DeleteAndList(t *testing.T) {
	ctx := context.Background()
	r := SQLite(openDB(t))

	for k, v := range map[string]string{"access_token": "a", "refresh_token": "r", "token_salt": "s"} {
		require.NoError(t, r.Set(ctx, k, []byte(v)))
	}

	require.NoError(t, r.Delete(ctx, "access_token", "refresh_token", "missing"))

	pairs, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"token_salt": []byte("s")}, pairs)
}

func TestSQLiteRepository_WritesInsideTransactionRollBack(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	boom := errors.New("boom")

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := SQLite(tx).Set(ctx, "expires_at", []byte("1")); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	pairs, err := SQLite(db).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestSQLiteRepository_WrapsDriverErrors(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	driverErr := errors.New("disk I/O error")
	mock.ExpectQuery(`SELECT value FROM metadata`).WillReturnError(driverErr)
	mock.ExpectExec(`INSERT INTO metadata`).WillReturnError(driverErr)
	mock.ExpectExec(`DELETE FROM metadata`).WillReturnError(driverErr)
	mock.ExpectQuery(`SELECT key, value FROM metadata`).WillReturnError(driverErr)

	r := NewSQLiteRepository(db)

	_, err = r.Get(ctx, "k")
	assert.ErrorIs(t, err, driverErr)
	assert.ErrorContains(t, err, `get metadata "k"`)

	err = r.Set(ctx, "k", []byte("v"))
	assert.ErrorIs(t, err, driverErr)
	assert.ErrorContains(t, err, `set metadata "k"`)

	err = r.Delete(ctx, "k")
	assert.ErrorIs(t, err, driverErr)
	assert.ErrorContains(t, err, `delete metadata "k"`)

	_, err = r.List(ctx)
	assert.ErrorIs(t, err, driverErr)

	require.NoError(t, mock.ExpectationsWereMet())
}
