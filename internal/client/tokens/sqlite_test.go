package tokens

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/carlog/internal/client/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteBackend_PersistsAcrossStores(t *testing.T) {
	ctx := context.Background()
	db, err := storage.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewStore(NewSQLiteBackend(db))
	require.NoError(t, s.SetTokens(ctx, "acc", "ref", 3600))

	reopened := NewStore(NewSQLiteBackend(db))
	require.NoError(t, reopened.Init(ctx))
	a, ok := reopened.AccessToken()
	require.True(t, ok)
	assert.Equal(t, "acc", a)

	var raw string
	require.NoError(t, db.QueryRow(`SELECT value FROM metadata WHERE key = ?`, AccessTokenKey).Scan(&raw))
	assert.Equal(t, "acc", raw)

	require.NoError(t, reopened.ClearTokens(ctx))
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM metadata`).Scan(&n))
	assert.Zero(t, n)
}

func TestSealedSQLiteBackend_EncryptsAtRest(t *testing.T) {
	ctx := context.Background()
	db, err := storage.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	b, err := NewSealedSQLiteBackend(ctx, db, []byte("passphrase"))
	require.NoError(t, err)
	require.NoError(t, NewStore(b).SetTokens(ctx, "acc", "ref", 3600))

	var raw []byte
	require.NoError(t, db.QueryRow(`SELECT value FROM metadata WHERE key = ?`, AccessTokenKey).Scan(&raw))
	assert.NotContains(t, string(raw), "acc")

	same, err := NewSealedSQLiteBackend(ctx, db, []byte("passphrase"))
	require.NoError(t, err)
	s := NewStore(same)
	require.NoError(t, s.Init(ctx))
	a, _ := s.AccessToken()
	assert.Equal(t, "acc", a)

	wrong, err := NewSealedSQLiteBackend(ctx, db, []byte("other"))
	require.NoError(t, err)
	require.Error(t, NewStore(wrong).Init(ctx))
}

func TestSQLiteBackend_SaveRollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.MatchExpectationsInOrder(false)
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO metadata`).WillReturnError(errors.New("constraint"))
	mock.ExpectRollback()

	err = NewSQLiteBackend(db).Save(context.Background(), map[string]string{AccessTokenKey: "a"})
	require.ErrorContains(t, err, "constraint")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteBackend_ClearDeletesAllKeysInOneTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	for _, k := range Keys {
		mock.ExpectExec(`DELETE FROM metadata WHERE key = \?`).WithArgs(k).WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, NewSQLiteBackend(db).Clear(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteBackend_LoadReadsTableOnceAndKeepsRecordKeys(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"key", "value"}).
		AddRow(AccessTokenKey, []byte("acc")).
		AddRow(RefreshTokenKey, []byte("ref")).
		AddRow(ExpiresAtKey, []byte("1700000000000")).
		AddRow(SaltKey, []byte{0x01, 0x02})
	mock.ExpectQuery(`SELECT key, value FROM metadata`).WillReturnRows(rows)

	values, err := NewSQLiteBackend(db).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		AccessTokenKey:  "acc",
		RefreshTokenKey: "ref",
		ExpiresAtKey:    "1700000000000",
	}, values)
	require.NoError(t, mock.ExpectationsWereMet())
}
