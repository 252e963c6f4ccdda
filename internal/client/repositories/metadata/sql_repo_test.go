package metadata

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/jobly/internal/common"
	"github.com/dmitrijs2005/jobly/internal/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func newSQLite(t *testing.T) (*SQLRepository, *sql.DB) {
	t.Helper()
	db := setupDB(t)
	return NewSQLRepository(db, dbx.DialectSQLite), db
}

func TestSetAndGet_InsertThenGet(t *testing.T) {
	r, _ := newSQLite(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "joblyToken", `"abc.def.ghi"`))

	v, err := r.Get(ctx, "joblyToken")
	require.NoError(t, err)
	require.Equal(t, `"abc.def.ghi"`, v)
}

func TestGet_NotExists_ReturnsNotFound(t *testing.T) {
	r, _ := newSQLite(t)

	v, err := r.Get(context.Background(), "absent")
	require.ErrorIs(t, err, common.ErrorNotFound)
	require.Empty(t, v)
}

func TestSet_UpsertOverwritesValue(t *testing.T) {
	r, _ := newSQLite(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", "old"))
	require.NoError(t, r.Set(ctx, "k", "new"))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "new", v)
}

func TestDelete_RemovesKey_AndIsIdempotent(t *testing.T) {
	r, _ := newSQLite(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "x", "1"))
	require.NoError(t, r.Delete(ctx, "x"))

	_, err := r.Get(ctx, "x")
	require.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, r.Delete(ctx, "x"))
}

func TestClosedDB_ErrorsWrapped(t *testing.T) {
	r, db := newSQLite(t)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := r.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get metadata[k]")
	require.NotErrorIs(t, err, common.ErrorNotFound)

	require.ErrorContains(t, r.Set(ctx, "k", "v"), "failed to set metadata[k]")
	require.ErrorContains(t, r.Delete(ctx, "k"), "failed to delete metadata[k]")
}

func newPostgresMock(t *testing.T) (*SQLRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLRepository(db, dbx.DialectPostgres), mock
}

func TestPostgres_UsesNumberedPlaceholders(t *testing.T) {
	r, mock := newPostgresMock(t)
	ctx := context.Background()

	mock.ExpectExec(`(?s)INSERT\s+INTO\s+metadata\s*\(key,\s*value\)\s*VALUES\s*\(\$1,\s*\$2\)\s*ON\s+CONFLICT`).
		WithArgs("joblyToken", `"tok"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM metadata WHERE key = $1`)).
		WithArgs("joblyToken").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`"tok"`))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM metadata WHERE key = $1`)).
		WithArgs("joblyToken").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.Set(ctx, "joblyToken", `"tok"`))
	v, err := r.Get(ctx, "joblyToken")
	require.NoError(t, err)
	assert.Equal(t, `"tok"`, v)
	require.NoError(t, r.Delete(ctx, "joblyToken"))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_GetScanError(t *testing.T) {
	r, mock := newPostgresMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM metadata WHERE key = $1`)).
		WithArgs("joblyToken").
		WillReturnError(errors.New("connection reset"))

	_, err := r.Get(context.Background(), "joblyToken")
	require.ErrorContains(t, err, "failed to get metadata[joblyToken]")
	require.NotErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
