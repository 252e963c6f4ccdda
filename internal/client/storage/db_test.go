package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/jobly/internal/dbx"
	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestOpen_SQLiteFileCreatesSchema(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "jobly.db")

	db, err := Open(ctx, "sqlite", dsn)
	require.NoError(t, err)
	defer db.Close()

	require.Equal(t, dbx.DialectSQLite, db.Dialect)
	require.True(t, tableExists(t, db.DB, "goose_db_version"))
	require.True(t, tableExists(t, db.DB, "metadata"))
}

func TestOpen_ReopenIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "jobly.db")

	db, err := Open(ctx, "sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Metadata().Set(ctx, "joblyToken", `"t"`))
	require.NoError(t, db.Close())

	db, err = Open(ctx, "sqlite", dsn)
	require.NoError(t, err)
	defer db.Close()

	v, err := db.Metadata().Get(ctx, "joblyToken")
	require.NoError(t, err)
	require.Equal(t, `"t"`, v)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "nosuchdriver", "x")
	require.Error(t, err)
}
