package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/jobly/internal/client/migrations"
	"github.com/dmitrijs2005/jobly/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/jobly/internal/dbx"
	"github.com/dmitrijs2005/jobly/internal/filex"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// DB is an open client database together with its SQL dialect.
type DB struct {
	*sql.DB
	Dialect dbx.Dialect
}

// Metadata returns the key/value repository bound to this database.
func (d *DB) Metadata() metadata.Repository {
	return metadata.NewSQLRepository(d.DB, d.Dialect)
}

// RunMigrations applies the embedded goose migrations for the given dialect.
func RunMigrations(ctx context.Context, db *sql.DB, dialect dbx.Dialect) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open connects to the client database and brings its schema up to date.
// driver is "sqlite" (file path or ":memory:" DSN) or "pgx" (PostgreSQL URL).
func Open(ctx context.Context, driver, dsn string) (*DB, error) {
	dialect := dbx.DialectForDriver(driver)
	if dialect == dbx.DialectSQLite {
		if err := filex.EnsureParentDir(filex.SQLiteFilePath(dsn)); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	if dialect == dbx.DialectSQLite {
		// a single connection keeps ":memory:" databases shared and avoids SQLITE_BUSY
		db.SetMaxOpenConns(1)
	}

	if err := RunMigrations(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s database: %w", driver, err)
	}

	return &DB{DB: db, Dialect: dialect}, nil
}
