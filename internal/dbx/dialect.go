package dbx

import (
	"strconv"
	"strings"
)

// Dialect selects SQL placeholder style and the goose dialect name.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "postgres"
)

// DialectForDriver maps a database/sql driver name to its Dialect.
// Unknown drivers fall back to SQLite.
func DialectForDriver(driver string) Dialect {
	switch driver {
	case "pgx", "postgres", "postgresql":
		return DialectPostgres
	default:
		return DialectSQLite
	}
}

// Rebind rewrites '?' placeholders into '$1, $2, ...' for PostgreSQL.
// Queries for SQLite are returned unchanged. Question marks inside single
// quoted literals are left alone.
func Rebind(d Dialect, query string) string {
	if d != DialectPostgres {
		return query
	}

	var (
		b       strings.Builder
		n       int
		inQuote bool
	)
	b.Grow(len(query) + 8)

	for _, r := range query {
		switch {
		case r == '\'':
			inQuote = !inQuote
			b.WriteRune(r)
		case r == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
