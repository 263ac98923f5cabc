package storage

import (
	"fmt"
	"strings"
)

// Dialect hides the SQL differences between SQLite and PostgreSQL.
type Dialect interface {
	// DriverName is passed to sql.Open.
	DriverName() string
	// Placeholder returns the parameter placeholder for a 1-indexed position.
	Placeholder(position int) string
	// SupportsLastInsertID reports whether Result.LastInsertId works.
	SupportsLastInsertID() bool
	// ReturningClause is appended to INSERTs when LastInsertId is unavailable.
	ReturningClause(column string) string
	// PrimaryKey is the column definition of an auto-incrementing id.
	PrimaryKey() string
	// InitStatements run once after connecting.
	InitStatements() []string
}

// DialectType identifies a dialect.
type DialectType string

const (
	DialectSQLite   DialectType = "sqlite"
	DialectPostgres DialectType = "postgres"
)

// NewDialect returns the dialect for t. Unknown types get SQLite.
func NewDialect(t DialectType) Dialect {
	if t == DialectPostgres {
		return postgresDialect{}
	}
	return sqliteDialect{}
}

// DialectFor picks the dialect from a DSN: postgres:// and postgresql:// URLs
// select PostgreSQL, anything else is a SQLite file path.
func DialectFor(dsn string) DialectType {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

type sqliteDialect struct{}

func (sqliteDialect) DriverName() string { return "sqlite" }
func (sqliteDialect) Placeholder(int) string { return "?" }
func (sqliteDialect) SupportsLastInsertID() bool { return true }
func (sqliteDialect) ReturningClause(string) string { return "" }
func (sqliteDialect) PrimaryKey() string { return "INTEGER PRIMARY KEY AUTOINCREMENT" }
func (sqliteDialect) InitStatements() []string {
	return []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
}

type postgresDialect struct{}

func (postgresDialect) DriverName() string { return "postgres" }
func (postgresDialect) Placeholder(position int) string { return fmt.Sprintf("$%d", position) }
func (postgresDialect) SupportsLastInsertID() bool { return false }
func (postgresDialect) ReturningClause(column string) string { return " RETURNING " + column }
func (postgresDialect) PrimaryKey() string { return "BIGSERIAL PRIMARY KEY" }
func (postgresDialect) InitStatements() []string { return nil }
