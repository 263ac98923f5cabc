package storage

import "strings"

// QueryBuilder rewrites queries written with ? placeholders for a dialect.
type QueryBuilder struct {
	dialect Dialect
}

// NewQueryBuilder creates a QueryBuilder for dialect.
func NewQueryBuilder(dialect Dialect) *QueryBuilder {
	return &QueryBuilder{dialect: dialect}
}

// Build converts ? placeholders to the dialect's form.
//
//	input:    "SELECT * FROM floors WHERE run_id = ? AND depth = ?"
//	SQLite:   unchanged
//	Postgres: "SELECT * FROM floors WHERE run_id = $1 AND depth = $2"
func (qb *QueryBuilder) Build(query string) string {
	if qb.dialect.Placeholder(1) == "?" {
		return query
	}

	var sb strings.Builder
	sb.Grow(len(query) + 8)
	position := 1
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			sb.WriteString(qb.dialect.Placeholder(position))
			position++
			continue
		}
		sb.WriteByte(query[i])
	}
	return sb.String()
}

// BuildWithReturning is Build plus a RETURNING clause when the dialect needs
// one to report the inserted id.
func (qb *QueryBuilder) BuildWithReturning(query, column string) string {
	q := qb.Build(query)
	if !qb.dialect.SupportsLastInsertID() {
		q += qb.dialect.ReturningClause(column)
	}
	return q
}
