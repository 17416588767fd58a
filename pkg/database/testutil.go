package database

import (
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

// NewMockPool returns a pgxmock pool for repository tests. It satisfies
// DBTX, so repositories built against the interface accept it directly.
//
// pgxmock matches expected SQL as a regular expression with whitespace
// collapsed, which lets tests match multi-line queries with short
// patterns like "SELECT .+ FROM products". Finish each test with
// ExpectationsWereMet.
func NewMockPool() (pgxmock.PgxPoolIface, error) {
	return pgxmock.NewPool()
}
