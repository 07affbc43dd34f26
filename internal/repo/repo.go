// Package repo contains all database access logic for the Toprağa Dönüş API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping. Rows read for the
// alias-tolerant resources pass through the normalization step in normalize.go
// exactly once, at this boundary; alias resolution never leaks downstream.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/topraga-donus/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, and unit
// tests to pass a pgxmock pool.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// Table-missing classification. The hosted backend the front end originally
// talked to reported a missing relation under two codes (one Postgres-level,
// one from its API gateway); against Postgres directly those surface as
// undefined_table and invalid_schema_name.
const (
	codeUndefinedTable    = "42P01"
	codeInvalidSchemaName = "3F000"
)

// classify wraps err with domain.ErrTableMissing when the backend reports
// that the queried relation does not exist, and returns err unchanged
// otherwise. All repo query paths route their errors through it.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == codeUndefinedTable || pgErr.Code == codeInvalidSchemaName {
			return fmt.Errorf("%w: %s", domain.ErrTableMissing, pgErr.Message)
		}
	}
	return err
}

// collectRaw drains rows into one map per row, keyed by the column names the
// table actually has. This is the entry point for the alias-tolerant
// resources, whose historical tables disagree on column spelling.
//
// Errors are classified here too: some exec modes defer statement errors to
// result reading, so a missing relation can first show up in rows.Err()
// rather than in Query's return.
func collectRaw(rows pgx.Rows) ([]map[string]any, error) {
	defer rows.Close()

	var out []map[string]any
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, classify(err)
		}
		fields := rows.FieldDescriptions()
		row := make(map[string]any, len(fields))
		for i, fd := range fields {
			if i < len(values) {
				row[fd.Name] = values[i]
			}
		}
		out = append(out, row)
	}
	return out, classify(rows.Err())
}
