package repo

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/topraga-donus/backend/internal/domain"
)

// TableRepo is the generic access path for the admin console: every tab maps
// to one table, and the console works on raw rows rather than typed records
// so that one code path serves the whole open set of resources.
//
// Table and column names are always taken from the tab registry, never from
// request input; they are still sanitized before interpolation.
type TableRepo interface {
	// List selects all columns from table ordered descending by orderBy.
	// A missing relation surfaces as domain.ErrTableMissing.
	List(ctx context.Context, table, orderBy string) ([]map[string]any, error)

	// Insert adds one row built from the given field map. DB-generated
	// columns (id, created_at) must not be present in fields.
	Insert(ctx context.Context, table string, fields map[string]any) error

	// Delete removes the row with the given id.
	// Returns domain.ErrNotFound when no row matched.
	Delete(ctx context.Context, table string, id uuid.UUID) error
}

type pgTableRepo struct {
	db db
}

// NewTableRepo constructs a TableRepo backed by the provided db connection.
func NewTableRepo(db db) TableRepo {
	return &pgTableRepo{db: db}
}

func (r *pgTableRepo) List(ctx context.Context, table, orderBy string) ([]map[string]any, error) {
	q := fmt.Sprintf(`SELECT * FROM %s ORDER BY %s DESC`,
		pgx.Identifier{table}.Sanitize(), pgx.Identifier{orderBy}.Sanitize())

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TableRepo.List %s: %w", table, classify(err))
	}

	raw, err := collectRaw(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.TableRepo.List %s: %w", table, err)
	}

	for _, row := range raw {
		for k, v := range row {
			row[k] = jsonSafe(v)
		}
	}
	return raw, nil
}

func (r *pgTableRepo) Insert(ctx context.Context, table string, fields map[string]any) error {
	cols := slices.Sorted(maps.Keys(fields))

	quoted := make([]string, len(cols))
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		quoted[i] = pgx.Identifier{col}.Sanitize()
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = fields[col]
	}

	q := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		pgx.Identifier{table}.Sanitize(),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "))

	if _, err := r.db.Exec(ctx, q, args...); err != nil {
		return fmt.Errorf("repo.TableRepo.Insert %s: %w", table, classify(err))
	}
	return nil
}

func (r *pgTableRepo) Delete(ctx context.Context, table string, id uuid.UUID) error {
	q := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, pgx.Identifier{table}.Sanitize())

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("repo.TableRepo.Delete %s: %w", table, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TableRepo.Delete %s: %w", table, domain.ErrNotFound)
	}
	return nil
}

// jsonSafe rewrites driver-native values into shapes that marshal cleanly:
// uuid byte arrays as their canonical string form, timestamps as RFC 3339.
func jsonSafe(v any) any {
	switch val := v.(type) {
	case [16]byte:
		return uuid.UUID(val).String()
	case uuid.UUID:
		return val.String()
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return v
	}
}
