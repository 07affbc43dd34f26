package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topraga-donus/backend/internal/domain"
	"github.com/topraga-donus/backend/internal/repo"
)

func TestTableRepo_List_ReturnsJSONSafeRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	created := time.Date(2025, 5, 10, 9, 30, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{"id", "name", "created_at"}).
		AddRow(id, "Cam Konteyneri", created)
	mock.ExpectQuery(`SELECT \* FROM "stations" ORDER BY "created_at" DESC`).WillReturnRows(rows)

	got, err := repo.NewTableRepo(mock).List(context.Background(), "stations", "created_at")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, id.String(), got[0]["id"], "uuid values serialize as strings")
	assert.Equal(t, "2025-05-10T09:30:00Z", got[0]["created_at"])
	assert.Equal(t, "Cam Konteyneri", got[0]["name"])
}

func TestTableRepo_List_ClassifiesBothTableMissingCodes(t *testing.T) {
	for _, code := range []string{"42P01", "3F000"} {
		t.Run(code, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			mock.ExpectQuery(`SELECT \* FROM "ghosts"`).
				WillReturnError(&pgconn.PgError{Code: code, Message: "does not exist"})

			_, err = repo.NewTableRepo(mock).List(context.Background(), "ghosts", "created_at")

			assert.ErrorIs(t, err, domain.ErrTableMissing)
		})
	}
}

// TestTableRepo_List_ClassifiesDeferredRowError covers exec modes that defer
// statement errors to result reading: a missing relation reported through
// rows.Err() must still surface as the table-missing state.
func TestTableRepo_List_ClassifiesDeferredRowError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"id"}).
		AddRow(uuid.New()).
		RowError(0, &pgconn.PgError{Code: "42P01", Message: "does not exist"})
	mock.ExpectQuery(`SELECT \* FROM "ghosts" ORDER BY "created_at" DESC`).WillReturnRows(rows)

	_, err = repo.NewTableRepo(mock).List(context.Background(), "ghosts", "created_at")

	assert.ErrorIs(t, err, domain.ErrTableMissing)
}

func TestTableRepo_List_OtherCodesAreNotTableMissing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT \* FROM "stations"`).
		WillReturnError(&pgconn.PgError{Code: "42501", Message: "permission denied"})

	_, err = repo.NewTableRepo(mock).List(context.Background(), "stations", "created_at")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrTableMissing)
}

func TestTableRepo_Insert_BuildsColumnListInSortedOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO "waste_items" \("category", "compostable", "name"\) VALUES \(\$1, \$2, \$3\)`).
		WithArgs("green", true, "Muz kabuğu").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.NewTableRepo(mock).Insert(context.Background(), "waste_items", map[string]any{
		"name":        "Muz kabuğu",
		"category":    "green",
		"compostable": true,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableRepo_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM "suggestions" WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err = repo.NewTableRepo(mock).Delete(context.Background(), "suggestions", id)

	require.NoError(t, err)
}

func TestTableRepo_Delete_NoRowIsNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM "suggestions"`).
		WithArgs(pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err = repo.NewTableRepo(mock).Delete(context.Background(), "suggestions", uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBlogRepo_ClearFeatured(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`UPDATE blog_posts SET featured = false WHERE featured`).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	cleared, err := repo.NewBlogRepo(mock).ClearFeatured(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), cleared)
}
