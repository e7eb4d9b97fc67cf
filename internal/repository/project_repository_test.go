package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB opens a gorm connection backed by sqlmock so query shapes can be
// asserted without a running database.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, mock
}

func TestProjectRepository_CountOwnedBy(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "projects" WHERE owner_id = $1`)).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountOwnedBy(7)
	require.NoError(t, err)
	require.EqualValues(t, 4, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_CountContributedBy(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "project_contributors" WHERE user_id = $1`)).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountContributedBy(7)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_CountContributors(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "project_contributors" WHERE project_id = $1`)).
		WithArgs(uint64(12)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountContributors(12)
	require.NoError(t, err)
	require.EqualValues(t, 3, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_ListOpen_QueryShape(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	// The open filter excludes completed projects and computes free seats
	// from the contributor rows, not from a cached counter.
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "projects" WHERE completed = $1 AND ((SELECT COUNT(*) FROM project_contributors pc WHERE pc.project_id = projects.id) < projects.maximum_collaborators) ORDER BY created_at DESC`)).
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner_id", "maximum_collaborators", "completed"}).
			AddRow(1, "open project", 7, 3, false))

	// Owner preload fires once for the returned rows
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(7, "owner"))

	projects, err := repo.ListOpen()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, "open project", projects[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}
