package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskmai/internal/model"
)

func TestCompanyPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewCompanyPostgres(db)
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("with initial context", func(t *testing.T) {
		in := &model.Company{ID: "c-1", Name: "Acme", Context: []string{"SaaS vendor"}, CreatedAt: now}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO companies").
			WithArgs(in.ID, in.Name, in.CreatedAt).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).AddRow(in.ID, in.Name, now))
		mock.ExpectExec("INSERT INTO company_contexts").
			WithArgs(in.ID, "SaaS vendor").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		out, err := repo.Create(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, "c-1", out.ID)
		assert.Equal(t, []string{"SaaS vendor"}, out.Context)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("context insert failure rolls back", func(t *testing.T) {
		in := &model.Company{ID: "c-2", Name: "Beta", Context: []string{"x"}, CreatedAt: now}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO companies").
			WithArgs(in.ID, in.Name, in.CreatedAt).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).AddRow(in.ID, in.Name, now))
		mock.ExpectExec("INSERT INTO company_contexts").
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		out, err := repo.Create(ctx, in)

		assert.Nil(t, out)
		assert.ErrorContains(t, err, "disk full")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCompanyPostgres_AppendContext(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCompanyPostgres(db)
	ctx := context.Background()

	t.Run("appended", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO company_contexts (.+) SELECT id, (.+) FROM companies WHERE id = ?").
			WithArgs("c-1", "new note").
			WillReturnResult(sqlmock.NewResult(2, 1))

		assert.NoError(t, repo.AppendContext(ctx, "c-1", "new note"))
	})

	t.Run("unknown company", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO company_contexts").
			WithArgs("missing", "note").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.AppendContext(ctx, "missing", "note")
		assert.True(t, errors.Is(err, sql.ErrNoRows))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCompanyPostgres(db)
	ctx := context.Background()

	t.Run("found with ordered context", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM companies WHERE id = ?").
			WithArgs("c-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).AddRow("c-1", "Acme", time.Now()))
		mock.ExpectQuery("SELECT body FROM company_contexts WHERE company_id = (.+) ORDER BY position ASC").
			WithArgs("c-1").
			WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow("first").AddRow("second"))

		c, err := repo.FindByID(ctx, "c-1")

		require.NoError(t, err)
		assert.Equal(t, "Acme", c.Name)
		assert.Equal(t, []string{"first", "second"}, c.Context)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM companies WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		c, err := repo.FindByID(ctx, "missing")

		assert.Nil(t, c)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name FROM companies ORDER BY").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("c-1", "Acme").AddRow("c-2", "Beta"))

	items, err := NewCompanyPostgres(db).List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []model.CompanySummary{{ID: "c-1", Name: "Acme"}, {ID: "c-2", Name: "Beta"}}, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}
