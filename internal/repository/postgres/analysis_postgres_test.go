package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskmai/internal/model"
	"riskmai/internal/repository"
)

var analysisRowColumns = []string{"id", "company_id", "analysis_type", "payload", "result", "timestamp", "created_at"}

func TestAnalysisPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rec := &model.AnalysisRecord{
		ID:           "a-1",
		CompanyID:    "c-1",
		AnalysisType: model.AnalysisGeneral,
		Payload:      json.RawMessage(`{"company_info":{}}`),
		Result:       json.RawMessage(`{"ai_confidence":0}`),
		Timestamp:    "2024-01-01T00:00:00Z",
	}
	created := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO analyses").
		WithArgs(rec.ID, rec.CompanyID, "general", []byte(rec.Payload), []byte(rec.Result), rec.Timestamp).
		WillReturnRows(sqlmock.NewRows(analysisRowColumns).
			AddRow(rec.ID, rec.CompanyID, "general", []byte(rec.Payload), []byte(rec.Result), rec.Timestamp, created))

	out, err := NewAnalysisPostgres(db).Create(context.Background(), rec)

	require.NoError(t, err)
	assert.Equal(t, model.AnalysisGeneral, out.AnalysisType)
	assert.JSONEq(t, `{"ai_confidence":0}`, string(out.Result))
	assert.Equal(t, created, out.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalysisPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAnalysisPostgres(db)

	mock.ExpectQuery("SELECT (.+) FROM analyses WHERE company_id = (.+) AND id = ?").
		WithArgs("c-1", "a-1").
		WillReturnRows(sqlmock.NewRows(analysisRowColumns).
			AddRow("a-1", "c-1", "dynamic_risk", []byte(`{}`), []byte(`{"risk_analysis":{}}`), "ts", time.Now()))

	rec, err := repo.FindByID(context.Background(), "c-1", "a-1")
	require.NoError(t, err)
	assert.Equal(t, model.AnalysisDynamicRisk, rec.AnalysisType)

	mock.ExpectQuery("SELECT (.+) FROM analyses").
		WithArgs("c-1", "nope").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.FindByID(context.Background(), "c-1", "nope")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalysisPostgres_List(t *testing.T) {
	tests := []struct {
		name   string
		filter repository.AnalysisFilter
		query  string
		args   []driver.Value
	}{
		{
			name:   "company only",
			filter: repository.AnalysisFilter{CompanyID: "c-1", Limit: 10},
			query:  "WHERE company_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2",
			args:   []driver.Value{"c-1", 10},
		},
		{
			name:   "type filter",
			filter: repository.AnalysisFilter{CompanyID: "c-1", AnalysisType: model.AnalysisGeneral, Limit: 5},
			query:  "WHERE company_id = $1 AND analysis_type = $2 ORDER BY created_at DESC, id DESC LIMIT $3",
			args:   []driver.Value{"c-1", "general", 5},
		},
		{
			name:   "type and id filter",
			filter: repository.AnalysisFilter{CompanyID: "c-1", AnalysisType: model.AnalysisDynamicRisk, AnalysisID: "a-9", Limit: 1},
			query:  "WHERE company_id = $1 AND analysis_type = $2 AND id = $3 ORDER BY created_at DESC, id DESC LIMIT $4",
			args:   []driver.Value{"c-1", "dynamic_risk", "a-9", 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectQuery(regexp.QuoteMeta(tt.query)).
				WithArgs(tt.args...).
				WillReturnRows(sqlmock.NewRows(analysisRowColumns).
					AddRow("a-1", "c-1", "general", []byte(`{}`), []byte(`{}`), "ts", time.Now()))

			items, err := NewAnalysisPostgres(db).List(context.Background(), tt.filter)

			require.NoError(t, err)
			assert.Len(t, items, 1)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
