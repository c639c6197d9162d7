package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"

	"riskmai/internal/model"
	"riskmai/internal/repository"
)

// AnalysisPostgres is a PostgreSQL implementation of repository.AnalysisRepository.
// Payload and result are stored as JSONB.
type AnalysisPostgres struct {
	db *sql.DB
}

// NewAnalysisPostgres creates a new AnalysisPostgres repository.
func NewAnalysisPostgres(db *sql.DB) *AnalysisPostgres {
	return &AnalysisPostgres{db: db}
}

var _ repository.AnalysisRepository = (*AnalysisPostgres)(nil)

const analysisColumns = `id, company_id, analysis_type, payload, result, timestamp, created_at`

func scanAnalysis(s rowScanner) (*model.AnalysisRecord, error) {
	var (
		rec             model.AnalysisRecord
		kind            string
		payload, result []byte
	)
	if err := s.Scan(&rec.ID, &rec.CompanyID, &kind, &payload, &result, &rec.Timestamp, &rec.CreatedAt); err != nil {
		return nil, err
	}
	rec.AnalysisType = model.AnalysisType(kind)
	rec.Payload = append([]byte(nil), payload...)
	rec.Result = append([]byte(nil), result...)
	return &rec, nil
}

// Create inserts an analysis record and returns it with the store assigned created_at.
func (r *AnalysisPostgres) Create(ctx context.Context, rec *model.AnalysisRecord) (*model.AnalysisRecord, error) {
	const q = `
		INSERT INTO analyses (id, company_id, analysis_type, payload, result, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + analysisColumns
	row := r.db.QueryRowContext(ctx, q,
		rec.ID,
		rec.CompanyID,
		string(rec.AnalysisType),
		[]byte(rec.Payload),
		[]byte(rec.Result),
		rec.Timestamp,
	)
	out, err := scanAnalysis(row)
	if err != nil {
		return nil, eris.Wrap(err, "insert analysis")
	}
	return out, nil
}

// FindByID fetches one analysis scoped to its company.
func (r *AnalysisPostgres) FindByID(ctx context.Context, companyID, id string) (*model.AnalysisRecord, error) {
	const q = `SELECT ` + analysisColumns + ` FROM analyses WHERE company_id = $1 AND id = $2`
	return scanAnalysis(r.db.QueryRowContext(ctx, q, companyID, id))
}

// List applies the filter and returns at most f.Limit records, newest first.
func (r *AnalysisPostgres) List(ctx context.Context, f repository.AnalysisFilter) ([]model.AnalysisRecord, error) {
	conds := []string{"company_id = $1"}
	args := []any{f.CompanyID}
	if f.AnalysisType != "" {
		args = append(args, string(f.AnalysisType))
		conds = append(conds, fmt.Sprintf("analysis_type = $%d", len(args)))
	}
	if f.AnalysisID != "" {
		args = append(args, f.AnalysisID)
		conds = append(conds, fmt.Sprintf("id = $%d", len(args)))
	}
	args = append(args, f.Limit)

	q := `SELECT ` + analysisColumns + ` FROM analyses WHERE ` + strings.Join(conds, " AND ") +
		fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d`, len(args))

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, eris.Wrap(err, "list analyses")
	}
	defer rows.Close()

	items := make([]model.AnalysisRecord, 0)
	for rows.Next() {
		rec, err := scanAnalysis(rows)
		if err != nil {
			return nil, eris.Wrap(err, "scan analysis")
		}
		items = append(items, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "iterate analyses")
	}
	return items, nil
}
