package postgres

import (
	"context"
	"database/sql"

	"github.com/rotisserie/eris"

	"riskmai/internal/model"
	"riskmai/internal/repository"
)

// CompanyPostgres is a PostgreSQL implementation of repository.CompanyRepository.
// Context entries live in company_contexts and are ordered by their BIGSERIAL position.
type CompanyPostgres struct {
	db *sql.DB
}

// NewCompanyPostgres creates a new CompanyPostgres repository.
func NewCompanyPostgres(db *sql.DB) *CompanyPostgres {
	return &CompanyPostgres{db: db}
}

var _ repository.CompanyRepository = (*CompanyPostgres)(nil)

// Create inserts the company row and its initial context entries in one transaction.
func (r *CompanyPostgres) Create(ctx context.Context, c *model.Company) (*model.Company, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, eris.Wrap(err, "begin create company")
	}
	defer func() { _ = tx.Rollback() }()

	const q = `
		INSERT INTO companies (id, name, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, name, created_at
	`
	out := model.Company{Context: make([]string, 0, len(c.Context))}
	if err := tx.QueryRowContext(ctx, q, c.ID, c.Name, c.CreatedAt).Scan(&out.ID, &out.Name, &out.CreatedAt); err != nil {
		return nil, eris.Wrap(err, "insert company")
	}

	const qCtx = `INSERT INTO company_contexts (company_id, body) VALUES ($1, $2)`
	for _, body := range c.Context {
		if _, err := tx.ExecContext(ctx, qCtx, out.ID, body); err != nil {
			return nil, eris.Wrap(err, "insert company context")
		}
		out.Context = append(out.Context, body)
	}

	if err := tx.Commit(); err != nil {
		return nil, eris.Wrap(err, "commit create company")
	}
	return &out, nil
}

// AppendContext inserts a context entry only if the company exists.
func (r *CompanyPostgres) AppendContext(ctx context.Context, companyID, body string) error {
	const q = `
		INSERT INTO company_contexts (company_id, body)
		SELECT id, $2 FROM companies WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, q, companyID, body)
	if err != nil {
		return eris.Wrap(err, "append company context")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "append company context rows affected")
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// FindByID fetches a company and its ordered context entries.
func (r *CompanyPostgres) FindByID(ctx context.Context, id string) (*model.Company, error) {
	const q = `
		SELECT id, name, created_at
		FROM companies
		WHERE id = $1
	`
	var c model.Company
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
		return nil, err
	}

	const qCtx = `
		SELECT body
		FROM company_contexts
		WHERE company_id = $1
		ORDER BY position ASC
	`
	rows, err := r.db.QueryContext(ctx, qCtx, id)
	if err != nil {
		return nil, eris.Wrap(err, "query company context")
	}
	defer rows.Close()

	c.Context = make([]string, 0)
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, eris.Wrap(err, "scan company context")
		}
		c.Context = append(c.Context, body)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "iterate company context")
	}
	return &c, nil
}

// List returns all companies as summaries.
func (r *CompanyPostgres) List(ctx context.Context) ([]model.CompanySummary, error) {
	const q = `
		SELECT id, name
		FROM companies
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, eris.Wrap(err, "list companies")
	}
	defer rows.Close()

	items := make([]model.CompanySummary, 0)
	for rows.Next() {
		var s model.CompanySummary
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, eris.Wrap(err, "scan company")
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "iterate companies")
	}
	return items, nil
}
