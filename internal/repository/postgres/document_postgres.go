package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/rotisserie/eris"

	"riskmai/internal/model"
	"riskmai/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, company_id, file_name, content, file_type, blob_url, storage_key, size, content_type, email_meta, uploaded_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(s rowScanner) (*model.Document, error) {
	var (
		d    model.Document
		meta []byte
	)
	if err := s.Scan(
		&d.ID,
		&d.CompanyID,
		&d.FileName,
		&d.Content,
		&d.FileType,
		&d.BlobURL,
		&d.StorageKey,
		&d.Size,
		&d.ContentType,
		&meta,
		&d.UploadedAt,
	); err != nil {
		return nil, err
	}
	if len(meta) > 0 {
		d.EmailMeta = &model.EmailMeta{}
		if err := json.Unmarshal(meta, d.EmailMeta); err != nil {
			return nil, eris.Wrap(err, "decode email_meta")
		}
	}
	return &d, nil
}

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	var meta []byte
	if doc.EmailMeta != nil {
		b, err := json.Marshal(doc.EmailMeta)
		if err != nil {
			return nil, eris.Wrap(err, "encode email_meta")
		}
		meta = b
	}

	const q = `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.CompanyID,
		doc.FileName,
		doc.Content,
		doc.FileType,
		doc.BlobURL,
		doc.StorageKey,
		doc.Size,
		doc.ContentType,
		meta,
		doc.UploadedAt,
	)
	out, err := scanDocument(row)
	if err != nil {
		return nil, eris.Wrap(err, "insert document")
	}
	return out, nil
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// ListByCompany returns a company's documents ordered by upload time.
func (r *DocumentPostgres) ListByCompany(ctx context.Context, companyID string) ([]model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE company_id = $1 ORDER BY uploaded_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q, companyID)
	if err != nil {
		return nil, eris.Wrap(err, "list documents")
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, eris.Wrap(err, "scan document")
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "iterate documents")
	}
	return items, nil
}

// Delete removes a document by ID. It does not return an error if the row does not exist.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, q, id); err != nil {
		return eris.Wrap(err, "delete document")
	}
	return nil
}
