package repository

import (
	"context"

	"riskmai/internal/model"
)

// DocumentRepository defines data access for uploaded documents using SQL queries only.
type DocumentRepository interface {
	// Create inserts a new document record.
	// The caller provides the ID and UploadedAt. Returns the stored document.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// ListByCompany returns the company's documents in upload order.
	ListByCompany(ctx context.Context, companyID string) ([]model.Document, error)

	// Delete removes a document by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
