package repository

import (
	"context"

	"riskmai/internal/model"
)

// CompanyRepository defines data access for companies and their context notes.
// No business logic here, strictly persistence operations.
type CompanyRepository interface {
	// Create inserts the company and its initial context entries atomically.
	Create(ctx context.Context, c *model.Company) (*model.Company, error)

	// AppendContext adds one entry at the end of the company's context list.
	// It returns sql.ErrNoRows when the company does not exist.
	AppendContext(ctx context.Context, companyID, body string) error

	// FindByID returns the company with its context in insertion order. Documents are not loaded.
	FindByID(ctx context.Context, id string) (*model.Company, error)

	// List returns every company as an id/name pair, oldest first.
	List(ctx context.Context) ([]model.CompanySummary, error)
}
