package repository

import (
	"context"

	"riskmai/internal/model"
)

// AnalysisFilter narrows an analysis listing. Zero values mean no filter; Limit must be positive.
type AnalysisFilter struct {
	CompanyID    string
	AnalysisID   string
	AnalysisType model.AnalysisType
	Limit        int
}

// AnalysisRepository stores write-once analysis records.
type AnalysisRepository interface {
	// Create inserts the record. The store assigns created_at.
	Create(ctx context.Context, rec *model.AnalysisRecord) (*model.AnalysisRecord, error)

	// FindByID returns the company's analysis with the given ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, companyID, id string) (*model.AnalysisRecord, error)

	// List returns matching records, newest first.
	List(ctx context.Context, f AnalysisFilter) ([]model.AnalysisRecord, error)
}
