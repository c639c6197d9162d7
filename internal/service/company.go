package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"riskmai/internal/model"
	"riskmai/internal/repository"
)

// CompanyService defines the use cases for companies and their context notes.
type CompanyService interface {
	// Create registers a company. A non-blank context becomes its first context entry.
	Create(ctx context.Context, name, contextNote string) (*model.Company, error)

	// AddContext appends a note to the end of the company's context list.
	AddContext(ctx context.Context, companyID, note string) error

	// Get returns the company with its context and documents.
	Get(ctx context.Context, id string) (*model.Company, error)

	// List returns every company as an id/name pair.
	List(ctx context.Context) ([]model.CompanySummary, error)
}

type companyService struct {
	companies repository.CompanyRepository
	documents repository.DocumentRepository
}

// NewCompanyService constructs a new CompanyService.
func NewCompanyService(companies repository.CompanyRepository, documents repository.DocumentRepository) CompanyService {
	return &companyService{companies: companies, documents: documents}
}

func (s *companyService) Create(ctx context.Context, name, contextNote string) (*model.Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationError("name", "Company name is required")
	}

	c := &model.Company{
		ID:        uuid.New().String(),
		Name:      name,
		Context:   []string{},
		CreatedAt: time.Now().UTC(),
	}
	if strings.TrimSpace(contextNote) != "" {
		c.Context = append(c.Context, contextNote)
	}

	stored, err := s.companies.Create(ctx, c)
	if err != nil {
		return nil, &StoreError{Op: "create company", Err: err}
	}
	return stored, nil
}

func (s *companyService) AddContext(ctx context.Context, companyID, note string) error {
	if strings.TrimSpace(note) == "" {
		return validationError("context", "Context is required")
	}
	if !validID(companyID) {
		return &NotFoundError{Resource: "company", ID: companyID}
	}
	if err := s.companies.AppendContext(ctx, companyID, note); err != nil {
		return lookupError("company", companyID, "append context", err)
	}
	return nil
}

func (s *companyService) Get(ctx context.Context, id string) (*model.Company, error) {
	if !validID(id) {
		return nil, &NotFoundError{Resource: "company", ID: id}
	}
	c, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError("company", id, "get company", err)
	}
	docs, err := s.documents.ListByCompany(ctx, id)
	if err != nil {
		return nil, &StoreError{Op: "list documents", Err: err}
	}
	c.Documents = docs
	return c, nil
}

func (s *companyService) List(ctx context.Context) ([]model.CompanySummary, error) {
	items, err := s.companies.List(ctx)
	if err != nil {
		return nil, &StoreError{Op: "list companies", Err: err}
	}
	return items, nil
}
