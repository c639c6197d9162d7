package mocks

import (
	"context"

	"riskmai/internal/model"
	"riskmai/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) Create(ctx context.Context, name, contextNote string) (*model.Company, error) {
	args := m.Called(ctx, name, contextNote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Company), args.Error(1)
}

func (m *MockCompanyService) AddContext(ctx context.Context, companyID, note string) error {
	args := m.Called(ctx, companyID, note)
	return args.Error(0)
}

func (m *MockCompanyService) Get(ctx context.Context, id string) (*model.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Company), args.Error(1)
}

func (m *MockCompanyService) List(ctx context.Context) ([]model.CompanySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CompanySummary), args.Error(1)
}

var _ service.CompanyService = (*MockCompanyService)(nil)
