package mocks

import (
	"context"

	"riskmai/internal/model"
	"riskmai/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockAnalysisRepository struct {
	mock.Mock
}

func (m *MockAnalysisRepository) Create(ctx context.Context, rec *model.AnalysisRecord) (*model.AnalysisRecord, error) {
	args := m.Called(ctx, rec)
	if f, ok := args.Get(0).(func(context.Context, *model.AnalysisRecord) *model.AnalysisRecord); ok {
		return f(ctx, rec), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AnalysisRecord), args.Error(1)
}

func (m *MockAnalysisRepository) FindByID(ctx context.Context, companyID, id string) (*model.AnalysisRecord, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AnalysisRecord), args.Error(1)
}

func (m *MockAnalysisRepository) List(ctx context.Context, f repository.AnalysisFilter) ([]model.AnalysisRecord, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AnalysisRecord), args.Error(1)
}

var _ repository.AnalysisRepository = (*MockAnalysisRepository)(nil)
