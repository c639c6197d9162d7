package mocks

import (
	"context"

	"riskmai/internal/model"
	"riskmai/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) Analyse(ctx context.Context, companyID string, req service.AnalyseRequest) (*model.AnalysisOutcome, error) {
	args := m.Called(ctx, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AnalysisOutcome), args.Error(1)
}

func (m *MockAnalysisService) List(ctx context.Context, companyID string, q service.ListAnalysesQuery) ([]model.AnalysisRecord, error) {
	args := m.Called(ctx, companyID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AnalysisRecord), args.Error(1)
}

func (m *MockAnalysisService) Get(ctx context.Context, companyID, analysisID string) (*model.AnalysisRecord, error) {
	args := m.Called(ctx, companyID, analysisID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AnalysisRecord), args.Error(1)
}

var _ service.AnalysisService = (*MockAnalysisService)(nil)
