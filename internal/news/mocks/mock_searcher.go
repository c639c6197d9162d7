package mocks

import (
	"context"

	"riskmai/internal/model"
	"riskmai/internal/news"

	"github.com/stretchr/testify/mock"
)

type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Search(ctx context.Context, q news.Query) (*model.NewsResult, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NewsResult), args.Error(1)
}

func (m *MockSearcher) CompanyNews(ctx context.Context, companyName string) (*model.NewsResult, error) {
	args := m.Called(ctx, companyName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NewsResult), args.Error(1)
}

func (m *MockSearcher) RiskNews(ctx context.Context, description, riskType, companyName string) (*model.NewsResult, error) {
	args := m.Called(ctx, description, riskType, companyName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NewsResult), args.Error(1)
}

var _ news.Searcher = (*MockSearcher)(nil)
