package mocks

import (
	"context"

	"riskmai/internal/llm"

	"github.com/stretchr/testify/mock"
)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) Complete(ctx context.Context, req llm.Request) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockClient) Name() string {
	return "mock"
}

func (m *MockClient) Close() error {
	return nil
}

var _ llm.Client = (*MockClient)(nil)
