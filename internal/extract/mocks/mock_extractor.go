package mocks

import (
	"riskmai/internal/extract"

	"github.com/stretchr/testify/mock"
)

// MockExtractor is a testify mock for extract.Extractor.
type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) Extract(blob []byte, ext string) (*extract.Result, error) {
	args := m.Called(blob, ext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*extract.Result), args.Error(1)
}

var _ extract.Extractor = (*MockExtractor)(nil)
