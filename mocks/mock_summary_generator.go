package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"recapd/internal/port"
)

// MockSummaryGenerator is a mock implementation of port.SummaryGenerator.
type MockSummaryGenerator struct {
	mock.Mock
}

func (m *MockSummaryGenerator) Generate(ctx context.Context, input port.SummaryInput) (*port.SummaryOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.SummaryOutput), args.Error(1)
}
