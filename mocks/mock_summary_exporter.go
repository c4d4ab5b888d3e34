package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockSummaryExporter is a mock implementation of port.SummaryExporter.
type MockSummaryExporter struct {
	mock.Mock
}

func (m *MockSummaryExporter) Export(title, summary string) ([]byte, error) {
	args := m.Called(title, summary)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
