package mocks

import (
	"github.com/stretchr/testify/mock"

	"recapd/internal/port"
)

// MockDocumentReader is a mock implementation of port.DocumentReader.
type MockDocumentReader struct {
	mock.Mock
}

func (m *MockDocumentReader) Extract(input port.ExtractInput) (string, error) {
	args := m.Called(input)
	return args.String(0), args.Error(1)
}
