package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGenerator is a mock implementation of genai.Generator.
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockGenerator) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}
