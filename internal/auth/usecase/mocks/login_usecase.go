// Package mocks provides mock implementations of the login use case for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/tickets/internal/auth/domain"
	authUseCase "github.com/allisson/tickets/internal/auth/usecase"
)

// MockLoginUseCase is a mock implementation of LoginUseCase for testing.
type MockLoginUseCase struct {
	mock.Mock
}

// Login mocks the Login method of LoginUseCase.
func (m *MockLoginUseCase) Login(ctx context.Context, input authUseCase.LoginInput) (authDomain.Token, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(authDomain.Token), args.Error(1)
}
