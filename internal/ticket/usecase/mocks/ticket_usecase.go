// Package mocks provides mock implementations of the ticket use case for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/tickets/internal/auth/domain"
	"github.com/allisson/tickets/internal/ticket/domain"
)

// MockTicketUseCase is a mock implementation of TicketUseCase for testing.
type MockTicketUseCase struct {
	mock.Mock
}

// Create mocks the Create method of TicketUseCase.
func (m *MockTicketUseCase) Create(
	ctx context.Context,
	authCtx authDomain.Ctx,
	input domain.TicketForCreate,
) (*domain.Ticket, error) {
	args := m.Called(ctx, authCtx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

// List mocks the List method of TicketUseCase.
func (m *MockTicketUseCase) List(ctx context.Context, authCtx authDomain.Ctx) ([]*domain.Ticket, error) {
	args := m.Called(ctx, authCtx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Ticket), args.Error(1)
}

// Delete mocks the Delete method of TicketUseCase.
func (m *MockTicketUseCase) Delete(ctx context.Context, authCtx authDomain.Ctx, id uint64) (*domain.Ticket, error) {
	args := m.Called(ctx, authCtx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}
