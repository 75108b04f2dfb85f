// Package usecase implements the ticket business logic on top of a ticket repository.
package usecase

import (
	"context"

	authDomain "github.com/allisson/tickets/internal/auth/domain"
	"github.com/allisson/tickets/internal/ticket/domain"
)

// TicketRepository defines the ticket store operations.
type TicketRepository interface {
	Create(ctx context.Context, authCtx authDomain.Ctx, input domain.TicketForCreate) (*domain.Ticket, error)
	List(ctx context.Context, authCtx authDomain.Ctx) ([]*domain.Ticket, error)
	Delete(ctx context.Context, authCtx authDomain.Ctx, id uint64) (*domain.Ticket, error)
}

// TicketUseCase defines the ticket operations available to an authenticated caller.
type TicketUseCase interface {
	// Create stores a new ticket owned by authCtx.
	Create(ctx context.Context, authCtx authDomain.Ctx, input domain.TicketForCreate) (*domain.Ticket, error)
	// List returns every live ticket in insertion order.
	List(ctx context.Context, authCtx authDomain.Ctx) ([]*domain.Ticket, error)
	// Delete removes the ticket with id and returns it.
	Delete(ctx context.Context, authCtx authDomain.Ctx, id uint64) (*domain.Ticket, error)
}
