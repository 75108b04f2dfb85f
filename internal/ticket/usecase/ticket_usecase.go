package usecase

import (
	"context"

	authDomain "github.com/allisson/tickets/internal/auth/domain"
	"github.com/allisson/tickets/internal/ticket/domain"
)

// ticketUseCase implements TicketUseCase.
type ticketUseCase struct {
	ticketRepo TicketRepository
}

// NewTicketUseCase creates a TicketUseCase backed by ticketRepo.
func NewTicketUseCase(ticketRepo TicketRepository) TicketUseCase {
	return &ticketUseCase{ticketRepo: ticketRepo}
}

// Create stores the ticket owned by authCtx. The title is kept verbatim.
func (t *ticketUseCase) Create(
	ctx context.Context,
	authCtx authDomain.Ctx,
	input domain.TicketForCreate,
) (*domain.Ticket, error) {
	return t.ticketRepo.Create(ctx, authCtx, input)
}

// List returns all live tickets.
func (t *ticketUseCase) List(ctx context.Context, authCtx authDomain.Ctx) ([]*domain.Ticket, error) {
	return t.ticketRepo.List(ctx, authCtx)
}

// Delete removes the ticket with id.
func (t *ticketUseCase) Delete(ctx context.Context, authCtx authDomain.Ctx, id uint64) (*domain.Ticket, error) {
	return t.ticketRepo.Delete(ctx, authCtx, id)
}
