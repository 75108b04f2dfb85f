// Package repository provides the in-memory ticket store.
package repository

import (
	"context"
	"sync"

	authDomain "github.com/allisson/tickets/internal/auth/domain"
	"github.com/allisson/tickets/internal/ticket/domain"
)

// MemoryTicketRepository keeps tickets in a growing sequence of slots guarded by a
// single mutex. Deleting a ticket clears its slot in place, so ids stay valid indices
// and are never reused.
type MemoryTicketRepository struct {
	mu    sync.Mutex
	slots []*domain.Ticket
}

// NewMemoryTicketRepository creates an empty ticket store.
func NewMemoryTicketRepository() *MemoryTicketRepository {
	return &MemoryTicketRepository{}
}

// Create appends a ticket owned by ctx. The id is the slot count before the append.
func (r *MemoryTicketRepository) Create(
	_ context.Context,
	ctx authDomain.Ctx,
	input domain.TicketForCreate,
) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ticket := &domain.Ticket{
		ID:      uint64(len(r.slots)),
		OwnerID: ctx.UserID,
		Title:   input.Title,
	}
	r.slots = append(r.slots, ticket)

	return copyTicket(ticket), nil
}

// List returns all live tickets in insertion order.
// It does not filter by owner.
func (r *MemoryTicketRepository) List(_ context.Context, _ authDomain.Ctx) ([]*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tickets := make([]*domain.Ticket, 0, len(r.slots))
	for _, ticket := range r.slots {
		if ticket != nil {
			tickets = append(tickets, copyTicket(ticket))
		}
	}

	return tickets, nil
}

// Delete clears the slot at id and returns the ticket it held.
// Returns *domain.NotFoundError if id is out of range or already deleted.
// Ownership is not checked.
func (r *MemoryTicketRepository) Delete(
	_ context.Context,
	_ authDomain.Ctx,
	id uint64,
) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id >= uint64(len(r.slots)) || r.slots[id] == nil {
		return nil, &domain.NotFoundError{ID: id}
	}

	ticket := r.slots[id]
	r.slots[id] = nil

	return ticket, nil
}

func copyTicket(ticket *domain.Ticket) *domain.Ticket {
	c := *ticket
	return &c
}
