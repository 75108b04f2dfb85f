package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/tickets/internal/auth/domain"
	"github.com/allisson/tickets/internal/metrics"
	"github.com/allisson/tickets/internal/ticket/domain"
)

const metricsDomain = "tickets"

// ticketUseCaseWithMetrics decorates TicketUseCase with metrics instrumentation.
type ticketUseCaseWithMetrics struct {
	next    TicketUseCase
	metrics metrics.BusinessMetrics
}

// NewTicketUseCaseWithMetrics wraps a TicketUseCase with metrics recording.
func NewTicketUseCaseWithMetrics(useCase TicketUseCase, m metrics.BusinessMetrics) TicketUseCase {
	return &ticketUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for ticket creation.
func (t *ticketUseCaseWithMetrics) Create(
	ctx context.Context,
	authCtx authDomain.Ctx,
	input domain.TicketForCreate,
) (*domain.Ticket, error) {
	start := time.Now()
	ticket, err := t.next.Create(ctx, authCtx, input)
	t.record(ctx, "ticket_create", start, err)
	return ticket, err
}

// List records metrics for ticket listing.
func (t *ticketUseCaseWithMetrics) List(ctx context.Context, authCtx authDomain.Ctx) ([]*domain.Ticket, error) {
	start := time.Now()
	tickets, err := t.next.List(ctx, authCtx)
	t.record(ctx, "ticket_list", start, err)
	return tickets, err
}

// Delete records metrics for ticket deletion.
func (t *ticketUseCaseWithMetrics) Delete(
	ctx context.Context,
	authCtx authDomain.Ctx,
	id uint64,
) (*domain.Ticket, error) {
	start := time.Now()
	ticket, err := t.next.Delete(ctx, authCtx, id)
	t.record(ctx, "ticket_delete", start, err)
	return ticket, err
}

func (t *ticketUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	t.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}
