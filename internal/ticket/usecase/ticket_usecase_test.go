package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/tickets/internal/auth/domain"
	"github.com/allisson/tickets/internal/ticket/domain"
	"github.com/allisson/tickets/internal/ticket/repository"
)

func newTestUseCase() TicketUseCase {
	return NewTicketUseCase(repository.NewMemoryTicketRepository())
}

func TestTicketUseCase_Create(t *testing.T) {
	ctx := context.Background()
	authCtx := authDomain.NewCtx(1)

	t.Run("Success", func(t *testing.T) {
		uc := newTestUseCase()

		ticket, err := uc.Create(ctx, authCtx, domain.TicketForCreate{Title: "TicketAAA"})

		require.NoError(t, err)
		assert.Equal(t, &domain.Ticket{ID: 0, OwnerID: 1, Title: "TicketAAA"}, ticket)
	})

	verbatimTitles := map[string]string{
		"Success_EmptyTitle":  "",
		"Success_BlankTitle":  "   ",
		"Success_PaddedTitle": "  TicketAAA \n",
		"Success_LongTitle":   strings.Repeat("a", 1024),
	}
	for name, title := range verbatimTitles {
		t.Run(name, func(t *testing.T) {
			uc := newTestUseCase()

			ticket, err := uc.Create(ctx, authCtx, domain.TicketForCreate{Title: title})

			require.NoError(t, err)
			assert.Equal(t, title, ticket.Title)
		})
	}
}

func TestTicketUseCase_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	owner := authDomain.NewCtx(1)
	other := authDomain.NewCtx(2)
	uc := newTestUseCase()

	created, err := uc.Create(ctx, owner, domain.TicketForCreate{Title: "T"})
	require.NoError(t, err)

	// Listing and deleting are not scoped to the owner.
	tickets, err := uc.List(ctx, other)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "T", tickets[0].Title)

	deleted, err := uc.Delete(ctx, other, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, deleted)

	tickets, err = uc.List(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, tickets)

	_, err = uc.Delete(ctx, owner, created.ID)
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}
