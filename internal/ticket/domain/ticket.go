// Package domain defines the ticket entity and its errors.
package domain

import (
	"fmt"

	"github.com/allisson/tickets/internal/errors"
)

// Ticket is a unit of work attributed to the user that created it.
// ID is the ticket's slot position in the store and is never reused.
type Ticket struct {
	ID      uint64
	OwnerID uint64
	Title   string
}

// TicketForCreate holds the caller supplied fields of a new ticket.
type TicketForCreate struct {
	Title string
}

// ErrTicketNotFound indicates no live ticket exists for the requested id.
var ErrTicketNotFound = errors.Wrap(errors.ErrNotFound, "ticket not found")

// NotFoundError reports the ticket id that could not be found.
type NotFoundError struct {
	ID uint64
}

// Error implements error.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: id %d", ErrTicketNotFound.Error(), e.ID)
}

// Unwrap allows errors.Is checks against ErrTicketNotFound and ErrNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrTicketNotFound
}
