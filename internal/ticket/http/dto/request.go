// Package dto provides request and response bodies for the ticket endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/tickets/internal/ticket/domain"
)

// CreateTicketRequest is the body of POST /api/tickets.
// Title is a pointer so an absent field can be told apart from an empty string.
type CreateTicketRequest struct {
	Title *string `json:"title"`
}

// Validate checks that the title field is present. Any string, including an
// empty one, is accepted as is.
func (r *CreateTicketRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.NotNil),
	)
}

// ToTicketForCreate converts the request into use case input.
func (r *CreateTicketRequest) ToTicketForCreate() domain.TicketForCreate {
	if r.Title == nil {
		return domain.TicketForCreate{}
	}
	return domain.TicketForCreate{Title: *r.Title}
}
