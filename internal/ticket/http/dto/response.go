package dto

import (
	"github.com/allisson/tickets/internal/ticket/domain"
)

// TicketResponse represents a ticket in API responses.
type TicketResponse struct {
	ID      uint64 `json:"id"`
	OwnerID uint64 `json:"owner_id"`
	Title   string `json:"title"`
}

// MapTicketToResponse converts a domain ticket to an API response.
func MapTicketToResponse(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:      ticket.ID,
		OwnerID: ticket.OwnerID,
		Title:   ticket.Title,
	}
}

// MapTicketsToResponse converts domain tickets to an API response list.
// An empty store renders as [] rather than null.
func MapTicketsToResponse(tickets []*domain.Ticket) []TicketResponse {
	data := make([]TicketResponse, 0, len(tickets))
	for _, ticket := range tickets {
		data = append(data, MapTicketToResponse(ticket))
	}
	return data
}
