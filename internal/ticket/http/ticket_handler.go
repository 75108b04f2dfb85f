// Package http provides HTTP handlers for ticket operations.
// Every handler requires a resolved auth Ctx and is mounted through authHTTP.WithCtx.
package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/tickets/internal/auth/domain"
	apperrors "github.com/allisson/tickets/internal/errors"
	"github.com/allisson/tickets/internal/ticket/http/dto"
	ticketUseCase "github.com/allisson/tickets/internal/ticket/usecase"
	customValidation "github.com/allisson/tickets/internal/validation"
)

// TicketHandler handles HTTP requests for ticket operations.
type TicketHandler struct {
	ticketUseCase ticketUseCase.TicketUseCase
	logger        *slog.Logger
}

// NewTicketHandler creates a new ticket handler with required dependencies.
func NewTicketHandler(ticketUseCase ticketUseCase.TicketUseCase, logger *slog.Logger) *TicketHandler {
	return &TicketHandler{
		ticketUseCase: ticketUseCase,
		logger:        logger,
	}
}

// CreateHandler creates a ticket owned by the caller.
// POST /api/tickets - Returns 201 Created with the stored ticket.
func (h *TicketHandler) CreateHandler(c *gin.Context, authCtx authDomain.Ctx) {
	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("invalid create ticket body", slog.Any("error", err))
		_ = c.Error(apperrors.Wrap(apperrors.ErrInvalidInput, "malformed request body"))
		return
	}

	if err := req.Validate(); err != nil {
		_ = c.Error(customValidation.WrapValidationError(err))
		return
	}

	ticket, err := h.ticketUseCase.Create(c.Request.Context(), authCtx, req.ToTicketForCreate())
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.logger.Debug("ticket created",
		slog.Uint64("ticket_id", ticket.ID),
		slog.Uint64("user_id", authCtx.UserID))
	c.JSON(http.StatusCreated, dto.MapTicketToResponse(ticket))
}

// ListHandler returns every live ticket.
// GET /api/tickets - Returns 200 OK with an array of tickets.
func (h *TicketHandler) ListHandler(c *gin.Context, authCtx authDomain.Ctx) {
	tickets, err := h.ticketUseCase.List(c.Request.Context(), authCtx)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.MapTicketsToResponse(tickets))
}

// DeleteHandler removes a ticket by id and returns it.
// DELETE /api/tickets/:id - Returns 200 OK with the removed ticket.
func (h *TicketHandler) DeleteHandler(c *gin.Context, authCtx authDomain.Ctx) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		_ = c.Error(apperrors.Wrap(apperrors.ErrInvalidInput, "invalid ticket id: must be a non-negative integer"))
		return
	}

	ticket, err := h.ticketUseCase.Delete(c.Request.Context(), authCtx, id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.logger.Debug("ticket deleted",
		slog.Uint64("ticket_id", ticket.ID),
		slog.Uint64("user_id", authCtx.UserID))
	c.JSON(http.StatusOK, dto.MapTicketToResponse(ticket))
}
