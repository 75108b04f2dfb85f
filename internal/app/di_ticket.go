package app

import (
	"fmt"

	ticketHTTP "github.com/allisson/tickets/internal/ticket/http"
	ticketRepository "github.com/allisson/tickets/internal/ticket/repository"
	ticketUseCase "github.com/allisson/tickets/internal/ticket/usecase"
)

// TicketRepository returns the in-memory ticket store.
func (c *Container) TicketRepository() ticketUseCase.TicketRepository {
	c.ticketRepoInit.Do(func() {
		c.ticketRepo = ticketRepository.NewMemoryTicketRepository()
	})
	return c.ticketRepo
}

// TicketUseCase returns the ticket use case, decorated with metrics when enabled.
func (c *Container) TicketUseCase() (ticketUseCase.TicketUseCase, error) {
	var err error
	c.ticketUseCaseInit.Do(func() {
		c.ticketUseCase, err = c.initTicketUseCase()
		if err != nil {
			c.initErrors["ticketUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["ticketUseCase"]; exists {
		return nil, storedErr
	}
	return c.ticketUseCase, nil
}

// TicketHandler returns the HTTP handler for ticket operations.
func (c *Container) TicketHandler() (*ticketHTTP.TicketHandler, error) {
	var err error
	c.ticketHandlerInit.Do(func() {
		c.ticketHandler, err = c.initTicketHandler()
		if err != nil {
			c.initErrors["ticketHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["ticketHandler"]; exists {
		return nil, storedErr
	}
	return c.ticketHandler, nil
}

// initTicketUseCase creates the ticket use case on top of the repository.
func (c *Container) initTicketUseCase() (ticketUseCase.TicketUseCase, error) {
	useCase := ticketUseCase.NewTicketUseCase(c.TicketRepository())

	if !c.config.MetricsEnabled {
		return useCase, nil
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for ticket use case: %w", err)
	}

	return ticketUseCase.NewTicketUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initTicketHandler creates the ticket handler with all its dependencies.
func (c *Container) initTicketHandler() (*ticketHTTP.TicketHandler, error) {
	useCase, err := c.TicketUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket use case for ticket handler: %w", err)
	}
	return ticketHTTP.NewTicketHandler(useCase, c.Logger()), nil
}
