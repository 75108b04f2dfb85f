package app

import (
	"fmt"

	authDomain "github.com/allisson/tickets/internal/auth/domain"
	authHTTP "github.com/allisson/tickets/internal/auth/http"
	authUseCase "github.com/allisson/tickets/internal/auth/usecase"
)

// LoginUseCase returns the mock login use case.
func (c *Container) LoginUseCase() (authUseCase.LoginUseCase, error) {
	var err error
	c.loginUseCaseInit.Do(func() {
		c.loginUseCase, err = c.initLoginUseCase()
		if err != nil {
			c.initErrors["loginUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["loginUseCase"]; exists {
		return nil, storedErr
	}
	return c.loginUseCase, nil
}

// LoginHandler returns the HTTP handler for login and logout.
func (c *Container) LoginHandler() (*authHTTP.LoginHandler, error) {
	var err error
	c.loginHandlerInit.Do(func() {
		c.loginHandler, err = c.initLoginHandler()
		if err != nil {
			c.initErrors["loginHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["loginHandler"]; exists {
		return nil, storedErr
	}
	return c.loginHandler, nil
}

// initLoginUseCase creates the login use case from the configured account.
func (c *Container) initLoginUseCase() (authUseCase.LoginUseCase, error) {
	useCase, err := authUseCase.NewLoginUseCase(authUseCase.LoginConfig{
		Username: c.config.LoginUsername,
		Password: c.config.LoginPassword,
		UserID:   c.config.LoginUserID,
		TokenTTL: c.config.AuthTokenExpiration,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create login use case: %w", err)
	}
	return useCase, nil
}

// initLoginHandler creates the login handler with all its dependencies.
func (c *Container) initLoginHandler() (*authHTTP.LoginHandler, error) {
	loginUseCase, err := c.LoginUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get login use case for login handler: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for login handler: %w", err)
	}

	return authHTTP.NewLoginHandler(
		loginUseCase,
		authDomain.CookieName,
		c.config.AuthCookieSecure,
		businessMetrics,
		c.Logger(),
	), nil
}
