package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allisson/tickets/internal/auth/http/dto"
	authUseCase "github.com/allisson/tickets/internal/auth/usecase"
	apperrors "github.com/allisson/tickets/internal/errors"
	"github.com/allisson/tickets/internal/metrics"
	customValidation "github.com/allisson/tickets/internal/validation"
)

// LoginHandler handles the login and logout endpoints.
type LoginHandler struct {
	loginUseCase authUseCase.LoginUseCase
	cookieName   string
	cookieSecure bool
	metrics      metrics.BusinessMetrics
	logger       *slog.Logger
}

// NewLoginHandler creates a login handler with required dependencies.
func NewLoginHandler(
	loginUseCase authUseCase.LoginUseCase,
	cookieName string,
	cookieSecure bool,
	businessMetrics metrics.BusinessMetrics,
	logger *slog.Logger,
) *LoginHandler {
	return &LoginHandler{
		loginUseCase: loginUseCase,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
		metrics:      businessMetrics,
		logger:       logger,
	}
}

// Login checks the submitted credentials and sets the auth cookie.
// POST /api/login - No authentication required.
func (h *LoginHandler) Login(c *gin.Context) {
	start := time.Now()
	status := "error"
	defer func() {
		h.metrics.RecordOperation(c.Request.Context(), "auth", "login", status)
		h.metrics.RecordDuration(c.Request.Context(), "auth", "login", time.Since(start), status)
	}()

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("invalid login body", slog.Any("error", err))
		_ = c.Error(apperrors.Wrap(apperrors.ErrInvalidInput, "malformed request body"))
		return
	}

	if err := req.Validate(); err != nil {
		_ = c.Error(customValidation.WrapValidationError(err))
		return
	}

	token, err := h.loginUseCase.Login(c.Request.Context(), req.ToLoginInput())
	if err != nil {
		_ = c.Error(err)
		return
	}

	setAuthCookie(c, h.cookieName, token.String(), h.cookieSecure)
	status = "success"

	h.logger.Debug("login succeeded", slog.Uint64("user_id", token.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{Result: dto.LoginResult{Success: true}})
}

// Logout clears the auth cookie.
// POST /api/logout - No authentication required.
func (h *LoginHandler) Logout(c *gin.Context) {
	removeAuthCookie(c, h.cookieName)
	c.JSON(http.StatusOK, dto.LogoutResponse{Result: dto.LogoutResult{LoggedOff: true}})
}
