// Package http provides the HTTP servers, router wiring and cross-cutting middleware.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/allisson/tickets/internal/auth/domain"
	authHTTP "github.com/allisson/tickets/internal/auth/http"
	"github.com/allisson/tickets/internal/config"
	"github.com/allisson/tickets/internal/metrics"
	ticketHTTP "github.com/allisson/tickets/internal/ticket/http"
)

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	logger *slog.Logger

	// lifetime is cancelled when shutdown begins. It stops background
	// middleware work and flips readiness.
	lifetime context.Context
	stop     context.CancelFunc
}

// NewServer creates a new API server. Call SetupRouter before Start.
func NewServer(host string, port int, logger *slog.Logger) *Server {
	lifetime, stop := context.WithCancel(context.Background())

	return &Server{
		server:   newHTTPServer(host, port, nil),
		logger:   logger,
		lifetime: lifetime,
		stop:     stop,
	}
}

// newHTTPServer applies the timeouts shared by the API and metrics listeners.
func newHTTPServer(host string, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// SetupRouter builds the gin engine with the middleware chain and all routes.
//
// Middleware order matters: the response mapper sits outside everything that can
// carry an error, including recovered panics, and the ctx resolver runs before any
// protected route. The outer gin.Recovery covers the middleware ahead of the mapper.
func (s *Server) SetupRouter(
	cfg *config.Config,
	loginHandler *authHTTP.LoginHandler,
	ticketHandler *ticketHTTP.TicketHandler,
	metricsProvider *metrics.Provider,
	requestLogger RequestLogger,
) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.Use(ResponseMapperMiddleware(requestLogger))
	router.Use(RecoveryMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	router.Use(authHTTP.CtxResolverMiddleware(authDomain.CookieName, s.logger))

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	api := router.Group("/api")
	{
		login := []gin.HandlerFunc{}
		if cfg.RateLimitLoginEnabled {
			login = append(login, authHTTP.LoginRateLimitMiddleware(
				s.lifetime,
				cfg.RateLimitLoginRequestsPerSec,
				cfg.RateLimitLoginBurst,
				s.logger,
			))
		}
		api.POST("/login", append(login, loginHandler.Login)...)
		api.POST("/logout", loginHandler.Logout)

		tickets := api.Group("/tickets")
		tickets.Use(authHTTP.RequireAuthMiddleware(s.logger))
		{
			tickets.POST("", authHTTP.WithCtx(ticketHandler.CreateHandler))
			tickets.GET("", authHTTP.WithCtx(ticketHandler.ListHandler))
			tickets.DELETE("/:id", authHTTP.WithCtx(ticketHandler.DeleteHandler))
		}
	}

	if cfg.StaticDir != "" {
		router.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.StaticDir))))
	}

	s.router = router
}

// healthHandler reports that the process is alive.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server accepts traffic.
// It turns not ready as soon as shutdown begins.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.lifetime.Err() != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Start serves the router until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return errors.New("router not configured: call SetupRouter before Start")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	s.stop()
	return s.server.Shutdown(ctx)
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}
