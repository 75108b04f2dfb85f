// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int
	// ShutdownTimeout bounds how long graceful shutdown may wait for in-flight requests.
	ShutdownTimeout time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// StaticDir is the directory served for requests that match no API route.
	// Empty disables the static fallback.
	StaticDir string

	// AuthTokenExpiration is added to the login time to build the token's expiry segment.
	AuthTokenExpiration time.Duration
	// AuthCookieSecure marks the auth cookie as Secure (HTTPS only).
	AuthCookieSecure bool

	// LoginUsername is the username accepted by the mock login.
	LoginUsername string
	// LoginPassword is the password accepted by the mock login.
	LoginPassword string
	// LoginUserID is the user id encoded in tokens issued by the mock login.
	LoginUserID uint64

	// RateLimitLoginEnabled indicates whether rate limiting for the login endpoint is enabled.
	RateLimitLoginEnabled bool
	// RateLimitLoginRequestsPerSec is the number of requests allowed per second per client IP.
	RateLimitLoginRequestsPerSec float64
	// RateLimitLoginBurst is the burst size for the login endpoint rate limiting.
	RateLimitLoginBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost:      env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort:      env.GetInt("SERVER_PORT", 8081),
		ShutdownTimeout: env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 10, time.Second),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Static files
		StaticDir: env.GetString("STATIC_DIR", "./static"),

		// Auth
		AuthTokenExpiration: env.GetDuration("AUTH_TOKEN_EXPIRATION_SECONDS", 14400, time.Second),
		AuthCookieSecure:    env.GetBool("AUTH_COOKIE_SECURE", false),

		// Mock login account
		LoginUsername: env.GetString("LOGIN_USERNAME", "demo1"),
		LoginPassword: env.GetString("LOGIN_PASSWORD", "welcome"),
		LoginUserID:   uint64(env.GetInt("LOGIN_USER_ID", 1)),

		// Rate Limiting for Login Endpoint (IP-based, unauthenticated)
		RateLimitLoginEnabled:        env.GetBool("RATE_LIMIT_LOGIN_ENABLED", true),
		RateLimitLoginRequestsPerSec: env.GetFloat64("RATE_LIMIT_LOGIN_REQUESTS_PER_SEC", 5.0),
		RateLimitLoginBurst:          env.GetInt("RATE_LIMIT_LOGIN_BURST", 10),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "tickets"),
		MetricsPort:      env.GetInt("METRICS_PORT", 9091),
	}
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	if c.LogLevel == "debug" {
		return "debug"
	}
	return "release"
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
