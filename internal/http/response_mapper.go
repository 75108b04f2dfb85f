package http

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/tickets/internal/auth/http"
	"github.com/allisson/tickets/internal/httputil"
)

// RequestLogLine is the structured record emitted once per request by the response mapper.
// ErrorData keeps the full internal error text, which never reaches the client.
type RequestLogLine struct {
	UUID      string
	Timestamp time.Time
	Method    string
	URI       string
	UserID    *uint64
	ErrorType string
	ErrorData string
}

// RequestLogger sinks request log lines.
type RequestLogger interface {
	LogRequest(ctx context.Context, line RequestLogLine) error
}

type slogRequestLogger struct {
	logger *slog.Logger
}

// NewSlogRequestLogger returns a RequestLogger writing to the given slog logger.
func NewSlogRequestLogger(logger *slog.Logger) RequestLogger {
	return &slogRequestLogger{logger: logger}
}

// LogRequest writes line as a single record and reports handler failures.
func (l *slogRequestLogger) LogRequest(ctx context.Context, line RequestLogLine) error {
	level := slog.LevelInfo
	if line.ErrorType != "" {
		level = slog.LevelWarn
	}

	handler := l.logger.Handler()
	if !handler.Enabled(ctx, level) {
		return nil
	}

	record := slog.NewRecord(line.Timestamp, level, "request log line", 0)
	record.AddAttrs(
		slog.String("uuid", line.UUID),
		slog.String("req_method", line.Method),
		slog.String("req_path", line.URI),
	)
	if line.UserID != nil {
		record.AddAttrs(slog.Uint64("user_id", *line.UserID))
	}
	if line.ErrorType != "" {
		record.AddAttrs(
			slog.String("error_type", line.ErrorType),
			slog.String("error_data", line.ErrorData),
		)
	}

	return handler.Handle(ctx, record)
}

// ResponseMapperMiddleware renders the error carried on c.Errors by any downstream
// handler or guard into the client envelope and emits one request log line.
//
// Every request gets a fresh req_uuid. Failed requests receive
// {"error":{"type":...,"req_uuid":...}} with the mapped status.
// Successful responses pass through untouched.
func ResponseMapperMiddleware(requestLogger RequestLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		line := RequestLogLine{
			UUID:      newReqUUID(),
			Timestamp: time.Now().UTC(),
			Method:    c.Request.Method,
			URI:       c.Request.URL.RequestURI(),
		}

		if authCtx, err := authHTTP.ExtractCtx(c.Request.Context()); err == nil {
			userID := authCtx.UserID
			line.UserID = &userID
		}

		if carried := c.Errors.Last(); carried != nil {
			status, clientError := httputil.MapError(carried.Err)
			line.ErrorType = string(clientError)
			line.ErrorData = carried.Err.Error()

			if !c.Writer.Written() {
				c.JSON(status, httputil.NewErrorResponse(clientError, line.UUID))
			}
		}

		_ = requestLogger.LogRequest(c.Request.Context(), line)
	}
}

func newReqUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
