package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/tickets/internal/auth/domain"
	authHTTP "github.com/allisson/tickets/internal/auth/http"
	"github.com/allisson/tickets/internal/httputil"
	ticketDomain "github.com/allisson/tickets/internal/ticket/domain"
)

// recordingRequestLogger captures request log lines and optionally fails.
type recordingRequestLogger struct {
	mu    sync.Mutex
	lines []RequestLogLine
	err   error
}

func (r *recordingRequestLogger) LogRequest(_ context.Context, line RequestLogLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
	return r.err
}

func (r *recordingRequestLogger) last(t *testing.T) RequestLogLine {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.lines)
	return r.lines[len(r.lines)-1]
}

func newMapperRouter(requestLogger RequestLogger, handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(ResponseMapperMiddleware(requestLogger))
	router.Use(authHTTP.CtxResolverMiddleware(authDomain.CookieName, createTestLogger()))
	router.GET("/test", handler)
	return router
}

func decodeErrorResponse(t *testing.T, w *httptest.ResponseRecorder) httputil.ErrorResponse {
	t.Helper()

	var resp httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestResponseMapperMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedType   httputil.ClientError
	}{
		{
			name:           "no auth cookie",
			err:            authDomain.ErrNoAuthTokenCookie,
			expectedStatus: http.StatusUnauthorized,
			expectedType:   httputil.ClientErrorNoAuthTokenCookie,
		},
		{
			name:           "ticket not found",
			err:            &ticketDomain.NotFoundError{ID: 9},
			expectedStatus: http.StatusBadRequest,
			expectedType:   httputil.ClientErrorTicketNotFound,
		},
		{
			name:           "unknown error",
			err:            errors.New("database on fire"),
			expectedStatus: http.StatusInternalServerError,
			expectedType:   httputil.ClientErrorService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requestLogger := &recordingRequestLogger{}
			router := newMapperRouter(requestLogger, func(c *gin.Context) {
				_ = c.Error(tt.err)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test?x=1", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)

			resp := decodeErrorResponse(t, w)
			assert.Equal(t, tt.expectedType, resp.Error.Type)
			_, err := uuid.Parse(resp.Error.ReqUUID)
			require.NoError(t, err)

			assert.NotContains(t, w.Body.String(), tt.err.Error(), "internal detail must not leak")

			line := requestLogger.last(t)
			assert.Equal(t, resp.Error.ReqUUID, line.UUID)
			assert.Equal(t, http.MethodGet, line.Method)
			assert.Equal(t, "/test?x=1", line.URI)
			assert.Equal(t, string(tt.expectedType), line.ErrorType)
			assert.Equal(t, tt.err.Error(), line.ErrorData)
			assert.False(t, line.Timestamp.IsZero())
		})
	}
}

func TestResponseMapperMiddleware_SuccessPassesThrough(t *testing.T) {
	requestLogger := &recordingRequestLogger{}
	router := newMapperRouter(requestLogger, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.AddCookie(&http.Cookie{Name: authDomain.CookieName, Value: "user-4.exp.sign"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	line := requestLogger.last(t)
	require.NotNil(t, line.UserID)
	assert.Equal(t, uint64(4), *line.UserID)
	assert.Empty(t, line.ErrorType)
	assert.Empty(t, line.ErrorData)
}

func TestResponseMapperMiddleware_FreshUUIDPerRequest(t *testing.T) {
	router := newMapperRouter(&recordingRequestLogger{}, func(c *gin.Context) {
		_ = c.Error(authDomain.ErrNoAuthTokenCookie)
	})

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		reqUUID := decodeErrorResponse(t, w).Error.ReqUUID
		assert.False(t, seen[reqUUID], "req_uuid must be unique per request")
		seen[reqUUID] = true
	}
}

func TestResponseMapperMiddleware_LoggerFailureSwallowed(t *testing.T) {
	requestLogger := &recordingRequestLogger{err: errors.New("sink down")}
	router := newMapperRouter(requestLogger, func(c *gin.Context) {
		_ = c.Error(authDomain.ErrTokenWrongFormat)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, httputil.ClientErrorTokenWrongFormat, decodeErrorResponse(t, w).Error.Type)
}

func TestSlogRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	userID := uint64(1)

	err := NewSlogRequestLogger(logger).LogRequest(context.Background(), RequestLogLine{
		UUID:      "0190a8f4-0000-7000-8000-000000000000",
		Method:    http.MethodDelete,
		URI:       "/api/tickets/1",
		UserID:    &userID,
		ErrorType: string(httputil.ClientErrorTicketNotFound),
		ErrorData: "ticket not found: not found: id 1",
	})
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "0190a8f4-0000-7000-8000-000000000000", record["uuid"])
	assert.Equal(t, "/api/tickets/1", record["req_path"])
	assert.Equal(t, float64(1), record["user_id"])
	assert.Equal(t, "TICKET_DELETE_FAIL_ID_NOT_FOUND", record["error_type"])
	assert.Equal(t, "ticket not found: not found: id 1", record["error_data"])
}

func TestSlogRequestLogger_DisabledLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}))

	err := NewSlogRequestLogger(logger).LogRequest(context.Background(), RequestLogLine{UUID: "x"})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
