package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newRateLimitedRouter(ctx context.Context, rps float64, burst int) *gin.Engine {
	router := newTestRouter(LoginRateLimitMiddleware(ctx, rps, burst, createTestLogger()))
	router.POST("/api/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"type": "ok"})
	})
	return router
}

func loginRequestFrom(remoteAddr string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.RemoteAddr = remoteAddr
	return req
}

func TestLoginRateLimitMiddleware(t *testing.T) {
	t.Run("allows requests within burst", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		router := newRateLimitedRouter(ctx, 1, 3)

		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, loginRequestFrom("192.0.2.1:1234"))
			assert.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
		}
	})

	t.Run("rejects requests over burst", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		router := newRateLimitedRouter(ctx, 0.5, 1)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, loginRequestFrom("192.0.2.1:1234"))
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, loginRequestFrom("192.0.2.1:1234"))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "RATE_LIMIT_EXCEEDED", decodeType(t, w))

		retryAfter, err := strconv.Atoi(w.Header().Get("Retry-After"))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, retryAfter, 1)
	})

	t.Run("limits each client ip independently", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		router := newRateLimitedRouter(ctx, 0.5, 1)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, loginRequestFrom("192.0.2.1:1234"))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, loginRequestFrom("192.0.2.2:1234"))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, loginRequestFrom("192.0.2.1:1234"))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})
}

func TestLoginRateLimiterStore_RemoveIdleSince(t *testing.T) {
	store := &loginRateLimiterStore{rps: 1, burst: 1}

	store.limiters.Store("stale", &loginRateLimiterEntry{
		limiter:    rate.NewLimiter(1, 1),
		lastAccess: time.Now().Add(-2 * staleLimiterAge),
	})
	store.getLimiter("fresh")

	store.removeIdleSince(time.Now().Add(-staleLimiterAge))

	_, staleFound := store.limiters.Load("stale")
	_, freshFound := store.limiters.Load("fresh")
	assert.False(t, staleFound)
	assert.True(t, freshFound)
}

func TestLoginRateLimiterStore_GetLimiterReusesEntry(t *testing.T) {
	store := &loginRateLimiterStore{rps: 1, burst: 1}

	first := store.getLimiter("192.0.2.1")
	second := store.getLimiter("192.0.2.1")

	assert.Same(t, first, second)
}
