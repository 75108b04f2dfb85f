// Package http provides the authentication middleware chain (ctx resolver, guard and
// typed ctx extraction) and the login endpoints.
package http

import (
	"context"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/tickets/internal/auth/domain"
)

// authResultKey is the context key type for the resolved AuthResult.
type authResultKey struct{}

// CtxHandlerFunc is a handler that can only run with a resolved Ctx.
type CtxHandlerFunc func(c *gin.Context, authCtx authDomain.Ctx)

// WithAuthResult stores the outcome of credential resolution in the context.
// The ctx resolver middleware calls it for every request, successful or not.
func WithAuthResult(ctx context.Context, result authDomain.AuthResult) context.Context {
	return context.WithValue(ctx, authResultKey{}, result)
}

// GetAuthResult retrieves the stored AuthResult.
// Returns false if the ctx resolver middleware never ran for the request.
func GetAuthResult(ctx context.Context) (authDomain.AuthResult, bool) {
	result, ok := ctx.Value(authResultKey{}).(authDomain.AuthResult)
	return result, ok
}

// ExtractCtx returns the resolved Ctx, the stored resolution error, or
// ErrCtxNotInRequest when no resolution result is present at all.
func ExtractCtx(ctx context.Context) (authDomain.Ctx, error) {
	result, ok := GetAuthResult(ctx)
	if !ok {
		return authDomain.Ctx{}, authDomain.ErrCtxNotInRequest
	}
	return result.Unwrap()
}

// WithCtx adapts a CtxHandlerFunc to gin. Extraction failures are carried on
// c.Errors for the response mapper and the handler is not invoked.
func WithCtx(handler CtxHandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		authCtx, err := ExtractCtx(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		handler(c, authCtx)
	}
}
