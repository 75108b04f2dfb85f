package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// RequireAuthMiddleware aborts requests whose credentials did not resolve to a Ctx.
// The resolution error is carried on c.Errors and rendered by the response mapper.
// It MUST be used after CtxResolverMiddleware.
func RequireAuthMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := ExtractCtx(c.Request.Context()); err != nil {
			logger.Debug("authentication required", slog.String("path", c.Request.URL.Path))
			_ = c.Error(err)
			c.Abort()
			return
		}
		c.Next()
	}
}
