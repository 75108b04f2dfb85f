package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/tickets/internal/auth/domain"
	apperrors "github.com/allisson/tickets/internal/errors"
)

// CtxResolverMiddleware resolves the request's credential cookie into an AuthResult
// and stores it in the request context for the guard and ctx extraction.
//
// The middleware never rejects a request:
//   - Missing cookie → ErrNoAuthTokenCookie, cookie left alone
//   - Cookie that fails to parse → ErrTokenWrongFormat, cookie cleared on the response
//   - Valid cookie → Ctx with the token's user id
//
// It must run before the routes that use RequireAuthMiddleware or WithCtx.
func CtxResolverMiddleware(cookieName string, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := resolveCtx(c, cookieName)

		if !result.OK() && !apperrors.Is(result.Err, authDomain.ErrNoAuthTokenCookie) {
			logger.Debug("clearing rejected auth cookie", slog.Any("error", result.Err))
			removeAuthCookie(c, cookieName)
		}

		c.Request = c.Request.WithContext(WithAuthResult(c.Request.Context(), result))
		c.Next()
	}
}

func resolveCtx(c *gin.Context, cookieName string) authDomain.AuthResult {
	raw, err := c.Cookie(cookieName)
	if err != nil {
		return authDomain.Failed(authDomain.ErrNoAuthTokenCookie)
	}

	token, err := authDomain.ParseToken(raw)
	if err != nil {
		return authDomain.Failed(err)
	}

	return authDomain.Resolved(authDomain.NewCtx(token.UserID))
}
