package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// setAuthCookie writes the credential cookie as a session cookie on the root path.
func setAuthCookie(c *gin.Context, name, value string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, 0, "/", "", secure, true)
}

// removeAuthCookie instructs the client to drop the credential cookie.
func removeAuthCookie(c *gin.Context, name string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", "", false, true)
}
