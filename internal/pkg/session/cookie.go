// internal/pkg/session/cookie.go
package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieName is the fixed name of the admin session cookie.
const CookieName = "admin_session"

// MaxAge is the session cookie lifetime: 7 days, in seconds.
const MaxAge = 7 * 24 * 60 * 60

// SetCookie issues the session cookie on a successful login. The Secure
// flag is enabled only in production-like environments so local
// development over plain HTTP keeps working.
func SetCookie(c *gin.Context, token string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, MaxAge, "/", "", secure, true)
}

// ClearCookie removes the session cookie. It does not invalidate the
// token itself: the token is process-global and stays valid until the
// signing secret changes.
func ClearCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", secure, true)
}

// TokenFromRequest extracts the presented session token, or "" when the
// cookie is absent.
func TokenFromRequest(c *gin.Context) string {
	token, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return token
}
