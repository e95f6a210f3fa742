// internal/handlers/auth/auth_handler.go
package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cms-service/internal/pkg/session"
	authUsecase "cms-service/internal/service/auth"
)

type AuthHandler struct {
	authService   *authUsecase.AuthService
	rateLimiter   *session.RateLimiter
	secureCookies bool
	logger        *zap.Logger
}

func NewAuthHandler(authService *authUsecase.AuthService, rateLimiter *session.RateLimiter, secureCookies bool, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		rateLimiter:   rateLimiter,
		secureCookies: secureCookies,
		logger:        logger,
	}
}

// ShowLogin renders the login form. ?error=1 surfaces the single generic
// failure message regardless of which credential was wrong.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	data := gin.H{}
	if c.Query("error") == "1" {
		data["ErrorMsg"] = "Invalid email or password."
	}
	c.HTML(http.StatusOK, "login.html", data)
}

// Login checks the submitted credentials and, on success, issues the
// session cookie and redirects to the admin landing page.
func (h *AuthHandler) Login(c *gin.Context) {
	ip := c.ClientIP()

	allowed, err := h.rateLimiter.CheckLoginAttempt(c.Request.Context(), ip)
	if err != nil {
		// Redis trouble should not lock the admin out.
		h.logger.Warn("login rate limiter unavailable", zap.Error(err))
		allowed = true
	}
	if !allowed {
		h.logger.Warn("login rate limited", zap.String("ip", ip))
		c.Redirect(http.StatusFound, "/login?error=1")
		return
	}

	email := c.PostForm("email")
	password := c.PostForm("password")

	if !h.authService.VerifyCredentials(email, password) {
		h.logger.Warn("login failed", zap.String("ip", ip))
		c.Redirect(http.StatusFound, "/login?error=1")
		return
	}

	if err := h.rateLimiter.ResetLoginAttempts(c.Request.Context(), ip); err != nil {
		h.logger.Warn("failed to reset login attempts", zap.Error(err))
	}

	session.SetCookie(c, h.authService.SessionToken(), h.secureCookies)
	h.logger.Info("admin logged in", zap.String("ip", ip))
	c.Redirect(http.StatusFound, "/admin")
}

// Logout clears the session cookie unconditionally and sends the caller
// back to the login page. The token itself remains valid until the
// signing secret changes; only this client's cookie is gone.
func (h *AuthHandler) Logout(c *gin.Context) {
	session.ClearCookie(c, h.secureCookies)
	c.Redirect(http.StatusFound, "/login")
}
