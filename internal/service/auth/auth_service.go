// internal/service/auth/auth_service.go
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"cms-service/internal/config"
)

// sessionTokenMessage is the fixed HMAC input. The derived token is the
// same for the whole process lifetime: one global admin token, never
// rotated until AUTH_SECRET changes.
const sessionTokenMessage = "admin"

type AuthService struct {
	adminEmail        string
	adminPassword     string
	adminPasswordHash string
	token             string
	logger            *zap.Logger
}

func NewAuthService(cfg config.AppConfig, logger *zap.Logger) *AuthService {
	if cfg.AdminEmail == "" {
		logger.Warn("ADMIN_EMAIL not set, email check disabled on login")
	}
	return &AuthService{
		adminEmail:        cfg.AdminEmail,
		adminPassword:     cfg.AdminPassword,
		adminPasswordHash: cfg.AdminPasswordHash,
		token:             deriveSessionToken(cfg.AuthSecret),
		logger:            logger,
	}
}

func deriveSessionToken(secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(sessionTokenMessage))
	return hex.EncodeToString(mac.Sum(nil))
}

// SessionToken returns the value set as the admin session cookie on a
// successful login.
func (s *AuthService) SessionToken() string {
	return s.token
}

// VerifyToken reports whether a presented cookie value grants admin
// access. Comparison is constant-time; empty or absent values never match.
func (s *AuthService) VerifyToken(presented string) bool {
	if presented == "" {
		return false
	}
	return hmac.Equal([]byte(presented), []byte(s.token))
}

// VerifyCredentials checks a login submission. The email check passes
// unconditionally when no admin email is configured. Callers surface a
// single generic failure, never which field mismatched.
func (s *AuthService) VerifyCredentials(email, password string) bool {
	emailMatches := true
	if s.adminEmail != "" {
		emailMatches = strings.EqualFold(strings.TrimSpace(email), s.adminEmail)
	}

	passwordMatches := false
	if s.adminPasswordHash != "" {
		passwordMatches = bcrypt.CompareHashAndPassword(
			[]byte(s.adminPasswordHash), []byte(password)) == nil
	} else {
		passwordMatches = subtle.ConstantTimeCompare(
			[]byte(password), []byte(s.adminPassword)) == 1
	}

	return emailMatches && passwordMatches
}
