package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"cms-service/internal/config"
)

func newService(t *testing.T, cfg config.AppConfig) *AuthService {
	t.Helper()
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "test-secret"
	}
	return NewAuthService(cfg, zap.NewNop())
}

func TestSessionTokenDeterministic(t *testing.T) {
	a := newService(t, config.AppConfig{AuthSecret: "secret-a", AdminPassword: "pw"})
	b := newService(t, config.AppConfig{AuthSecret: "secret-a", AdminPassword: "pw"})
	c := newService(t, config.AppConfig{AuthSecret: "secret-b", AdminPassword: "pw"})

	assert.Equal(t, a.SessionToken(), a.SessionToken(), "stable across calls")
	assert.Equal(t, a.SessionToken(), b.SessionToken(), "same secret, same token")
	assert.NotEqual(t, a.SessionToken(), c.SessionToken(), "different secret, different token")

	// HMAC-SHA256 rendered as hex.
	assert.Len(t, a.SessionToken(), 64)
	assert.Regexp(t, `^[0-9a-f]{64}$`, a.SessionToken())
}

func TestVerifyToken(t *testing.T) {
	s := newService(t, config.AppConfig{AdminPassword: "pw"})

	assert.True(t, s.VerifyToken(s.SessionToken()))
	assert.False(t, s.VerifyToken(""))
	assert.False(t, s.VerifyToken("not-the-token"))
	assert.False(t, s.VerifyToken(s.SessionToken()+"x"))
}

func TestVerifyCredentials(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.AppConfig
		email    string
		password string
		want     bool
	}{
		{
			name:     "no configured email, any email accepted",
			cfg:      config.AppConfig{AdminPassword: "hunter2"},
			email:    "whoever@example.com",
			password: "hunter2",
			want:     true,
		},
		{
			name:     "no configured email, empty email accepted",
			cfg:      config.AppConfig{AdminPassword: "hunter2"},
			email:    "",
			password: "hunter2",
			want:     true,
		},
		{
			name:     "configured email matches case-insensitively",
			cfg:      config.AppConfig{AdminEmail: "admin@example.com", AdminPassword: "hunter2"},
			email:    "Admin@Example.COM",
			password: "hunter2",
			want:     true,
		},
		{
			name:     "configured email with surrounding whitespace",
			cfg:      config.AppConfig{AdminEmail: "admin@example.com", AdminPassword: "hunter2"},
			email:    "  admin@example.com  ",
			password: "hunter2",
			want:     true,
		},
		{
			name:     "correct password but mismatched email fails",
			cfg:      config.AppConfig{AdminEmail: "admin@example.com", AdminPassword: "hunter2"},
			email:    "intruder@example.com",
			password: "hunter2",
			want:     false,
		},
		{
			name:     "wrong password fails",
			cfg:      config.AppConfig{AdminPassword: "hunter2"},
			email:    "",
			password: "hunter3",
			want:     false,
		},
		{
			name:     "empty password fails",
			cfg:      config.AppConfig{AdminPassword: "hunter2"},
			email:    "",
			password: "",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newService(t, tt.cfg)
			assert.Equal(t, tt.want, s.VerifyCredentials(tt.email, tt.password))
		})
	}
}

func TestVerifyCredentialsBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	s := newService(t, config.AppConfig{AdminPasswordHash: string(hash)})
	assert.True(t, s.VerifyCredentials("", "hunter2"))
	assert.False(t, s.VerifyCredentials("", "hunter3"))
}
