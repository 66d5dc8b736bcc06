package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/lms/config"
	"github.com/lshigami/lms/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T, secret string) *TokenManager {
	t.Helper()
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = secret
	cfg.Auth.JWTExpiration = time.Hour
	m, err := NewTokenManager(cfg)
	require.NoError(t, err)
	return m
}

func TestIssueAndParse(t *testing.T) {
	m := newManager(t, "s3cret")
	token, err := m.Issue(&model.User{ID: 7, Email: "a@x.com", RoleID: model.RoleFaculty})
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.ID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, model.RoleFaculty, claims.RoleID)
	assert.False(t, claims.IsAdmin())
}

func TestParseExpired(t *testing.T) {
	m := newManager(t, "s3cret")
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := m.Issue(&model.User{ID: 1, RoleID: model.RoleAdmin})
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseWrongSecret(t *testing.T) {
	token, err := newManager(t, "one").Issue(&model.User{ID: 1})
	require.NoError(t, err)

	_, err = newManager(t, "two").Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = newManager(t, "two").Parse("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestPasswordHash(t *testing.T) {
	hashed, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hashed)
	assert.True(t, CheckPassword(hashed, "hunter22"))
	assert.False(t, CheckPassword(hashed, "hunter23"))
}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	_, err := NewTokenManager(&config.Config{})
	assert.ErrorIs(t, err, ErrNoSecret)

	// A token signed with the empty key must not pass any manager.
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{ID: 1, RoleID: model.RoleAdmin}).SignedString([]byte(""))
	require.NoError(t, err)
	_, err = newManager(t, "s3cret").Parse(forged)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
