package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/lms/config"
	"github.com/lshigami/lms/internal/auth"
	"github.com/lshigami/lms/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T, ttl time.Duration) (*gin.Engine, *auth.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.JWTExpiration = ttl
	tokens, err := auth.NewTokenManager(cfg)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", RequireAuth(tokens), func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": claims.ID})
	})
	r.GET("/admin", RequireAuth(tokens), RequireRoles(model.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, tokens
}

func TestRequireAuth(t *testing.T) {
	r, tokens := setupRouter(t, time.Hour)
	token, err := tokens.Issue(&model.User{ID: 3, RoleID: model.RoleStudent})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"garbage", "Bearer nope", http.StatusForbidden},
		{"bearer", "Bearer " + token, http.StatusOK},
		{"bare token", token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRequireAuthExpired(t *testing.T) {
	r, tokens := setupRouter(t, time.Nanosecond)
	token, err := tokens.Issue(&model.User{ID: 3})
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoles(t *testing.T) {
	r, tokens := setupRouter(t, time.Hour)
	student, _ := tokens.Issue(&model.User{ID: 3, RoleID: model.RoleStudent})
	admin, _ := tokens.Issue(&model.User{ID: 1, RoleID: model.RoleAdmin})

	for token, want := range map[string]int{student: http.StatusForbidden, admin: http.StatusNoContent} {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code)
	}
}
