package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/lms/internal/auth"
	"github.com/lshigami/lms/internal/dto"
	"github.com/rs/zerolog/log"
)

const claimsKey = "auth.claims"

// RequireAuth rejects requests without a valid bearer token. A missing
// header is 401, an expired token 401 and any other bad token 403.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Access denied. No token provided."})
			return
		}
		raw := header
		if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
			raw = strings.TrimSpace(header[7:])
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Token expired"})
				return
			}
			log.Debug().Err(err).Str("path", c.FullPath()).Msg("Rejected bearer token")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "Invalid token"})
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRoles must run after RequireAuth.
func RequireRoles(roleIDs ...uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Access denied. No token provided."})
			return
		}
		for _, id := range roleIDs {
			if claims.RoleID == id {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "Insufficient role for this operation"})
	}
}

func ClaimsFrom(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
