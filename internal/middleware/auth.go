package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"agendahub/internal/auth"
	"agendahub/internal/core"
)

const principalKey = "principal"

// Auth parses the bearer token and stores the authenticated principal on the
// request context. Requests without a valid token are rejected with 401.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if raw == "" || raw == c.GetHeader("Authorization") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Não autenticado"})
			return
		}

		claims, err := auth.ParseToken(raw, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Não autenticado"})
			return
		}

		c.Set(principalKey, core.Principal{
			ID:         claims.UserID,
			Role:       claims.Role,
			BusinessID: claims.BusinessID,
		})
		c.Next()
	}
}

// PrincipalFrom returns the principal set by Auth.
func PrincipalFrom(c *gin.Context) (core.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return core.Principal{}, false
	}
	p, ok := v.(core.Principal)
	return p, ok
}
