package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/observability"
)

const (
	authorizationHeader = "Authorization"
	authorizationType   = "Bearer"
	ContextUserIDKey    = "userID"
)

// TokenValidator resolves a bearer token to the id of an existing user.
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (string, error)
}

func AuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			unauthorized(c, "authorization header required")
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) != 2 || !strings.EqualFold(fields[0], authorizationType) {
			unauthorized(c, "invalid authorization header format")
			return
		}

		userID, err := tokens.ValidateToken(c.Request.Context(), fields[1])
		if err != nil {
			observability.LoggerFromContext(c.Request.Context()).
				WithError(err).
				Debug("[AUTH] token rejected")
			unauthorized(c, "invalid or expired token")
			return
		}

		c.Set(ContextUserIDKey, userID)

		c.Next()
	}
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

func GetUserID(c *gin.Context) (string, bool) {
	id, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", false
	}
	idStr, ok := id.(string)
	return idStr, ok && idStr != ""
}
