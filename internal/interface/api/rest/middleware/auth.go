package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kieeler123/cloud-service/internal/infrastructure/jwt"
)

const (
	CtxOwnerID  = "ownerID"
	CtxIssuedAt = "tokenIssuedAt"
)

func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "missing Authorization header"},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token format"},
			)
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token"},
			)
			return
		}

		ownerUUID, err := uuid.Parse(claims.OwnerID)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token"},
			)
			return
		}

		c.Set(CtxOwnerID, ownerUUID)
		if claims.IssuedAt != nil {
			c.Set(CtxIssuedAt, claims.IssuedAt.Time)
		}

		c.Next()
	}
}

// OwnerFromContext reads the owner set by AuthMiddleware. Every handler takes
// the owner from here explicitly; there is no ambient current user anywhere
// below the middleware.
func OwnerFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(CtxOwnerID)
	if !ok {
		return uuid.UUID{}, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func IssuedAtFromContext(c *gin.Context) (time.Time, bool) {
	v, ok := c.Get(CtxIssuedAt)
	if !ok {
		return time.Time{}, false
	}
	ts, ok := v.(time.Time)
	return ts, ok
}
