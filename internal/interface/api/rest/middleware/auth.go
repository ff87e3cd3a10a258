package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"file-vault-api/internal/infrastructure/jwt"
)

const (
	CtxUserUUID   = "userUUID"
	CtxTelegramID = "telegramID"
)

func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"success": false, "error": "missing Authorization header"},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"success": false, "error": "invalid token format"},
			)
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"success": false, "error": "invalid token"},
			)
			return
		}

		c.Set(CtxUserUUID, claims.UserUUID)
		c.Set(CtxTelegramID, claims.TelegramID)

		c.Next()
	}
}
