package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/restoflow/restaurant-manager/utils"
)

// WebSocketAuthMiddleware: browser tidak bisa set header di handshake
// websocket, jadi token dikirim lewat query param.
func WebSocketAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("companyID", claims.CompanyID)
		c.Set("role", claims.Role)

		c.Next()
	}
}
