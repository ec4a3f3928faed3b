package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/restoflow/restaurant-manager/models"
	"github.com/restoflow/restaurant-manager/utils"
)

// RequireAdmin membatasi route untuk admin (atau superadmin).
func RequireAdmin() gin.HandlerFunc {
	return requireRoles(models.RoleAdmin, models.RoleSuperadmin)
}

// RequireSuperadmin membatasi route lintas-tenant (manajemen company).
func RequireSuperadmin() gin.HandlerFunc {
	return requireRoles(models.RoleSuperadmin)
}

func requireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
			c.Abort()
			return
		}

		for _, role := range roles {
			if userRole == role {
				c.Next()
				return
			}
		}

		utils.RespondError(c, http.StatusForbidden, errors.New("insufficient role"))
		c.Abort()
	}
}
