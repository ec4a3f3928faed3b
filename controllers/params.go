package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/restoflow/restaurant-manager/models"
	"github.com/restoflow/restaurant-manager/services"
	"github.com/restoflow/restaurant-manager/utils"
)

// companyIDParam membaca path param company_id. Kosong -> 400 dengan pesan
// kontrak "Company ID is required".
func companyIDParam(c *gin.Context) (uint, error) {
	raw := strings.TrimSpace(c.Param("company_id"))
	if raw == "" {
		return 0, utils.NewValidationError("Company ID is required")
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, utils.NewValidationError("Company ID is invalid")
	}
	return uint(id), nil
}

func idParam(c *gin.Context, name string) (uint, error) {
	raw := strings.TrimSpace(c.Param(name))
	if raw == "" {
		return 0, utils.NewValidationError("%s is required", name)
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, utils.NewValidationError("%s is invalid", name)
	}
	return uint(id), nil
}

// actorFromContext membaca identitas yang di-set AuthMiddleware. Route tanpa
// auth menghasilkan actor kosong (userID 0).
func actorFromContext(c *gin.Context) services.Actor {
	actor := services.Actor{}
	if v, exists := c.Get("userID"); exists {
		if id, ok := v.(uint); ok {
			actor.UserID = id
		}
	}
	if v, exists := c.Get("role"); exists {
		if role, ok := v.(string); ok {
			actor.Role = role
		}
	}
	return actor
}

func companyFromContext(c *gin.Context) uint {
	if v, exists := c.Get("companyID"); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// canAccessCompany: user hanya boleh memutasi data company-nya sendiri,
// kecuali superadmin yang lintas-tenant.
func canAccessCompany(c *gin.Context, companyID uint) bool {
	if v, exists := c.Get("role"); exists {
		if role, ok := v.(string); ok && role == models.RoleSuperadmin {
			return true
		}
	}
	return companyFromContext(c) == companyID
}
