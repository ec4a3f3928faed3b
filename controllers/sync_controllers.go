package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/restoflow/restaurant-manager/services"
	"github.com/restoflow/restaurant-manager/utils"
)

type SyncController struct {
	Plans *services.PlanService
}

func NewSyncController(plans *services.PlanService) *SyncController {
	return &SyncController{Plans: plans}
}

// SyncDatabase merekonsiliasi konfigurasi landing plan ke database.
// Fire-and-forget dari sisi route: satu invokasi, tanpa progress report.
func (sc *SyncController) SyncDatabase(c *gin.Context) {
	created, updated, err := sc.Plans.SyncLandingPlans()
	if err != nil {
		utils.ErrorLogger.Printf("Database sync failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     err.Error(),
			"timestamp": time.Now().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   fmt.Sprintf("Plans synced: %d created, %d updated", created, updated),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// CleanupPlans menghapus plan duplikat hasil run sync lama.
func (sc *SyncController) CleanupPlans(c *gin.Context) {
	removed, err := sc.Plans.CleanupDuplicatePlans()
	if err != nil {
		utils.ErrorLogger.Printf("Plan cleanup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     err.Error(),
			"timestamp": time.Now().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   fmt.Sprintf("Duplicate plans removed: %d", removed),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// GetPlans -> plan aktif untuk landing page (public)
func (sc *SyncController) GetPlans(c *gin.Context) {
	plans, err := sc.Plans.ListPlans()
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, plans)
}
