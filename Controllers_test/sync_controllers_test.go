package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/restoflow/restaurant-manager/controllers"
	"github.com/restoflow/restaurant-manager/models"
	"github.com/restoflow/restaurant-manager/services"
	"github.com/restoflow/restaurant-manager/utils"
)

func setupSyncRouter(t *testing.T, name string) (*gin.Engine, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Plan{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	syncCtrl := controllers.NewSyncController(services.NewPlanService(db))
	r.POST("/api/sync-database", syncCtrl.SyncDatabase)
	r.POST("/api/plans/cleanup", syncCtrl.CleanupPlans)
	r.GET("/api/plans", syncCtrl.GetPlans)
	return r, db
}

func TestSyncDatabaseResponseContract(t *testing.T) {
	utils.InitLogger()
	router, db := setupSyncRouter(t, "syncctrl_contract")

	req, _ := http.NewRequest("POST", "/api/sync-database", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Contains(t, response["message"], "3 created")

	// Timestamp harus RFC3339 yang valid.
	ts, ok := response["timestamp"].(string)
	assert.True(t, ok)
	_, err := time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)

	var count int64
	db.Model(&models.Plan{}).Count(&count)
	assert.Equal(t, int64(3), count)

	// Sync kedua idempoten: tidak ada baris baru.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/api/sync-database", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["message"], "0 created")

	db.Model(&models.Plan{}).Count(&count)
	assert.Equal(t, int64(3), count)
}

func TestCleanupPlansRemovesDuplicates(t *testing.T) {
	utils.InitLogger()
	router, db := setupSyncRouter(t, "syncctrl_cleanup")

	for i := 0; i < 2; i++ {
		db.Create(&models.Plan{Name: "basic", Price: 9.99, IsActive: true})
	}

	req, _ := http.NewRequest("POST", "/api/plans/cleanup", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Contains(t, response["message"], "1")

	var count int64
	db.Model(&models.Plan{}).Where("name = ?", "basic").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetPlansPublic(t *testing.T) {
	utils.InitLogger()
	router, _ := setupSyncRouter(t, "syncctrl_public")

	// Tanpa sync, daftar plan kosong.
	req, _ := http.NewRequest("GET", "/api/plans", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	req, _ = http.NewRequest("POST", "/api/sync-database", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	req, _ = http.NewRequest("GET", "/api/plans", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var plans []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &plans))
	assert.Len(t, plans, 3)
}
