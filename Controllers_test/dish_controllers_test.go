package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/restoflow/restaurant-manager/controllers"
	"github.com/restoflow/restaurant-manager/models"
	"github.com/restoflow/restaurant-manager/services"
	"github.com/restoflow/restaurant-manager/utils"
)

func setupTestDBForDishes(t *testing.T, name string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Dish{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupDishRouter(db *gorm.DB, companyID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", uint(1))
		c.Set("companyID", companyID)
		c.Set("role", models.RoleAdmin)
		c.Next()
	})

	dishCtrl := controllers.NewDishController(services.NewDishService(db))
	r.GET("/api/companies/:company_id/dishes", dishCtrl.GetCompanyDishes)
	r.POST("/api/companies/:company_id/dishes", dishCtrl.CreateDish)
	r.PATCH("/api/dishes/:dish_id", dishCtrl.UpdateDish)
	r.DELETE("/api/dishes/:dish_id", dishCtrl.DeleteDish)
	return r
}

func TestGetCompanyDishesMissingID(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForDishes(t, "dishctrl_missing_id")
	router := setupDishRouter(db, 1)

	req, _ := http.NewRequest("GET", "/api/companies/%20/dishes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Company ID is required", response["error"])
}

func TestDishCRUD(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForDishes(t, "dishctrl_crud")
	router := setupDishRouter(db, 1)

	// Menu kosong -> 200 []
	req, _ := http.NewRequest("GET", "/api/companies/1/dishes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	// Create
	payload, _ := json.Marshal(map[string]interface{}{
		"name":        "Paella",
		"description": "Arroz con mariscos",
		"category":    "main",
		"price":       18.5,
	})
	req, _ = http.NewRequest("POST", "/api/companies/1/dishes", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var dish map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &dish))
	assert.Equal(t, "Paella", dish["name"])
	assert.Equal(t, true, dish["is_available"])
	dishID := int(dish["id"].(float64))

	// List sekarang berisi satu dish.
	req, _ = http.NewRequest("GET", "/api/companies/1/dishes", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	var dishes []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &dishes))
	assert.Len(t, dishes, 1)

	// Company lain tetap kosong.
	req, _ = http.NewRequest("GET", "/api/companies/2/dishes", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "[]", w.Body.String())

	// Update
	payload, _ = json.Marshal(map[string]interface{}{
		"name":  "Paella Valenciana",
		"price": 21.0,
	})
	req, _ = http.NewRequest("PATCH", "/api/dishes/"+itoa(dishID), bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Delete
	req, _ = http.NewRequest("DELETE", "/api/dishes/"+itoa(dishID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Delete lagi -> 404
	req, _ = http.NewRequest("DELETE", "/api/dishes/"+itoa(dishID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
