package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
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

func setupTestDBForOrders(t *testing.T, name string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(&models.Table{}, &models.TableAuditLog{}, &models.Dish{},
		&models.Order{}, &models.OrderItem{})
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupOrderRouter(db *gorm.DB, companyID uint) (*gin.Engine, *services.TableService) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", uint(1))
		c.Set("companyID", companyID)
		c.Set("role", models.RoleStaff)
		c.Next()
	})

	tableSvc := services.NewTableService(db)
	orderSvc := services.NewOrderService(db, tableSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, tableSvc)
	r.GET("/api/companies/:company_id/orders", orderCtrl.GetCompanyOrders)
	r.POST("/api/companies/:company_id/orders", orderCtrl.CreateOrder)
	r.GET("/api/orders/:order_id", orderCtrl.GetOrderByID)
	r.POST("/api/orders/:order_id/close", orderCtrl.CloseOrder)
	return r, tableSvc
}

func TestOrderLifecycleOccupiesAndFreesTable(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t, "orderctrl_lifecycle")
	router, tableSvc := setupOrderRouter(db, 1)

	actor := services.Actor{UserID: 1, Role: models.RoleStaff}
	table, err := tableSvc.Create(1, services.CreateTableInput{Number: "1", Capacity: 4}, actor)
	assert.NoError(t, err)

	dish := models.Dish{CompanyID: 1, Name: "Gazpacho", Price: 6.5, IsAvailable: true}
	assert.NoError(t, db.Create(&dish).Error)

	// Create order -> meja jadi occupied.
	payload, _ := json.Marshal(map[string]interface{}{
		"table_id": table.ID,
		"items": []map[string]interface{}{
			{"dish_id": dish.ID, "quantity": 2},
		},
	})
	req, _ := http.NewRequest("POST", "/api/companies/1/orders", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var order map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, models.OrderStatusOpen, order["status"])
	assert.Equal(t, 13.0, order["total_amount"])
	orderID := int(order["id"].(float64))

	occupied, _ := tableSvc.Get(1, table.ID)
	assert.Equal(t, models.TableStatusOccupied, occupied.Status)
	assert.Equal(t, uint(orderID), *occupied.CurrentOrderID)

	// Order kedua di meja yang sama -> 409.
	req, _ = http.NewRequest("POST", "/api/companies/1/orders", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Close -> meja kembali available.
	req, _ = http.NewRequest("POST", fmt.Sprintf("/api/orders/%d/close", orderID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	freed, _ := tableSvc.Get(1, table.ID)
	assert.Equal(t, models.TableStatusAvailable, freed.Status)
	assert.Nil(t, freed.CurrentOrderID)

	// Close kedua kali -> 409.
	req, _ = http.NewRequest("POST", fmt.Sprintf("/api/orders/%d/close", orderID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateOrderUnknownDish(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t, "orderctrl_unknown_dish")
	router, tableSvc := setupOrderRouter(db, 1)

	actor := services.Actor{UserID: 1, Role: models.RoleStaff}
	table, _ := tableSvc.Create(1, services.CreateTableInput{Number: "1", Capacity: 4}, actor)

	payload, _ := json.Marshal(map[string]interface{}{
		"table_id": table.ID,
		"items": []map[string]interface{}{
			{"dish_id": 999, "quantity": 1},
		},
	})
	req, _ := http.NewRequest("POST", "/api/companies/1/orders", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Order gagal tidak boleh menyandera meja.
	current, _ := tableSvc.Get(1, table.ID)
	assert.Equal(t, models.TableStatusAvailable, current.Status)
}

func TestGetCompanyOrdersEmpty(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t, "orderctrl_empty")
	router, _ := setupOrderRouter(db, 1)

	req, _ := http.NewRequest("GET", "/api/companies/1/orders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}
