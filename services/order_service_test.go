package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/restoflow/restaurant-manager/models"
	"github.com/restoflow/restaurant-manager/utils"
)

func setupOrderServiceDB(t *testing.T, name string) *gorm.DB {
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

// Order terbuka harus selalu bisa ditutup: meja yang menampungnya tidak
// boleh keluar dari status occupied lewat jalur lain.
func TestOpenOrderAlwaysClosable(t *testing.T) {
	utils.InitLogger()
	db := setupOrderServiceDB(t, "ordersvc_closable")
	tables := NewTableService(db)
	orders := NewOrderService(db, tables)

	table, err := tables.Create(1, CreateTableInput{Number: "1", Capacity: 4}, adminActor)
	assert.NoError(t, err)
	dish := models.Dish{CompanyID: 1, Name: "Croquetas", Price: 5.0, IsAvailable: true}
	assert.NoError(t, db.Create(&dish).Error)

	order, err := orders.Create(1, CreateOrderInput{
		TableID: table.ID,
		Items:   []OrderItemInput{{DishID: dish.ID, Quantity: 2}},
	}, staffActor)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusOpen, order.Status)

	// Meja dengan order terbuka tidak bisa di-nonaktifkan admin.
	_, err = tables.MarkOutOfService(1, table.ID, adminActor)
	var conflictErr *utils.ConflictError
	assert.ErrorAs(t, err, &conflictErr)

	// Order tetap bisa ditutup dan mejanya bebas.
	closed, err := orders.Close(1, order.ID, staffActor)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusClosed, closed.Status)
	assert.NotNil(t, closed.ClosedAt)

	freed, _ := tables.Get(1, table.ID)
	assert.Equal(t, models.TableStatusAvailable, freed.Status)
	assert.Nil(t, freed.CurrentOrderID)

	// Sekarang meja bisa keluar dari layanan.
	_, err = tables.MarkOutOfService(1, table.ID, adminActor)
	assert.NoError(t, err)
}

func TestCancelOrderFreesTable(t *testing.T) {
	utils.InitLogger()
	db := setupOrderServiceDB(t, "ordersvc_cancel")
	tables := NewTableService(db)
	orders := NewOrderService(db, tables)

	table, _ := tables.Create(1, CreateTableInput{Number: "2", Capacity: 2}, adminActor)
	dish := models.Dish{CompanyID: 1, Name: "Pulpo", Price: 14.0, IsAvailable: true}
	assert.NoError(t, db.Create(&dish).Error)

	order, err := orders.Create(1, CreateOrderInput{
		TableID: table.ID,
		Items:   []OrderItemInput{{DishID: dish.ID, Quantity: 1}},
	}, staffActor)
	assert.NoError(t, err)

	cancelled, err := orders.Cancel(1, order.ID, staffActor)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)

	freed, _ := tables.Get(1, table.ID)
	assert.Equal(t, models.TableStatusAvailable, freed.Status)
}
