package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/restoflow/restaurant-manager/models"
	"github.com/restoflow/restaurant-manager/utils"
)

func setupPlanServiceDB(t *testing.T, name string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Plan{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestSyncLandingPlansIdempotent(t *testing.T) {
	utils.InitLogger()
	db := setupPlanServiceDB(t, "plansvc_sync")
	svc := NewPlanService(db)

	created, updated, err := svc.SyncLandingPlans()
	assert.NoError(t, err)
	assert.Equal(t, len(landingPlans), created)
	assert.Equal(t, 0, updated)

	// Run kedua konvergen: tidak ada yang dibuat atau diubah.
	created, updated, err = svc.SyncLandingPlans()
	assert.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Equal(t, 0, updated)

	var count int64
	db.Model(&models.Plan{}).Count(&count)
	assert.Equal(t, int64(len(landingPlans)), count)
}

func TestSyncLandingPlansRepairsDrift(t *testing.T) {
	utils.InitLogger()
	db := setupPlanServiceDB(t, "plansvc_drift")
	svc := NewPlanService(db)

	_, _, err := svc.SyncLandingPlans()
	assert.NoError(t, err)

	// Ubah harga salah satu plan di luar sync.
	db.Model(&models.Plan{}).Where("name = ?", "pro").Update("price", 1.23)

	created, updated, err := svc.SyncLandingPlans()
	assert.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Equal(t, 1, updated)

	var pro models.Plan
	db.Where("name = ?", "pro").First(&pro)
	assert.Equal(t, 29.99, pro.Price)
}

func TestCleanupDuplicatePlans(t *testing.T) {
	utils.InitLogger()
	db := setupPlanServiceDB(t, "plansvc_cleanup")
	svc := NewPlanService(db)

	_, _, err := svc.SyncLandingPlans()
	assert.NoError(t, err)

	// Simulasikan run sync lama yang tidak idempotent.
	db.Create(&models.Plan{Name: "pro", Price: 29.99, Currency: "EUR", IsActive: true})
	db.Create(&models.Plan{Name: "pro", Price: 29.99, Currency: "EUR", IsActive: true})
	db.Create(&models.Plan{Name: "basic", Price: 0, Currency: "EUR", IsActive: true})

	removed, err := svc.CleanupDuplicatePlans()
	assert.NoError(t, err)
	assert.Equal(t, 3, removed)

	var count int64
	db.Model(&models.Plan{}).Count(&count)
	assert.Equal(t, int64(len(landingPlans)), count)

	// Baris dengan ID terkecil per nama yang dipertahankan.
	var pro models.Plan
	db.Where("name = ?", "pro").Order("id asc").First(&pro)
	var minID uint
	db.Model(&models.Plan{}).Select("min(id)").Where("name = ?", "pro").Scan(&minID)
	assert.Equal(t, minID, pro.ID)

	// Idempotent: run kedua tidak menghapus apa pun.
	removed, err = svc.CleanupDuplicatePlans()
	assert.NoError(t, err)
	assert.Equal(t, 0, removed)
}
