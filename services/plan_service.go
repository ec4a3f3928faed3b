package services

import (
	"github.com/restoflow/restaurant-manager/models"
	"github.com/restoflow/restaurant-manager/utils"
	"gorm.io/gorm"
)

// landingPlans adalah konfigurasi referensi subscription plan untuk landing
// page. Direkonsiliasi ke tabel plans oleh SyncLandingPlans, keyed by Name.
var landingPlans = []models.Plan{
	{
		Name:     "basic",
		Price:    0,
		Currency: "EUR",
		Features: `["digital_menu","qr_ordering"]`,
		IsActive: true,
	},
	{
		Name:     "pro",
		Price:    29.99,
		Currency: "EUR",
		Features: `["digital_menu","qr_ordering","reservations","table_management"]`,
		IsActive: true,
	},
	{
		Name:     "enterprise",
		Price:    79.99,
		Currency: "EUR",
		Features: `["digital_menu","qr_ordering","reservations","table_management","multi_location","priority_support"]`,
		IsActive: true,
	},
}

// PlanService merekonsiliasi konfigurasi plan landing page ke database.
// Kedua operasinya idempotent: menjalankan dua kali berturut-turut tidak
// mengubah apa pun setelah run pertama konvergen.
type PlanService struct {
	db *gorm.DB
}

func NewPlanService(db *gorm.DB) *PlanService {
	return &PlanService{db: db}
}

// SyncLandingPlans meng-upsert setiap plan referensi berdasarkan Name:
// buat yang belum ada, perbaiki yang melenceng, biarkan yang sudah cocok.
func (s *PlanService) SyncLandingPlans() (created, updated int, err error) {
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, ref := range landingPlans {
			var existing models.Plan
			res := tx.Where("name = ?", ref.Name).Order("id asc").Limit(1).Find(&existing)
			if res.Error != nil {
				return res.Error
			}

			if res.RowsAffected == 0 {
				plan := ref
				if err := tx.Create(&plan).Error; err != nil {
					return err
				}
				created++
				continue
			}

			if existing.Price != ref.Price || existing.Currency != ref.Currency ||
				existing.Features != ref.Features || existing.IsActive != ref.IsActive {
				if err := tx.Model(&existing).Updates(map[string]interface{}{
					"price":     ref.Price,
					"currency":  ref.Currency,
					"features":  ref.Features,
					"is_active": ref.IsActive,
				}).Error; err != nil {
					return err
				}
				updated++
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	utils.InfoLogger.Printf("Landing plans synced: %d created, %d updated", created, updated)
	return created, updated, nil
}

// CleanupDuplicatePlans menghapus duplikat hasil run lama yang tidak
// idempotent: baris dengan ID terkecil per Name dipertahankan, sisanya
// dihapus permanen.
func (s *PlanService) CleanupDuplicatePlans() (removed int, err error) {
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var plans []models.Plan
		if err := tx.Order("name asc, id asc").Find(&plans).Error; err != nil {
			return err
		}

		seen := make(map[string]bool)
		for _, plan := range plans {
			if !seen[plan.Name] {
				seen[plan.Name] = true
				continue
			}
			if err := tx.Delete(&models.Plan{}, plan.ID).Error; err != nil {
				return err
			}
			removed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	utils.InfoLogger.Printf("Duplicate plans cleaned up: %d removed", removed)
	return removed, nil
}

// ListPlans mengembalikan plan aktif untuk landing page.
func (s *PlanService) ListPlans() ([]models.Plan, error) {
	plans := make([]models.Plan, 0)
	err := s.db.Where("is_active = ?", true).Order("price asc").Find(&plans).Error
	return plans, err
}
