package database

import (
	"os"

	"github.com/restoflow/restaurant-manager/models"
	"github.com/restoflow/restaurant-manager/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed memastikan ada satu user superadmin untuk bootstrap console.
// Idempotent: kalau email-nya sudah ada, tidak ada yang ditulis.
func Seed(db *gorm.DB) error {
	email := os.Getenv("SUPERADMIN_EMAIL")
	if email == "" {
		email = "superadmin@restoflow.local"
	}
	password := os.Getenv("SUPERADMIN_PASSWORD")
	if password == "" {
		password = "ChangeMe-2025"
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		company := models.Company{Name: "Platform", Slug: "platform", IsActive: true}
		if err := tx.Where("slug = ?", company.Slug).FirstOrCreate(&company).Error; err != nil {
			return err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		if err := tx.Create(&models.User{
			CompanyID: company.ID,
			Name:      "Superadmin",
			Email:     email,
			Password:  string(hashed),
			Role:      models.RoleSuperadmin,
		}).Error; err != nil {
			return err
		}

		utils.InfoLogger.Printf("Seeded superadmin user %s", email)
		return nil
	})
}
