package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/restoflow/restaurant-manager/utils"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB membuka koneksi database dari environment. DB_DRIVER=sqlite dipakai
// untuk development/test lokal; default-nya MySQL. Credential yang tidak
// lengkap hanya fatal di mode release; di development cukup warning dan
// fallback ke nilai default lokal.
func InitDB() (*gorm.DB, error) {
	if os.Getenv("DB_DRIVER") == "sqlite" {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "restaurant.db"
		}
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")

	if user == "" || name == "" {
		if os.Getenv("GIN_MODE") == "release" {
			return nil, errors.New("missing database credentials (DB_USER, DB_NAME)")
		}
		utils.InfoLogger.Println("Warning: incomplete database credentials, using local defaults")
		if user == "" {
			user = "root"
		}
		if name == "" {
			name = "restaurant_manager"
		}
	}
	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = "3306"
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, password, host, port, name)
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}
