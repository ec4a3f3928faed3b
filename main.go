package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/restoflow/restaurant-manager/config"
	"github.com/restoflow/restaurant-manager/database"
	"github.com/restoflow/restaurant-manager/middlewares"
	"github.com/restoflow/restaurant-manager/models"
	"github.com/restoflow/restaurant-manager/router"
	"github.com/restoflow/restaurant-manager/services"
	"github.com/restoflow/restaurant-manager/utils"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()

	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	autoMigrate(db)

	if err := database.Seed(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed database: %v", err)
	}

	// Object storage: fatal di release, warning di development.
	var storage services.Uploader
	if cld, err := services.InitCloudinary(); err != nil {
		if ginMode == "release" {
			utils.ErrorLogger.Fatalf("Cloudinary init failed: %v", err)
		}
		utils.InfoLogger.Printf("Warning: Cloudinary not configured, uploads disabled: %v", err)
	} else {
		storage = services.NewCloudinaryStorage(cld)
	}

	tableSvc := services.NewTableService(db)
	sweeper, err := services.NewReservationSweeper(tableSvc)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to build reservation sweeper: %v", err)
	}
	sweeper.Start()
	defer sweeper.Stop()

	r := router.SetupRouter(db, storage)

	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Company{},
		&models.User{},
		&models.Table{},
		&models.TableAuditLog{},
		&models.Dish{},
		&models.Order{},
		&models.OrderItem{},
		&models.Reservation{},
		&models.Plan{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
