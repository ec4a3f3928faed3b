package router

import (
	"github.com/gin-gonic/gin"
	"github.com/restoflow/restaurant-manager/controllers"
	"github.com/restoflow/restaurant-manager/middlewares"
	"github.com/restoflow/restaurant-manager/services"
	"gorm.io/gorm"
)

// SetupRouter merakit semua service dan controller lalu memasang route.
// Semua dependency dibangun eksplisit di sini dan di-inject, tanpa handle
// global.
func SetupRouter(db *gorm.DB, storage services.Uploader) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Services
	tableSvc := services.NewTableService(db)
	dishSvc := services.NewDishService(db)
	orderSvc := services.NewOrderService(db, tableSvc)
	reservationSvc := services.NewReservationService(db, tableSvc)
	planSvc := services.NewPlanService(db)

	// Controllers
	userCtrl := controllers.NewUserController(db)
	companyCtrl := controllers.NewCompanyController(db)
	tableCtrl := controllers.NewTableController(tableSvc)
	dishCtrl := controllers.NewDishController(dishSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, tableSvc)
	reservationCtrl := controllers.NewReservationController(reservationSvc)
	uploadCtrl := controllers.NewUploadController(storage)
	syncCtrl := controllers.NewSyncController(planSvc)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	public := r.Group("/api")
	{
		// Rate limit ketat untuk login/register
		authRoutes := public.Group("/")
		authRoutes.Use(middlewares.NewStrictRateLimiter())
		{
			authRoutes.POST("/register", userCtrl.Register)
			authRoutes.POST("/login", userCtrl.Login)
		}

		// Menu digital & denah meja bisa dilihat tanpa login
		public.GET("/companies/:company_id/dishes", dishCtrl.GetCompanyDishes)
		public.GET("/companies/:company_id/tables", tableCtrl.GetCompanyTables)

		// Plan untuk landing page
		public.GET("/plans", syncCtrl.GetPlans)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/api")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/profile", userCtrl.GetProfile)

		// COMPANY-SCOPED LISTS & CREATES
		auth.GET("/companies/:company_id/orders", orderCtrl.GetCompanyOrders)
		auth.GET("/companies/:company_id/reservations", reservationCtrl.GetCompanyReservations)
		auth.POST("/companies/:company_id/dishes", dishCtrl.CreateDish)
		auth.POST("/companies/:company_id/orders", orderCtrl.CreateOrder)
		auth.POST("/companies/:company_id/reservations", reservationCtrl.CreateReservation)
		auth.POST("/companies/:company_id/tables", tableCtrl.CreateTable)

		// DISHES
		auth.GET("/dishes/:dish_id", dishCtrl.GetDishByID)
		auth.PATCH("/dishes/:dish_id", dishCtrl.UpdateDish)
		auth.DELETE("/dishes/:dish_id", dishCtrl.DeleteDish)

		// ORDERS
		auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		auth.POST("/orders/:order_id/serve", orderCtrl.MarkOrderServed)
		auth.POST("/orders/:order_id/close", orderCtrl.CloseOrder)
		auth.POST("/orders/:order_id/cancel", orderCtrl.CancelOrder)

		// RESERVATIONS
		auth.POST("/reservations/:reservation_id/cancel", reservationCtrl.CancelReservation)

		// TABLES (transisi state machine + audit trail)
		auth.GET("/tables/:table_id", tableCtrl.GetTableByID)
		auth.PATCH("/tables/:table_id", tableCtrl.UpdateTable)
		auth.DELETE("/tables/:table_id", tableCtrl.DeleteTable)
		auth.GET("/tables/:table_id/logs", tableCtrl.GetTableLogs)
		auth.POST("/tables/:table_id/reserve", tableCtrl.ReserveTable)
		auth.POST("/tables/:table_id/free", tableCtrl.FreeTable)

		// UPLOAD
		auth.POST("/upload", uploadCtrl.Upload)

		// ADMIN
		admin := auth.Group("/")
		admin.Use(middlewares.RequireAdmin())
		{
			admin.POST("/tables/:table_id/out-of-service", tableCtrl.MarkOutOfService)
			admin.POST("/tables/:table_id/restore", tableCtrl.RestoreTable)
			admin.POST("/sync-database", syncCtrl.SyncDatabase)
			admin.POST("/plans/cleanup", syncCtrl.CleanupPlans)
		}

		// SUPERADMIN (lintas tenant)
		superadmin := auth.Group("/")
		superadmin.Use(middlewares.RequireSuperadmin())
		{
			superadmin.GET("/companies", companyCtrl.GetAllCompanies)
			superadmin.POST("/companies", companyCtrl.CreateCompany)
		}
	}

	// WebSocket feed untuk dashboard (token via query param)
	ws := r.Group("/ws")
	ws.Use(middlewares.WebSocketAuthMiddleware())
	{
		ws.GET("/tables", controllers.TableFeedHandler)
	}

	return r
}
