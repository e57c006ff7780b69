package routes

import (
	"os"
	"strings"

	"wwcrm-backend/config"
	"wwcrm-backend/controllers"
	"wwcrm-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	allowOrigins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		allowOrigins = strings.Split(env, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	customerService := services.NewCustomerService(db)
	invoiceService := services.NewInvoiceService(db)
	messageService := services.NewMessageService(db)

	customerController := controllers.NewCustomerController(customerService, invoiceService)
	invoiceController := controllers.NewInvoiceController(invoiceService, messageService)
	dashboardController := controllers.NewDashboardController(db)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", customerController.Create)
			customers.GET("", customerController.List)
			customers.GET("/:id", customerController.Get)
			customers.PUT("/:id", customerController.Update)
			customers.DELETE("/:id", customerController.Delete)
			customers.GET("/:id/invoices", customerController.ListInvoices)
		}

		// Invoice routes
		invoices := api.Group("/invoices")
		{
			invoices.POST("", invoiceController.Create)
			invoices.GET("", invoiceController.List)
			invoices.GET("/:id", invoiceController.Get)
			invoices.PUT("/:id", invoiceController.Update)
			invoices.DELETE("/:id", invoiceController.Delete)
			invoices.GET("/:id/sms", invoiceController.Message)
		}

		// Dashboard routes
		api.GET("/dashboard", dashboardController.Overview)
	}

	return r
}
