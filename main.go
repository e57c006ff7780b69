package main

import (
	"fmt"
	"log"
	"os"

	"wwcrm-backend/config"
	"wwcrm-backend/models"
	"wwcrm-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Invoice{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(db)
	printRoutes(r)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
