package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-cafe-ordering/database"
	"go-cafe-ordering/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(ctx); err != nil {
		log.Println("Error creating indexes:", err)
	}
	if err := database.SeedMenu(ctx); err != nil {
		log.Println("Error seeding menu:", err)
	}
	cancel()

	router := gin.New()
	router.Use(gin.Logger())

	// Enable CORS for the browser client
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length", "token"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve the built frontend, falling back to index.html for its routes
	router.Static("/frontend", filepath.Join(".", "frontend", "dist"))
	router.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/frontend") {
			c.File(filepath.Join(".", "frontend", "dist", "index.html"))
		} else {
			c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
		}
	})

	// API routes
	routes.UserRoutes(router)
	routes.MenuRoutes(router)
	routes.CartRoutes(router)
	routes.OrderRoutes(router)

	router.Run(":" + port)
}
