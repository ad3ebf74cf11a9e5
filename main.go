package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"smart-order/controllers"
	"smart-order/routes"
	"smart-order/store"
	"smart-order/store/memory"
	"smart-order/store/mongo"
	"smart-order/store/postgres"
)

// openStore picks the backend from STORE_BACKEND. The in-memory store is the
// default so the server runs with no external services.
func openStore(ctx context.Context) (store.Store, error) {
	switch backend := os.Getenv("STORE_BACKEND"); backend {
	case "", "memory":
		log.Println("Using in-memory store")
		return memory.New(), nil
	case "mongo":
		database := os.Getenv("MONGO_DB")
		if database == "" {
			database = "smartorder"
		}
		log.Println("Using MongoDB store, database:", database)
		return mongo.Connect(ctx, os.Getenv("MONGO_URI"), database)
	case "postgres":
		log.Println("Using PostgreSQL store")
		return postgres.Connect(ctx, os.Getenv("DATABASE_URL"))
	default:
		log.Fatalf("Unknown STORE_BACKEND: %q", backend)
		return nil, nil
	}
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using the environment as-is")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	dataStore, err := openStore(ctx)
	cancel()
	if err != nil {
		log.Fatalf("Error opening store: %v", err)
	}
	defer dataStore.Close(context.Background())

	controllers.SetStore(dataStore)

	router := gin.New()
	router.Use(gin.Logger())

	// Enable CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:9000"}, // Change this to your frontend URL if needed
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve the built frontend
	router.Static("/frontend", filepath.Join(".", "frontend", "dist"))
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/frontend") {
			c.File(filepath.Join(".", "frontend", "dist", "index.html"))
		} else {
			c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
		}
	})

	// API routes
	routes.UserRoutes(router)
	routes.MenuRoutes(router)
	routes.OrderRoutes(router)
	routes.TableRoutes(router)
	routes.CompanyRoutes(router)

	// Run the server
	router.Run(":" + port)
}
