// main.go
package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/topvan/topvan-backend/routes"
	"github.com/topvan/topvan-backend/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Initialize New Relic
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName("TopVan Manager API"),
		newrelic.ConfigLicense(os.Getenv("NEW_RELIC_LICENSE_KEY")),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize New Relic: %v", err)
	}

	// Select the document store backend
	documentStore, cleanup, err := newStore()
	if err != nil {
		log.Fatalf("Failed to initialize document store: %v", err)
	}
	defer cleanup()

	resetIncludesTrips := os.Getenv("RESET_INCLUDES_TRIPS") == "true"
	if resetIncludesTrips {
		log.Println("Monthly reset configured to delete trips")
	}

	// Set up Gin router
	router := gin.Default()

	// Add New Relic middleware
	if app != nil {
		router.Use(nrgin.Middleware(app))
	}

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Change to your frontend URL in production
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Set up routes
	routes.SetupRoutes(router, documentStore, resetIncludesTrips)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	log.Printf("Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newStore picks the document store from STORE_BACKEND: "postgres" for the
// jsonb-backed store, anything else for the in-memory store (offline mode)
func newStore() (store.Store, func(), error) {
	backend := os.Getenv("STORE_BACKEND")
	if backend == "" {
		backend = "memory"
	}

	switch backend {
	case "postgres":
		pg, err := store.NewPostgresStore()
		if err != nil {
			return nil, nil, err
		}
		return pg, pg.Close, nil
	default:
		log.Println("Using in-memory document store")
		return store.NewMemoryStore(), func() {}, nil
	}
}
