package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/DAQEM/fakestore/actions"
	"github.com/DAQEM/fakestore/auth"
	"github.com/DAQEM/fakestore/logger"
	"github.com/DAQEM/fakestore/models"
	"github.com/DAQEM/fakestore/routes"
	"github.com/DAQEM/fakestore/store"
	"github.com/DAQEM/fakestore/views"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	slogger := logger.New(logger.Options{
		Service: "storefront-api",
		Env:     getEnv("APP_ENV", "dev"),
		Level:   os.Getenv("LOG_LEVEL"),
	})

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	// Components get an explicit store handle; the invalidation registry is
	// shared so every layer signals the same view tree.
	registry := views.NewRegistry()
	catalog := store.NewCatalog(db, registry)
	carts := store.NewCarts(db, registry)
	provider := auth.NewProvider(db, os.Getenv("JWT_SECRET"))
	acts := actions.New(catalog, carts, provider, registry, slogger)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Catalog: catalog,
		Carts:   carts,
		Auth:    provider,
		Actions: acts,
	})

	// Start server
	port := getEnv("PORT", "8080")
	slogger.Info("server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection.
func initDatabase() *gorm.DB {
	cfg := &gorm.Config{
		// Surfaces unique-constraint violations as gorm.ErrDuplicatedKey.
		TranslateError: true,
		// CartItem.ProductID is a non-owning reference: carts may keep items
		// whose product has been deleted, so no FK constraints are created.
		DisableForeignKeyConstraintWhenMigrating: true,
	}

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), cfg)
		if err != nil {
			log.Fatalf("DB connection failed: %v", err)
		}
		return db
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		getEnv("DB_PORT", "5432"),
	)

	db, err := gorm.Open(postgres.Open(dsn), cfg)
	if err != nil {
		log.Fatalf("Failed to connect DB: %v", err)
	}
	return db
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
