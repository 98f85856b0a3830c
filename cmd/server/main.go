package main

import (
	"context"
	"log"

	"github.com/bymariana/site-backend/internal/router"
	"github.com/bymariana/site-backend/internal/storage"
	"github.com/bymariana/site-backend/pkg/config"
	"github.com/bymariana/site-backend/pkg/firebase"
	"github.com/bymariana/site-backend/validators"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load .env before reading any configuration
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment.")
	}
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Initialize Firebase and the media bucket
	ctx := context.Background()
	firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath, cfg.StorageBucket)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}
	bucket := storage.NewBucket(firebaseApp.Bucket, cfg.StorageBucket, cfg.StoragePublicBaseURL)

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, db.Mongo, bucket, cfg)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
