package router

import (
	"log"

	"github.com/bymariana/site-backend/internal/handlers"
	"github.com/bymariana/site-backend/internal/middleware"
	"github.com/bymariana/site-backend/internal/models"
	"github.com/bymariana/site-backend/internal/repositories"
	"github.com/bymariana/site-backend/internal/storage"
	"github.com/bymariana/site-backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, bucket *storage.Bucket, cfg *config.Config) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.Like{},
		&models.Comment{},
		&models.Report{},
		&models.AnonVisitor{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	// The two media like tables share one model
	for _, table := range []string{models.PhotoLikesTable, models.VideoLikesTable} {
		if err := pgdb.Table(table).AutoMigrate(&models.MediaLike{}); err != nil {
			log.Fatalf("Failed to auto migrate %s: %v", table, err)
		}
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	postRepo := repositories.NewMongoPostRepository(mgClient.Database(cfg.MongoDatabase))
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	photoLikeRepo := repositories.NewPostgresMediaLikeRepository(pgdb, models.PhotoLikesTable)
	videoLikeRepo := repositories.NewPostgresMediaLikeRepository(pgdb, models.VideoLikesTable)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	reportRepo := repositories.NewPostgresReportRepository(pgdb)
	visitorRepo := repositories.NewPostgresVisitorRepository(pgdb)

	// --- API routes; reads work anonymously, writes require X-Anon-ID ---
	api := e.Group("/api/v1")
	api.Use(middleware.AnonIdentity())
	log.Println("Anonymous identity middleware applied to /api/v1 group.")

	// Post routes
	postHandler := handlers.NewPostHandler(postRepo, likeRepo, bucket)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	// Like routes
	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	// Report routes
	reportHandler := handlers.NewReportHandler(reportRepo, postRepo)
	reportHandler.RegisterReportRoutes(api)
	log.Println("Report routes configured.")

	// Media routes (gallery, videos, path-keyed likes, signed URLs)
	mediaHandler := handlers.NewMediaHandler(photoLikeRepo, videoLikeRepo, bucket, cfg.SignedURLTTL)
	mediaHandler.RegisterMediaRoutes(api)
	log.Println("Media routes configured.")

	// Upload routes
	uploadHandler := handlers.NewUploadHandler(postRepo, visitorRepo, bucket, cfg.ApproveUploads)
	uploadHandler.RegisterUploadRoutes(api)
	log.Println("Upload routes configured.")

	// Booking widget config
	bookingHandler := handlers.NewBookingHandler(cfg.Booking)
	bookingHandler.RegisterBookingRoutes(api)
	log.Println("Booking routes configured.")

	log.Println("All routes configured.")
}
