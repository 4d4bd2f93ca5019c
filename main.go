package main

import (
	"context"
	"log"

	api "gallery-backend/cmd/api"
	gallerydomain "gallery-backend/internal/gallery/domain"
	galleryRepo "gallery-backend/internal/gallery/repository"
	"gallery-backend/internal/gallery/thumbnail"
	galleryUsecase "gallery-backend/internal/gallery/usecase"
	identitydomain "gallery-backend/internal/identity/domain"
	identityRepo "gallery-backend/internal/identity/repository"
	identityUsecase "gallery-backend/internal/identity/usecase"
	"gallery-backend/pkg/blobstore"
	"gallery-backend/pkg/config"
	"gallery-backend/pkg/database"
	"gallery-backend/pkg/logging"
	"gallery-backend/pkg/token"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger := logging.NewDefault()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&identitydomain.Account{}, &gallerydomain.Picture{}, &gallerydomain.PictureRef{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize blob storage
	var blobs blobstore.Store
	switch cfg.StorageDriver {
	case "s3":
		blobs, err = blobstore.NewS3Store(context.Background(), blobstore.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		if err != nil {
			log.Fatal("Failed to initialize S3 storage:", err)
		}
	default:
		blobs = blobstore.NewFSStore(cfg.StoragePath)
	}

	// Initialize repositories (dependency injection)
	accountRepo := identityRepo.NewAccountRepository(db)
	pictureRepo := galleryRepo.NewPictureRepository(db)

	// Initialize services and use cases
	tokens := token.NewService(cfg.AuthSecret, cfg.TokenExpiry)
	deriver := thumbnail.NewDeriver(blobs)

	identityUc := identityUsecase.NewIdentityUsecase(accountRepo, tokens)
	galleryUc := galleryUsecase.NewGalleryUsecase(pictureRepo, blobs, deriver, logger)

	// Initialize HTTP handler
	handler := api.NewHandler(identityUc, galleryUc, tokens, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
