package api

import (
	"github.com/gin-gonic/gin"

	galleryUsecase "gallery-backend/internal/gallery/usecase"
	identityUsecase "gallery-backend/internal/identity/usecase"
	"gallery-backend/pkg/config"
	"gallery-backend/pkg/token"
)

type Handler struct {
	identityUsecase identityUsecase.IdentityUsecase
	galleryUsecase  galleryUsecase.GalleryUsecase
	tokens          *token.Service
	config          *config.Config
}

func NewHandler(identityUc identityUsecase.IdentityUsecase, galleryUc galleryUsecase.GalleryUsecase, tokens *token.Service, cfg *config.Config) *Handler {
	return &Handler{
		identityUsecase: identityUc,
		galleryUsecase:  galleryUc,
		tokens:          tokens,
		config:          cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Stored images resolve over HTTP when the fs driver is active.
	if h.config.StorageDriver == "fs" {
		r.Static("/images", h.config.StoragePath)
	}

	SetupRoutes(r, h.identityUsecase, h.galleryUsecase, h.tokens)

	return r.Run(addr)
}
