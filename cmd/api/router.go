package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	gallerydelivery "gallery-backend/internal/gallery/delivery"
	galleryUsecase "gallery-backend/internal/gallery/usecase"
	"gallery-backend/internal/identity/delivery"
	identityUsecase "gallery-backend/internal/identity/usecase"
	"gallery-backend/pkg/token"
)

func SetupRoutes(r *gin.Engine, identityUc identityUsecase.IdentityUsecase, galleryUc galleryUsecase.GalleryUsecase, tokens *token.Service) {
	identityHandler := delivery.NewIdentityHandler(identityUc)
	galleryHandler := gallerydelivery.NewGalleryHandler(galleryUc)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/signup", identityHandler.Signup)
		auth.POST("/login", identityHandler.Login)
	}

	// User routes (protected)
	user := r.Group("/user")
	user.Use(delivery.AuthMiddleware(tokens))
	{
		user.GET("", identityHandler.GetProfile)
		user.PUT("", identityHandler.UpdateProfile)
		user.PUT("/password", identityHandler.UpdatePassword)
	}

	// Gallery routes (protected)
	gallery := r.Group("/gallery")
	gallery.Use(delivery.AuthMiddleware(tokens))
	{
		gallery.POST("", galleryHandler.Upload)
		gallery.GET("", galleryHandler.List)
		gallery.DELETE("/:pictureId", galleryHandler.Delete)
	}
}
