package delivery

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gallery-backend/internal/gallery/dto"
	"gallery-backend/internal/gallery/usecase"
	"gallery-backend/internal/httperr"
	"gallery-backend/pkg/apperrors"
)

type GalleryHandler struct {
	galleryUsecase usecase.GalleryUsecase
}

func NewGalleryHandler(galleryUsecase usecase.GalleryUsecase) *GalleryHandler {
	return &GalleryHandler{
		galleryUsecase: galleryUsecase,
	}
}

func (h *GalleryHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.Respond(c, apperrors.E(apperrors.ErrValidation, "image file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	picture, err := h.galleryUsecase.Upload(
		c.Request.Context(),
		c.GetString("userID"),
		data,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.UploadResponse{
		Message: "picture uploaded",
		Picture: picture,
	})
}

func (h *GalleryHandler) List(c *gin.Context) {
	page := 1
	perPage := 100

	if pageStr := c.Query("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed > 0 {
			page = parsed
		}
	}

	if perPageStr := c.Query("perPage"); perPageStr != "" {
		if parsed, err := strconv.Atoi(perPageStr); err == nil && parsed > 0 {
			perPage = parsed
		}
	}

	pictures, total, err := h.galleryUsecase.List(c.Request.Context(), c.GetString("userID"), page, perPage)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Pictures:   pictures,
		TotalItems: total,
	})
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	pictureID := c.Param("pictureId")

	if err := h.galleryUsecase.Delete(c.Request.Context(), c.GetString("userID"), pictureID); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "picture deleted"})
}
