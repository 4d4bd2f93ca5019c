package dto

import "gallery-backend/internal/gallery/domain"

type UploadResponse struct {
	Message string          `json:"message"`
	Picture *domain.Picture `json:"picture"`
}

type ListResponse struct {
	Pictures   []domain.Picture `json:"pictures"`
	TotalItems int64            `json:"totalItems"`
}
