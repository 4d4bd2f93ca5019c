package usecase

import (
	"context"

	"gallery-backend/internal/gallery/domain"
)

// GalleryUsecase orchestrates the picture lifecycle: validated upload with
// thumbnail derivation, paginated listing and ownership-checked deletion.
type GalleryUsecase interface {
	Upload(ctx context.Context, accountID string, data []byte, filename, mimeType string) (*domain.Picture, error)
	List(ctx context.Context, accountID string, page, perPage int) ([]domain.Picture, int64, error)
	Delete(ctx context.Context, accountID, pictureID string) error
}
