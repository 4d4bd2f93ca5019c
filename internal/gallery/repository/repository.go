package repository

import "gallery-backend/internal/gallery/domain"

// PictureRepository persists picture records and the per-account owner index.
// Create and Delete mutate both the pictures table and picture_refs inside a
// single transaction.
type PictureRepository interface {
	Create(picture *domain.Picture) error
	FindByID(id string) (*domain.Picture, error)
	Delete(picture *domain.Picture) error

	// ListPage pages over all pictures ordered by creation time descending.
	ListPage(offset, limit int) ([]domain.Picture, error)

	// ListPageByOwner is the owner-scoped variant of ListPage.
	ListPageByOwner(ownerID string, offset, limit int) ([]domain.Picture, error)

	CountByOwner(ownerID string) (int64, error)

	// ListRefs returns the owner index for an account, oldest first.
	ListRefs(ownerID string) ([]string, error)
}
