package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"gallery-backend/internal/gallery/domain"
	"gallery-backend/internal/gallery/repository"
	"gallery-backend/internal/gallery/thumbnail"
	"gallery-backend/pkg/apperrors"
	"gallery-backend/pkg/blobstore"
	"gallery-backend/pkg/logging"
)

const (
	defaultPage    = 1
	defaultPerPage = 100
)

var supportedMimeTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpg":  {},
	"image/jpeg": {},
	"image/heic": {},
	"image/heif": {},
}

// galleryUsecase implements GalleryUsecase.
type galleryUsecase struct {
	pictureRepo repository.PictureRepository
	blobs       blobstore.Store
	thumbnails  *thumbnail.Deriver
	log         logging.Logger
}

func NewGalleryUsecase(pictureRepo repository.PictureRepository, blobs blobstore.Store, thumbnails *thumbnail.Deriver, log logging.Logger) GalleryUsecase {
	return &galleryUsecase{
		pictureRepo: pictureRepo,
		blobs:       blobs,
		thumbnails:  thumbnails,
		log:         log,
	}
}

func (u *galleryUsecase) Upload(ctx context.Context, accountID string, data []byte, filename, mimeType string) (*domain.Picture, error) {
	if len(data) == 0 {
		return nil, apperrors.E(apperrors.ErrValidation, "image file is required")
	}
	if _, ok := supportedMimeTypes[strings.ToLower(mimeType)]; !ok {
		return nil, apperrors.Ef(apperrors.ErrValidation, "unsupported image type %q", mimeType)
	}

	imagePath, thumbPath := storagePaths(filename)

	if err := u.blobs.Put(ctx, imagePath, data); err != nil {
		return nil, fmt.Errorf("storing image: %w", err)
	}

	// From here on a failure leaves the already-written original behind as
	// cleanup debt; the upload itself still fails.
	thumbData, err := u.thumbnails.Derive(ctx, imagePath)
	if err != nil {
		u.log.Warn(ctx, "thumbnail derivation failed, original blob orphaned", "path", imagePath, "error", err)
		return nil, err
	}

	if err := u.blobs.Put(ctx, thumbPath, thumbData); err != nil {
		u.log.Warn(ctx, "thumbnail store failed, original blob orphaned", "path", imagePath, "error", err)
		return nil, fmt.Errorf("storing thumbnail: %w", err)
	}

	picture := &domain.Picture{
		ImageURL:     imagePath,
		ThumbnailURL: thumbPath,
		OwnerID:      accountID,
	}
	if err := u.pictureRepo.Create(picture); err != nil {
		u.log.Warn(ctx, "picture record create failed, blobs orphaned",
			"image", imagePath, "thumbnail", thumbPath, "error", err)
		return nil, fmt.Errorf("creating picture record: %w", err)
	}

	return picture, nil
}

// List pages over all pictures newest-first while totalItems counts only the
// caller's pictures, matching the service's historical contract. Callers must
// not assume the returned page is owner-scoped.
func (u *galleryUsecase) List(ctx context.Context, accountID string, page, perPage int) ([]domain.Picture, int64, error) {
	if page < 1 {
		page = defaultPage
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}

	total, err := u.pictureRepo.CountByOwner(accountID)
	if err != nil {
		return nil, 0, err
	}

	pictures, err := u.pictureRepo.ListPage((page-1)*perPage, perPage)
	if err != nil {
		return nil, 0, err
	}
	if pictures == nil {
		pictures = []domain.Picture{}
	}

	return pictures, total, nil
}

func (u *galleryUsecase) Delete(ctx context.Context, accountID, pictureID string) error {
	picture, err := u.pictureRepo.FindByID(pictureID)
	if err != nil {
		return err
	}
	if picture == nil {
		return apperrors.E(apperrors.ErrNotFound, "picture not found")
	}
	if picture.OwnerID != accountID {
		return apperrors.E(apperrors.ErrForbidden, "picture belongs to another user")
	}

	// Blob deletes are best-effort: a failure is logged and the record
	// deletion proceeds regardless.
	if err := u.blobs.Delete(ctx, picture.ImageURL); err != nil {
		u.log.Warn(ctx, "failed to delete image blob", "path", picture.ImageURL, "error", err)
	}
	if err := u.blobs.Delete(ctx, picture.ThumbnailURL); err != nil {
		u.log.Warn(ctx, "failed to delete thumbnail blob", "path", picture.ThumbnailURL, "error", err)
	}

	return u.pictureRepo.Delete(picture)
}

// storagePaths builds the blob paths for an upload: a millisecond-prefixed
// collision-resistant name for the original and the matching _thumbnail.jpg
// path for its derived image.
func storagePaths(filename string) (imagePath, thumbPath string) {
	ext := strings.ToLower(filepath.Ext(filename))
	base := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.New().String())
	return base + ext, base + "_thumbnail.jpg"
}
