package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gallery-backend/internal/gallery/domain"
)

// pictureRepository implements PictureRepository on gorm.
type pictureRepository struct {
	db *gorm.DB
}

func NewPictureRepository(db *gorm.DB) PictureRepository {
	return &pictureRepository{
		db: db,
	}
}

func (r *pictureRepository) Create(picture *domain.Picture) error {
	picture.ID = uuid.New().String()
	picture.CreatedAt = time.Now()
	picture.UpdatedAt = picture.CreatedAt

	// The picture row and its owner-index row commit together so the index
	// never drifts from the pictures table.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(picture).Error; err != nil {
			return err
		}
		ref := &domain.PictureRef{
			OwnerID:   picture.OwnerID,
			PictureID: picture.ID,
			CreatedAt: picture.CreatedAt,
		}
		return tx.Create(ref).Error
	})
}

func (r *pictureRepository) FindByID(id string) (*domain.Picture, error) {
	var picture domain.Picture
	err := r.db.Where("id = ?", id).First(&picture).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &picture, nil
}

func (r *pictureRepository) Delete(picture *domain.Picture) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", picture.ID).Delete(&domain.Picture{}).Error; err != nil {
			return err
		}
		return tx.Where("owner_id = ? AND picture_id = ?", picture.OwnerID, picture.ID).
			Delete(&domain.PictureRef{}).Error
	})
}

func (r *pictureRepository) ListPage(offset, limit int) ([]domain.Picture, error) {
	var pictures []domain.Picture
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&pictures).Error
	return pictures, err
}

func (r *pictureRepository) ListPageByOwner(ownerID string, offset, limit int) ([]domain.Picture, error) {
	var pictures []domain.Picture
	err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&pictures).Error
	return pictures, err
}

func (r *pictureRepository) CountByOwner(ownerID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Picture{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

func (r *pictureRepository) ListRefs(ownerID string) ([]string, error) {
	var refs []domain.PictureRef
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at ASC").Find(&refs).Error
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.PictureID)
	}
	return ids, nil
}
