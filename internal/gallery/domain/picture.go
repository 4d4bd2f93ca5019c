package domain

import "time"

// Picture is a stored image owned by a single account. ImageURL and
// ThumbnailURL are blob-store paths, not absolute URLs.
type Picture struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	ImageURL     string    `json:"imageUrl"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	OwnerID      string    `json:"creator" gorm:"index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Picture) TableName() string {
	return "pictures"
}

// PictureRef is a row of the per-account owner index. It is mutated only in
// the same transaction as the matching pictures row.
type PictureRef struct {
	OwnerID   string    `json:"owner_id" gorm:"primaryKey"`
	PictureID string    `json:"picture_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}

func (PictureRef) TableName() string {
	return "picture_refs"
}
