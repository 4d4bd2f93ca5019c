// Package thumbnail derives gallery thumbnails from stored originals.
package thumbnail

import (
	"bytes"
	"context"

	"github.com/disintegration/imaging"

	"gallery-backend/pkg/apperrors"
	"gallery-backend/pkg/blobstore"
)

const (
	// Thumbnails are resized to this width; height follows the aspect ratio.
	width = 400
	// JPEG quality of the derived image.
	quality = 60
)

// Deriver reads a source image from the blob store and produces a smaller,
// lower-quality JPEG rendition of it.
type Deriver struct {
	store blobstore.Store
}

func NewDeriver(store blobstore.Store) *Deriver {
	return &Deriver{store: store}
}

func (d *Deriver) Derive(ctx context.Context, sourcePath string) ([]byte, error) {
	data, err := d.store.Get(ctx, sourcePath)
	if err != nil {
		return nil, apperrors.Ef(apperrors.ErrMedia, "reading source image %s: %v", sourcePath, err)
	}

	src, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, apperrors.Ef(apperrors.ErrMedia, "decoding source image %s: %v", sourcePath, err)
	}

	resized := imaging.Resize(src, width, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, apperrors.Ef(apperrors.ErrMedia, "encoding thumbnail for %s: %v", sourcePath, err)
	}

	return buf.Bytes(), nil
}
