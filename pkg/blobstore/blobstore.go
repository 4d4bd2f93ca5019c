// Package blobstore abstracts durable byte storage addressed by relative
// path. Paths are rooted under a single images directory (or bucket prefix).
package blobstore

import "context"

// Store is the blob-storage backend the gallery writes originals and
// thumbnails to.
type Store interface {
	Put(ctx context.Context, path string, data []byte) error
	Get(ctx context.Context, path string) ([]byte, error)
	Delete(ctx context.Context, path string) error
}
