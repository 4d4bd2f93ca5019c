package usecase

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery-backend/internal/gallery/domain"
	"gallery-backend/internal/gallery/thumbnail"
	"gallery-backend/pkg/apperrors"
	"gallery-backend/pkg/blobstore"
	"gallery-backend/pkg/logging"
)

// fakePictureRepo is an in-memory PictureRepository with deterministic,
// strictly increasing creation times.
type fakePictureRepo struct {
	pictures map[string]*domain.Picture
	refs     map[string][]string // ownerID -> picture ids, oldest first
	clock    time.Time
}

func newFakePictureRepo() *fakePictureRepo {
	return &fakePictureRepo{
		pictures: make(map[string]*domain.Picture),
		refs:     make(map[string][]string),
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *fakePictureRepo) Create(picture *domain.Picture) error {
	r.clock = r.clock.Add(time.Second)
	picture.ID = uuid.New().String()
	picture.CreatedAt = r.clock
	picture.UpdatedAt = r.clock
	cp := *picture
	r.pictures[picture.ID] = &cp
	r.refs[picture.OwnerID] = append(r.refs[picture.OwnerID], picture.ID)
	return nil
}

func (r *fakePictureRepo) FindByID(id string) (*domain.Picture, error) {
	p, ok := r.pictures[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePictureRepo) Delete(picture *domain.Picture) error {
	delete(r.pictures, picture.ID)
	ids := r.refs[picture.OwnerID]
	for i, id := range ids {
		if id == picture.ID {
			r.refs[picture.OwnerID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakePictureRepo) sorted() []domain.Picture {
	all := make([]domain.Picture, 0, len(r.pictures))
	for _, p := range r.pictures {
		all = append(all, *p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return all
}

func (r *fakePictureRepo) ListPage(offset, limit int) ([]domain.Picture, error) {
	all := r.sorted()
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakePictureRepo) ListPageByOwner(ownerID string, offset, limit int) ([]domain.Picture, error) {
	var owned []domain.Picture
	for _, p := range r.sorted() {
		if p.OwnerID == ownerID {
			owned = append(owned, p)
		}
	}
	if offset >= len(owned) {
		return nil, nil
	}
	end := offset + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[offset:end], nil
}

func (r *fakePictureRepo) CountByOwner(ownerID string) (int64, error) {
	return int64(len(r.refs[ownerID])), nil
}

func (r *fakePictureRepo) ListRefs(ownerID string) ([]string, error) {
	return append([]string(nil), r.refs[ownerID]...), nil
}

// failingDeleteStore wraps a Store and fails every Delete.
type failingDeleteStore struct {
	blobstore.Store
}

func (s *failingDeleteStore) Delete(ctx context.Context, path string) error {
	return errors.New("blob backend unavailable")
}

func quietLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: 50, B: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestGallery(t *testing.T) (GalleryUsecase, *fakePictureRepo, blobstore.Store) {
	t.Helper()
	repo := newFakePictureRepo()
	blobs := blobstore.NewFSStore(t.TempDir())
	uc := NewGalleryUsecase(repo, blobs, thumbnail.NewDeriver(blobs), quietLogger())
	return uc, repo, blobs
}

func TestUpload_ValidPNG(t *testing.T) {
	t.Parallel()

	uc, repo, blobs := newTestGallery(t)
	ctx := context.Background()

	picture, err := uc.Upload(ctx, "owner-a", testPNG(t, 800, 600), "vacation.png", "image/png")
	require.NoError(t, err)
	require.NotEmpty(t, picture.ID)
	assert.Equal(t, "owner-a", picture.OwnerID)
	assert.NotEmpty(t, picture.ImageURL)
	assert.True(t, bytes.HasSuffix([]byte(picture.ThumbnailURL), []byte("_thumbnail.jpg")))

	// Both blobs are readable and the thumbnail is 400px wide.
	_, err = blobs.Get(ctx, picture.ImageURL)
	require.NoError(t, err)

	thumbData, err := blobs.Get(ctx, picture.ThumbnailURL)
	require.NoError(t, err)
	cfg, _, err := image.DecodeConfig(bytes.NewReader(thumbData))
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Width)

	// The owner index picked up the new id.
	refs, err := repo.ListRefs("owner-a")
	require.NoError(t, err)
	assert.Contains(t, refs, picture.ID)
}

func TestUpload_UnsupportedMime(t *testing.T) {
	t.Parallel()

	uc, repo, _ := newTestGallery(t)

	_, err := uc.Upload(context.Background(), "owner-a", testPNG(t, 10, 10), "anim.gif", "image/gif")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.Empty(t, repo.pictures)
}

func TestUpload_NoFile(t *testing.T) {
	t.Parallel()

	uc, _, _ := newTestGallery(t)

	_, err := uc.Upload(context.Background(), "owner-a", nil, "", "image/png")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestUpload_UndecodableImageAbortsAfterOriginalStored(t *testing.T) {
	t.Parallel()

	uc, repo, _ := newTestGallery(t)

	_, err := uc.Upload(context.Background(), "owner-a", []byte("not image bytes"), "broken.png", "image/png")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrMedia))

	// No record was created; the orphaned original is cleanup debt.
	assert.Empty(t, repo.pictures)
	refs, _ := repo.ListRefs("owner-a")
	assert.Empty(t, refs)
}

func TestDelete_OwnershipEnforced(t *testing.T) {
	t.Parallel()

	uc, repo, blobs := newTestGallery(t)
	ctx := context.Background()

	picture, err := uc.Upload(ctx, "owner-a", testPNG(t, 20, 20), "p.png", "image/png")
	require.NoError(t, err)

	err = uc.Delete(ctx, "owner-b", picture.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))

	require.NoError(t, uc.Delete(ctx, "owner-a", picture.ID))

	// Record, owner index and both blobs are gone.
	got, err := repo.FindByID(picture.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	refs, _ := repo.ListRefs("owner-a")
	assert.NotContains(t, refs, picture.ID)

	_, err = blobs.Get(ctx, picture.ImageURL)
	assert.Error(t, err)
	_, err = blobs.Get(ctx, picture.ThumbnailURL)
	assert.Error(t, err)
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()

	uc, _, _ := newTestGallery(t)

	err := uc.Delete(context.Background(), "owner-a", "no-such-picture")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestDelete_BlobFailureIsNonFatal(t *testing.T) {
	t.Parallel()

	repo := newFakePictureRepo()
	base := blobstore.NewFSStore(t.TempDir())
	blobs := &failingDeleteStore{Store: base}
	uc := NewGalleryUsecase(repo, blobs, thumbnail.NewDeriver(blobs), quietLogger())
	ctx := context.Background()

	picture, err := uc.Upload(ctx, "owner-a", testPNG(t, 20, 20), "p.png", "image/png")
	require.NoError(t, err)

	// Both blob deletes fail, the record deletion still succeeds.
	require.NoError(t, uc.Delete(ctx, "owner-a", picture.ID))

	got, err := repo.FindByID(picture.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestList_PageWindowAndOwnerScopedTotal(t *testing.T) {
	t.Parallel()

	uc, _, _ := newTestGallery(t)
	ctx := context.Background()

	// t1 < t2 < t3; t2 belongs to another owner, which the page window
	// deliberately does not filter out.
	p1, err := uc.Upload(ctx, "owner-a", testPNG(t, 10, 10), "one.png", "image/png")
	require.NoError(t, err)
	p2, err := uc.Upload(ctx, "owner-b", testPNG(t, 10, 10), "two.png", "image/png")
	require.NoError(t, err)
	p3, err := uc.Upload(ctx, "owner-a", testPNG(t, 10, 10), "three.png", "image/png")
	require.NoError(t, err)

	// Second-newest picture sits alone on page 2 with perPage 1.
	pictures, total, err := uc.List(ctx, "owner-a", 2, 1)
	require.NoError(t, err)
	require.Len(t, pictures, 1)
	assert.Equal(t, p2.ID, pictures[0].ID)
	assert.Equal(t, int64(2), total)

	// Page 1 is newest-first across all owners.
	pictures, total, err = uc.List(ctx, "owner-b", 1, 10)
	require.NoError(t, err)
	require.Len(t, pictures, 3)
	assert.Equal(t, p3.ID, pictures[0].ID)
	assert.Equal(t, p2.ID, pictures[1].ID)
	assert.Equal(t, p1.ID, pictures[2].ID)
	assert.Equal(t, int64(1), total)
}

func TestList_Defaults(t *testing.T) {
	t.Parallel()

	uc, _, _ := newTestGallery(t)
	ctx := context.Background()

	_, err := uc.Upload(ctx, "owner-a", testPNG(t, 10, 10), "p.png", "image/png")
	require.NoError(t, err)

	// Out-of-range page and perPage fall back to 1 and 100.
	pictures, total, err := uc.List(ctx, "owner-a", 0, -5)
	require.NoError(t, err)
	assert.Len(t, pictures, 1)
	assert.Equal(t, int64(1), total)
}

func TestList_EmptyPageIsNotNil(t *testing.T) {
	t.Parallel()

	uc, _, _ := newTestGallery(t)

	pictures, total, err := uc.List(context.Background(), "owner-a", 1, 100)
	require.NoError(t, err)
	assert.NotNil(t, pictures)
	assert.Empty(t, pictures)
	assert.Equal(t, int64(0), total)
}
