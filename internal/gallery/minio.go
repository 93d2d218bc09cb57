package gallery

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/bodaayj/service/internal/storage"
)

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// MinioProvider keeps the gallery in an S3-compatible bucket under a folder prefix.
type MinioProvider struct {
	store  storage.Storage
	folder string
	max    int
	now    func() time.Time
}

// NewMinioProvider creates a MinioProvider listing the newest max objects.
// A non-positive max lists everything.
func NewMinioProvider(store storage.Storage, folder string, max int) *MinioProvider {
	return &MinioProvider{store: store, folder: folder, max: max, now: time.Now}
}

func (p *MinioProvider) Name() string { return ProviderMinio }

func (p *MinioProvider) ListImages(ctx context.Context) ([]GalleryImage, error) {
	prefix := ""
	if p.folder != "" {
		prefix = p.folder + "/"
	}

	objects, err := p.store.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	// Keys are random, so recency has to come from the object metadata.
	slices.SortStableFunc(objects, func(a, b storage.Object) int {
		return b.LastModified.Compare(a.LastModified)
	})
	if p.max > 0 && len(objects) > p.max {
		objects = objects[:p.max]
	}

	images := make([]GalleryImage, 0, len(objects))
	for _, obj := range objects {
		images = append(images, GalleryImage{
			ID:         obj.Key,
			URL:        p.store.PublicURL(obj.Key),
			Name:       DisplayName(obj.Key),
			UploadDate: obj.LastModified.UTC(),
		})
	}
	return images, nil
}

// Upload stores the file under a fresh random key so guests can never
// overwrite each other's photos.
func (p *MinioProvider) Upload(ctx context.Context, f File) (GalleryImage, error) {
	ext, ok := extensions[f.ContentType]
	if !ok {
		return GalleryImage{}, fmt.Errorf("%w: %s", ErrInvalidFile, f.ContentType)
	}

	key := path.Join(p.folder, uuid.NewString()+ext)
	if err := p.store.Upload(ctx, key, bytes.NewReader(f.Data), f.Size(), f.ContentType); err != nil {
		return GalleryImage{}, err
	}

	name := f.Name
	if name == "" {
		name = DisplayName(key)
	}
	return GalleryImage{
		ID:         key,
		URL:        p.store.PublicURL(key),
		Name:       name,
		UploadDate: p.now().UTC(),
	}, nil
}
