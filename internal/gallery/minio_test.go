package gallery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodaayj/service/internal/storage"
)

// memoryStorage is an in-memory storage.Storage.
type memoryStorage struct {
	objects []storage.Object
	data    map[string][]byte
	listErr error
}

func (m *memoryStorage) Upload(_ context.Context, key string, r io.Reader, size int64, contentType string) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if m.data == nil {
		m.data = map[string][]byte{}
	}
	m.data[key] = b
	m.objects = append(m.objects, storage.Object{Key: key, Size: size, ContentType: contentType, LastModified: day})
	return nil
}

func (m *memoryStorage) List(_ context.Context, prefix string) ([]storage.Object, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []storage.Object
	for _, obj := range m.objects {
		if strings.HasPrefix(obj.Key, prefix) {
			out = append(out, obj)
		}
	}
	return out, nil
}

func (m *memoryStorage) PublicURL(key string) string {
	return "http://localhost:9000/gallery/" + key
}

func TestMinioUploadAndList(t *testing.T) {
	store := &memoryStorage{}
	p := NewMinioProvider(store, "post-wedding-gallery", 10)
	p.now = func() time.Time { return day }
	ctx := context.Background()

	img, err := p.Upload(ctx, File{Name: "cake.gif", ContentType: "image/gif", Data: []byte("GIF89a....")})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(img.ID, "post-wedding-gallery/"))
	assert.True(t, strings.HasSuffix(img.ID, ".gif"))
	assert.Equal(t, "http://localhost:9000/gallery/"+img.ID, img.URL)
	assert.Equal(t, "cake.gif", img.Name)
	assert.Equal(t, []byte("GIF89a...."), store.data[img.ID])

	store.objects = append(store.objects, storage.Object{Key: "elsewhere/x.jpg"})
	images, err := p.ListImages(ctx)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, img.ID, images[0].ID)
	assert.Equal(t, day, images[0].UploadDate)
}

func TestMinioListKeepsNewest(t *testing.T) {
	store := &memoryStorage{}
	// Key order is unrelated to age, as with uuid keys.
	for i := range 60 {
		store.objects = append(store.objects, storage.Object{
			Key:          fmt.Sprintf("g/%02d.jpg", (i*37)%60),
			LastModified: day.Add(time.Duration(i) * time.Minute),
		})
	}
	slices.SortFunc(store.objects, func(a, b storage.Object) int { return strings.Compare(a.Key, b.Key) })
	p := NewMinioProvider(store, "g", 50)

	images, err := p.ListImages(context.Background())

	require.NoError(t, err)
	require.Len(t, images, 50)
	assert.Equal(t, day.Add(59*time.Minute), images[0].UploadDate)
	assert.Equal(t, day.Add(10*time.Minute), images[49].UploadDate)
	for i := 1; i < len(images); i++ {
		assert.True(t, images[i-1].UploadDate.After(images[i].UploadDate))
	}
}

func TestMinioListErrorPropagates(t *testing.T) {
	p := NewMinioProvider(&memoryStorage{listErr: errors.New("bucket gone")}, "g", 10)

	_, err := p.ListImages(context.Background())

	assert.ErrorContains(t, err, "bucket gone")
}
