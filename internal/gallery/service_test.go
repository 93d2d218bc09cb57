package gallery

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider records calls and serves a configurable listing.
type fakeProvider struct {
	mu        sync.Mutex
	listing   []GalleryImage
	listErr   error
	uploadErr error
	nextID    int
	listCalls atomic.Int32
	uploads   atomic.Int32
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) ListImages(context.Context) ([]GalleryImage, error) {
	p.listCalls.Add(1)
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.listErr != nil {
		return nil, p.listErr
	}
	return append([]GalleryImage(nil), p.listing...), nil
}

func (p *fakeProvider) Upload(_ context.Context, f File) (GalleryImage, error) {
	p.uploads.Add(1)
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.uploadErr != nil {
		return GalleryImage{}, p.uploadErr
	}
	p.nextID++
	id := fmt.Sprintf("upload-%d", p.nextID)
	return GalleryImage{
		ID:         id,
		URL:        "https://x/upload/" + id + ".jpg",
		Name:       f.Name,
		UploadDate: day.Add(time.Duration(p.nextID) * time.Minute),
	}, nil
}

func (p *fakeProvider) setListing(images ...GalleryImage) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listing = images
}

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestService(p *fakeProvider) (*Service, *fakeClock) {
	clock := &fakeClock{now: day}
	return NewService(p, 30*time.Second, WithClock(clock.Now)), clock
}

func jpeg(name string) File {
	return File{Name: name, ContentType: "image/jpeg", Data: jpegBytes}
}

func TestGetImagesServesCacheWithinTTL(t *testing.T) {
	p := &fakeProvider{}
	p.setListing(image("a", 0))
	svc, clock := newTestService(p)
	ctx := context.Background()

	first := svc.GetImages(ctx)
	clock.Advance(29 * time.Second)
	second := svc.GetImages(ctx)

	assert.Equal(t, int32(1), p.listCalls.Load())
	assert.Equal(t, first, second)
}

func TestGetImagesRefetchesAfterTTL(t *testing.T) {
	p := &fakeProvider{}
	p.setListing(image("a", 0))
	svc, clock := newTestService(p)
	ctx := context.Background()

	svc.GetImages(ctx)
	p.setListing(image("a", 0), image("b", time.Hour))
	clock.Advance(31 * time.Second)
	images := svc.GetImages(ctx)

	assert.Equal(t, int32(2), p.listCalls.Load())
	assert.Equal(t, []string{"b", "a"}, ids(images))
}

func TestClearCacheForcesFetch(t *testing.T) {
	p := &fakeProvider{}
	svc, _ := newTestService(p)
	ctx := context.Background()

	svc.GetImages(ctx)
	svc.ClearCache()
	svc.GetImages(ctx)

	assert.Equal(t, int32(2), p.listCalls.Load())
}

func TestUploadsVisibleWhenListingIsEmpty(t *testing.T) {
	p := &fakeProvider{}
	svc, _ := newTestService(p)
	ctx := context.Background()

	// Prime the cache so the upload has something to invalidate.
	assert.Empty(t, svc.GetImages(ctx))

	for i := 0; i < 3; i++ {
		res := svc.UploadImage(ctx, jpeg(fmt.Sprintf("photo-%d.jpg", i)))
		require.True(t, res.Success, res.Error)
	}

	images := svc.GetImages(ctx)
	assert.ElementsMatch(t, []string{"upload-1", "upload-2", "upload-3"}, ids(images))
	assert.Equal(t, []string{"upload-3", "upload-2", "upload-1"}, ids(images))
}

func TestLedgerCopyWinsOverListing(t *testing.T) {
	p := &fakeProvider{}
	svc, _ := newTestService(p)
	ctx := context.Background()

	res := svc.UploadImage(ctx, jpeg("mine.jpg"))
	require.True(t, res.Success)

	remote := *res.Image
	remote.Name = "Indexed Later"
	remote.URL = "https://cdn/other.jpg"
	p.setListing(remote, image("someone-else", -time.Hour))

	images := svc.GetImages(ctx)

	require.Len(t, images, 2)
	assert.Equal(t, *res.Image, images[0])
}

func TestListingFailureFallsBackToLedger(t *testing.T) {
	p := &fakeProvider{listErr: errors.New("connection refused")}
	svc, clock := newTestService(p)
	ctx := context.Background()

	res := svc.UploadImage(ctx, jpeg("mine.jpg"))
	require.True(t, res.Success)

	images := svc.GetImages(ctx)
	assert.Equal(t, []string{"upload-1"}, ids(images))

	// The fallback is cached, so a second call inside the TTL stays offline.
	clock.Advance(10 * time.Second)
	svc.GetImages(ctx)
	assert.Equal(t, int32(1), p.listCalls.Load())
}

func TestListingFailureWithNoUploadsReturnsEmpty(t *testing.T) {
	p := &fakeProvider{listErr: errors.New("boom")}
	svc, _ := newTestService(p)

	images := svc.GetImages(context.Background())

	assert.NotNil(t, images)
	assert.Empty(t, images)
}

func TestUploadRejectsInvalidFileBeforeNetwork(t *testing.T) {
	p := &fakeProvider{}
	svc, _ := newTestService(p)

	res := svc.UploadImage(context.Background(), File{Name: "notes.txt", ContentType: "text/plain", Data: []byte("hi")})

	assert.False(t, res.Success)
	assert.Nil(t, res.Image)
	assert.NotEmpty(t, res.Error)
	assert.Equal(t, int32(0), p.uploads.Load())
	assert.Equal(t, 0, svc.Stats().SessionUploads)
}

func TestUploadFailureLeavesStateUntouched(t *testing.T) {
	p := &fakeProvider{uploadErr: errors.New("HTTP error! status: 500")}
	svc, _ := newTestService(p)
	ctx := context.Background()

	svc.GetImages(ctx)
	res := svc.UploadImage(ctx, jpeg("a.jpg"))

	assert.False(t, res.Success)
	assert.Nil(t, res.Image)
	assert.Equal(t, "HTTP error! status: 500", res.Error)

	st := svc.Stats()
	assert.Equal(t, 0, st.SessionUploads)
	assert.True(t, st.Cached)

	svc.GetImages(ctx)
	assert.Equal(t, int32(1), p.listCalls.Load())
}

func TestUploadAfterStaleFetchIsStillVisible(t *testing.T) {
	p := &fakeProvider{}
	svc, _ := newTestService(p)
	ctx := context.Background()

	// A cache entry built before the upload must not hide it, even if it is
	// stored after the upload cleared the cache.
	session := svc.sessionImages()
	res := svc.UploadImage(ctx, jpeg("late.jpg"))
	require.True(t, res.Success)
	svc.store(Merge(session, nil), len(session))

	images := svc.GetImages(ctx)
	assert.Equal(t, []string{"upload-1"}, ids(images))
}

func TestGetImagesReturnsCopies(t *testing.T) {
	p := &fakeProvider{}
	p.setListing(image("a", 0))
	svc, _ := newTestService(p)
	ctx := context.Background()

	images := svc.GetImages(ctx)
	images[0].ID = "tampered"

	assert.Equal(t, []string{"a"}, ids(svc.GetImages(ctx)))
}

func TestConcurrentAccess(t *testing.T) {
	p := &fakeProvider{}
	p.setListing(image("remote", -time.Hour))
	svc := NewService(p, time.Millisecond)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			svc.GetImages(ctx)
		}()
		go func(i int) {
			defer wg.Done()
			svc.UploadImage(ctx, jpeg(fmt.Sprintf("%d.jpg", i)))
			if i%5 == 0 {
				svc.ClearCache()
			}
		}(i)
	}
	wg.Wait()

	images := svc.GetImages(ctx)
	assert.Len(t, images, 21)
}

func TestStats(t *testing.T) {
	p := &fakeProvider{}
	p.setListing(image("a", 0), image("b", 0))
	svc, clock := newTestService(p)
	ctx := context.Background()

	assert.Equal(t, Stats{Provider: "fake"}, svc.Stats())

	svc.GetImages(ctx)
	clock.Advance(5 * time.Second)

	st := svc.Stats()
	assert.True(t, st.Cached)
	assert.Equal(t, 2, st.CachedImages)
	assert.InDelta(t, 5.0, st.CacheAgeSec, 0.001)
}
