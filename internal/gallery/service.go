package gallery

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultCacheTTL is how long a listing is served without refetching.
const DefaultCacheTTL = 30 * time.Second

var errCacheMiss = errors.New("cache miss")

// cacheEntry is immutable once stored; it is only ever replaced.
type cacheEntry struct {
	images    []GalleryImage
	timestamp time.Time
	// ledgerLen is the ledger size the entry was built from. Entries built
	// before a later upload are stale regardless of age.
	ledgerLen int
}

// Stats summarises the gallery state for the admin endpoint.
type Stats struct {
	Provider       string  `json:"provider"`
	SessionUploads int     `json:"sessionUploads"`
	Cached         bool    `json:"cached"`
	CachedImages   int     `json:"cachedImages"`
	CacheAgeSec    float64 `json:"cacheAgeSeconds"`
}

// Service is the gallery as seen by the site: one provider, a TTL cache of
// the merged listing and the ledger of uploads made during this process.
// It is safe for concurrent use.
type Service struct {
	provider Provider
	ttl      time.Duration
	now      func() time.Time

	cache atomic.Pointer[cacheEntry]

	mu     sync.Mutex
	ledger []GalleryImage
}

// Option customises a Service.
type Option func(*Service)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a Service backed by provider. A non-positive ttl uses DefaultCacheTTL.
func NewService(provider Provider, ttl time.Duration, opts ...Option) *Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	s := &Service{provider: provider, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Provider returns the backing provider's name.
func (s *Service) Provider() string {
	return s.provider.Name()
}

// source is one attempt at producing the image list.
type source struct {
	name  string
	fetch func(ctx context.Context) ([]GalleryImage, error)
}

// firstSuccess tries sources in order and returns the first list produced.
// Cache misses are expected and are not reported as failures.
func firstSuccess(ctx context.Context, sources []source) ([]GalleryImage, error) {
	var errs []error
	for _, src := range sources {
		images, err := src.fetch(ctx)
		if err == nil {
			log.Debug().Str("source", src.name).Int("count", len(images)).Msg("gallery: images served")
			return images, nil
		}
		if !errors.Is(err, errCacheMiss) {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil, errCacheMiss
	}
	return nil, errors.Join(errs...)
}

// GetImages returns the gallery, newest first. It never fails: when the
// provider cannot be reached the session uploads are returned (and cached
// for one TTL so repeated calls do not hammer the remote store).
func (s *Service) GetImages(ctx context.Context) []GalleryImage {
	images, err := firstSuccess(ctx, []source{
		{name: "cache", fetch: s.fromCache},
		{name: s.provider.Name(), fetch: s.fromProvider},
	})
	if err == nil {
		return images
	}

	session := s.sessionImages()
	log.Warn().Err(err).
		Str("provider", s.provider.Name()).
		Int("sessionUploads", len(session)).
		Msg("gallery: listing failed, serving session uploads")

	fallback := Merge(session, nil)
	s.store(fallback, len(session))
	return slices.Clone(fallback)
}

func (s *Service) fromCache(context.Context) ([]GalleryImage, error) {
	entry := s.cache.Load()
	if entry == nil || s.now().Sub(entry.timestamp) > s.ttl || entry.ledgerLen != s.ledgerLen() {
		return nil, errCacheMiss
	}
	return slices.Clone(entry.images), nil
}

func (s *Service) fromProvider(ctx context.Context) ([]GalleryImage, error) {
	session := s.sessionImages()

	remote, err := s.provider.ListImages(ctx)
	if err != nil {
		return nil, err
	}

	merged := Merge(session, remote)
	s.store(merged, len(session))
	return slices.Clone(merged), nil
}

func (s *Service) store(images []GalleryImage, ledgerLen int) {
	s.cache.Store(&cacheEntry{
		images:    images,
		timestamp: s.now(),
		ledgerLen: ledgerLen,
	})
}

// UploadImage validates and uploads f. On success the image joins the
// session ledger and the cache is dropped, so the next GetImages includes it
// even if the remote listing has not indexed it yet. Failures leave the
// ledger and cache untouched.
func (s *Service) UploadImage(ctx context.Context, f File) UploadResult {
	if err := ValidateFile(&f); err != nil {
		return uploadFailed(err)
	}

	img, err := s.provider.Upload(ctx, f)
	if err != nil {
		log.Error().Err(err).Str("provider", s.provider.Name()).Str("file", f.Name).Msg("gallery: upload failed")
		return uploadFailed(err)
	}
	if img.ID == "" || img.URL == "" {
		return uploadFailed(ErrMalformedResponse)
	}

	s.mu.Lock()
	s.ledger = append(s.ledger, img)
	s.mu.Unlock()
	s.ClearCache()

	log.Info().Str("provider", s.provider.Name()).Str("id", img.ID).Msg("gallery: image uploaded")
	return uploadSucceeded(img)
}

// ClearCache forces the next GetImages to refetch. The ledger is kept.
func (s *Service) ClearCache() {
	s.cache.Store(nil)
}

// Stats reports the provider, ledger size and cache state.
func (s *Service) Stats() Stats {
	st := Stats{
		Provider:       s.provider.Name(),
		SessionUploads: s.ledgerLen(),
	}
	if entry := s.cache.Load(); entry != nil {
		st.Cached = true
		st.CachedImages = len(entry.images)
		st.CacheAgeSec = s.now().Sub(entry.timestamp).Seconds()
	}
	return st
}

func (s *Service) sessionImages() []GalleryImage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.ledger)
}

func (s *Service) ledgerLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ledger)
}
