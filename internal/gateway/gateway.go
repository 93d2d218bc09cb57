// Package gateway proxies gallery listing requests to the Cloudinary Admin
// API so the API key and secret never reach the browser.
package gateway

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog/log"

	"github.com/bodaayj/service/internal/gallery"
)

const (
	defaultMaxResults = 50
	cacheEntries      = 16
	maxListingBytes   = 4 << 20
)

// Config holds the Admin API credentials and listing parameters.
type Config struct {
	APIBase    string
	CloudName  string
	APIKey     string
	APISecret  string
	Folder     string
	MaxResults int
	CacheTTL   time.Duration
}

// Handler serves the image listing. It answers GET and OPTIONS only.
type Handler struct {
	cfg    Config
	client *http.Client
	cache  *expirable.LRU[string, []gallery.GalleryImage]
	now    func() time.Time
}

// NewHandler creates a gateway Handler. Listings are cached server-side for
// CacheTTL, which is also advertised to clients via Cache-Control.
func NewHandler(cfg Config, client *http.Client) *Handler {
	if cfg.APIBase == "" {
		cfg.APIBase = "https://api.cloudinary.com"
	}
	cfg.APIBase = strings.TrimRight(cfg.APIBase, "/")
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = defaultMaxResults
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = gallery.DefaultCacheTTL
	}

	return &Handler{
		cfg:    cfg,
		client: client,
		cache:  expirable.NewLRU[string, []gallery.GalleryImage](cacheEntries, nil, cfg.CacheTTL),
		now:    time.Now,
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORS(w)

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodGet:
	default:
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "Method not allowed"})
		return
	}

	if missing := h.missingCredentials(); len(missing) > 0 {
		msg := "missing Cloudinary credentials: " + strings.Join(missing, ", ")
		log.Error().Strs("missing", missing).Msg("gateway: credentials not configured")
		writeJSON(w, http.StatusInternalServerError, gallery.Listing{Success: false, Error: msg, Images: []gallery.GalleryImage{}})
		return
	}

	images, err := h.list(r)
	if err != nil {
		log.Error().Err(err).Msg("gateway: listing failed")
		writeJSON(w, http.StatusInternalServerError, gallery.Listing{Success: false, Error: err.Error(), Images: []gallery.GalleryImage{}})
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.cfg.CacheTTL.Seconds())))
	writeJSON(w, http.StatusOK, gallery.Listing{Success: true, Images: images, Count: len(images)})
}

func (h *Handler) missingCredentials() []string {
	var missing []string
	for _, c := range []struct{ key, value string }{
		{"CLOUDINARY_CLOUD_NAME", h.cfg.CloudName},
		{"CLOUDINARY_API_KEY", h.cfg.APIKey},
		{"CLOUDINARY_API_SECRET", h.cfg.APISecret},
	} {
		if c.value == "" {
			missing = append(missing, c.key)
		}
	}
	return missing
}

type adminResource struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	CreatedAt string `json:"created_at"`
}

type adminListing struct {
	Resources []adminResource `json:"resources"`
}

func (h *Handler) list(r *http.Request) ([]gallery.GalleryImage, error) {
	prefix := h.cfg.Folder
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	key := prefix + "|" + strconv.Itoa(h.cfg.MaxResults)
	if images, ok := h.cache.Get(key); ok {
		return images, nil
	}

	q := url.Values{}
	q.Set("max_results", strconv.Itoa(h.cfg.MaxResults))
	q.Set("prefix", prefix)
	endpoint := fmt.Sprintf("%s/v1_1/%s/resources/image?%s", h.cfg.APIBase, h.cfg.CloudName, q.Encode())

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build admin request: %w", err)
	}
	req.SetBasicAuth(h.cfg.APIKey, h.cfg.APISecret)
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cloudinary API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cloudinary API error: %s", resp.Status)
	}

	var listing adminListing
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxListingBytes)).Decode(&listing); err != nil {
		return nil, fmt.Errorf("decode cloudinary listing: %w", err)
	}

	images := make([]gallery.GalleryImage, 0, len(listing.Resources))
	for _, res := range listing.Resources {
		if res.PublicID == "" || res.SecureURL == "" {
			continue
		}
		uploaded, err := time.Parse(time.RFC3339, res.CreatedAt)
		if err != nil {
			uploaded = h.now().UTC()
		}
		images = append(images, gallery.GalleryImage{
			ID:         res.PublicID,
			Name:       gallery.DisplayName(res.PublicID),
			URL:        res.SecureURL,
			Thumbnail:  gallery.Thumbnail(res.SecureURL),
			UploadDate: uploaded,
		})
	}

	h.cache.Add(key, images)
	log.Debug().Int("count", len(images)).Str("prefix", prefix).Msg("gateway: fetched listing")
	return images, nil
}

func setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("gateway: encode response")
	}
}
