package gallery

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bodaayj/service/internal/config"
	"github.com/bodaayj/service/internal/storage"
)

// Provider names accepted in GALLERY_PROVIDER.
const (
	ProviderCloudinary = "cloudinary"
	ProviderAppsScript = "google-apps-script"
	ProviderMinio      = "minio"
)

// Provider is a backing media host for the gallery.
type Provider interface {
	// Name identifies the provider in logs and stats.
	Name() string
	// ListImages returns the authoritative remote listing.
	ListImages(ctx context.Context) ([]GalleryImage, error)
	// Upload transfers a validated file and returns the stored image.
	Upload(ctx context.Context, f File) (GalleryImage, error)
}

// Listing is the payload served by the upload gateway.
type Listing struct {
	Success bool           `json:"success"`
	Images  []GalleryImage `json:"images"`
	Count   int            `json:"count"`
	Error   string         `json:"error,omitempty"`
}

// NewProvider builds the provider named in cfg. store is only required for
// the minio provider and may be nil otherwise.
func NewProvider(cfg *config.Config, client *http.Client, store storage.Storage) (Provider, error) {
	switch cfg.GalleryProvider {
	case ProviderCloudinary:
		return NewCloudinaryProvider(client, CloudinaryOptions{
			APIBase:      cfg.CloudinaryAPIBase,
			CloudName:    cfg.CloudinaryCloudName,
			UploadPreset: cfg.CloudinaryUploadPreset,
			Folder:       cfg.GalleryFolder,
			GatewayURL:   cfg.GatewayURL,
		}), nil
	case ProviderAppsScript:
		return NewAppsScriptProvider(client, cfg.AppsScriptURL), nil
	case ProviderMinio:
		if store == nil {
			return nil, fmt.Errorf("%s provider requires object storage", ProviderMinio)
		}
		return NewMinioProvider(store, cfg.GalleryFolder, cfg.GalleryListMax), nil
	default:
		return nil, fmt.Errorf("unsupported gallery provider %q", cfg.GalleryProvider)
	}
}
