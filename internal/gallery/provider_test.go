package gallery

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodaayj/service/internal/config"
	"github.com/bodaayj/service/internal/storage"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		store    storage.Storage
		want     string
		wantErr  bool
	}{
		{"cloudinary", ProviderCloudinary, nil, ProviderCloudinary, false},
		{"apps script", ProviderAppsScript, nil, ProviderAppsScript, false},
		{"minio", ProviderMinio, &memoryStorage{}, ProviderMinio, false},
		{"minio without storage", ProviderMinio, nil, "", true},
		{"firebase", "firebase", nil, "", true},
		{"empty", "", nil, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{GalleryProvider: tt.provider, GalleryFolder: "post-wedding-gallery", GalleryListMax: 50}

			p, err := NewProvider(cfg, http.DefaultClient, tt.store)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Name())
		})
	}
}
