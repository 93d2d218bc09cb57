package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{name: "empty uses fallback", value: "", expected: 30 * time.Second},
		{name: "ISO 8601 seconds", value: "PT45S", expected: 45 * time.Second},
		{name: "ISO 8601 minutes", value: "PT2M", expected: 2 * time.Minute},
		{name: "Go duration", value: "1m30s", expected: 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDuration(tt.value, 30*time.Second)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func TestParseDurationRejectsInvalid(t *testing.T) {
	for _, value := range []string{"soon", "PXYZ", "-5s", "0s"} {
		_, err := ParseDuration(value, time.Second)
		assert.Error(t, err, value)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GALLERY_PROVIDER", "")
	t.Setenv("GALLERY_CACHE_TTL", "")
	t.Setenv("GALLERY_GATEWAY_URL", "")
	t.Setenv("GALLERY_LIST_MAX", "")
	t.Setenv("GALLERY_FOLDER", "/post-wedding-gallery/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "cloudinary", cfg.GalleryProvider)
	assert.Equal(t, 30*time.Second, cfg.GalleryCacheTTL)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 50, cfg.GalleryListMax)
	assert.Equal(t, "post-wedding-gallery", cfg.GalleryFolder)
	assert.Equal(t, "http://localhost:9090/api/v1/gateway/images", cfg.GatewayURL)
}

func TestLoadRejectsBadListMax(t *testing.T) {
	t.Setenv("GALLERY_LIST_MAX", "lots")

	_, err := Load()
	assert.Error(t, err)
}

func TestSetupLogging(t *testing.T) {
	prevLevel := zerolog.GlobalLevel()
	prevLogger := log.Logger
	defer func() {
		zerolog.SetGlobalLevel(prevLevel)
		log.Logger = prevLogger
	}()

	SetupLogging(&Config{AppEnv: "production"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	SetupLogging(&Config{AppEnv: "development"})
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}
