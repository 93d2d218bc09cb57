// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rickb777/date/period"
	"github.com/rs/zerolog/log"
)

const (
	defaultCacheTTL    = 30 * time.Second
	defaultHTTPTimeout = 15 * time.Second
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port          string
	AppEnv        string
	PublicBaseURL string // site root the QR code points guests at

	// Admin endpoints
	JWTSecret     string
	AdminPassword string

	// Gallery
	GalleryProvider string // "cloudinary" | "google-apps-script" | "minio"
	GalleryFolder   string
	GalleryListMax  int
	GalleryCacheTTL time.Duration
	GatewayURL      string // listing endpoint the cloudinary provider reads from
	HTTPTimeout     time.Duration

	// Cloudinary. The API key/secret are only read by the gateway and never
	// leave the server.
	CloudinaryCloudName    string
	CloudinaryUploadPreset string
	CloudinaryAPIKey       string
	CloudinaryAPISecret    string
	CloudinaryAPIBase      string

	// Google Apps Script web app (Drive gallery and RSVP spreadsheet)
	AppsScriptURL string

	// Object storage (S3-compatible: MinIO locally)
	StorageEndpoint   string
	StorageAccessKey  string
	StorageSecretKey  string
	StorageBucket     string
	StorageUseSSL     bool
	StoragePublicBase string

	// Optional; RSVPs fall back to the spreadsheet when empty.
	DatabaseURL string
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, reading from environment")
	}

	port := getEnv("PORT", "8080")

	ttl, err := ParseDuration(getEnv("GALLERY_CACHE_TTL", ""), defaultCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("GALLERY_CACHE_TTL: %w", err)
	}
	timeout, err := ParseDuration(getEnv("HTTP_TIMEOUT", ""), defaultHTTPTimeout)
	if err != nil {
		return nil, fmt.Errorf("HTTP_TIMEOUT: %w", err)
	}
	listMax, err := strconv.Atoi(getEnv("GALLERY_LIST_MAX", "50"))
	if err != nil || listMax <= 0 {
		return nil, fmt.Errorf("GALLERY_LIST_MAX: must be a positive integer")
	}

	return &Config{
		Port:          port,
		AppEnv:        getEnv("APP_ENV", "development"),
		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:4200"), "/"),

		JWTSecret:     getEnv("JWT_SECRET", "change_me_in_production"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		GalleryProvider: getEnv("GALLERY_PROVIDER", "cloudinary"),
		GalleryFolder:   strings.Trim(getEnv("GALLERY_FOLDER", "post-wedding-gallery"), "/"),
		GalleryListMax:  listMax,
		GalleryCacheTTL: ttl,
		GatewayURL:      getEnv("GALLERY_GATEWAY_URL", "http://localhost:"+port+"/api/v1/gateway/images"),
		HTTPTimeout:     timeout,

		CloudinaryCloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryUploadPreset: os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
		CloudinaryAPIKey:       os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret:    os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryAPIBase:      strings.TrimRight(getEnv("CLOUDINARY_API_BASE", "https://api.cloudinary.com"), "/"),

		AppsScriptURL: os.Getenv("APPS_SCRIPT_URL"),

		StorageEndpoint:   getEnv("STORAGE_ENDPOINT", "localhost:9000"),
		StorageAccessKey:  getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
		StorageSecretKey:  getEnv("STORAGE_SECRET_KEY", "minioadmin"),
		StorageBucket:     getEnv("STORAGE_BUCKET", "gallery"),
		StorageUseSSL:     getEnv("STORAGE_USE_SSL", "false") == "true",
		StoragePublicBase: getEnv("STORAGE_PUBLIC_BASE", "http://localhost:9000/gallery"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
	}, nil
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// ParseDuration accepts either an ISO 8601 duration ("PT30S") or a Go
// duration string ("30s"). An empty value yields fallback.
func ParseDuration(value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}

	if strings.HasPrefix(strings.ToUpper(value), "P") {
		p, err := period.Parse(value)
		if err != nil {
			return 0, fmt.Errorf("parse ISO 8601 duration %q: %w", value, err)
		}
		base := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
		end, _ := p.AddTo(base)
		d := end.Sub(base)
		if d <= 0 {
			return 0, fmt.Errorf("duration %q must be positive", value)
		}
		return d, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration %q must be positive", value)
	}
	return d, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
