//	@title			Boda API
//	@version		1.0
//	@description	Backend for the wedding site: shared photo gallery, Cloudinary listing gateway and RSVP sink.
//
//	@host		localhost:8080
//	@BasePath	/api/v1
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Admin JWT Bearer token. Format: **Bearer {token}**

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/bodaayj/service/internal/auth"
	"github.com/bodaayj/service/internal/config"
	"github.com/bodaayj/service/internal/db"
	"github.com/bodaayj/service/internal/gallery"
	"github.com/bodaayj/service/internal/gateway"
	appMiddleware "github.com/bodaayj/service/internal/middleware"
	"github.com/bodaayj/service/internal/rsvp"
	"github.com/bodaayj/service/internal/storage"

	_ "github.com/bodaayj/service/docs/swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	config.SetupLogging(cfg)

	ctx := context.Background()
	client := &http.Client{Timeout: cfg.HTTPTimeout}

	// Object storage is only needed by the minio gallery provider.
	var store storage.Storage
	if cfg.GalleryProvider == gallery.ProviderMinio {
		ms, err := storage.NewMinioStorage(ctx,
			cfg.StorageEndpoint,
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			cfg.StorageBucket,
			cfg.StoragePublicBase,
			cfg.StorageUseSSL,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("object storage init failed")
		}
		store = ms
	}

	provider, err := gallery.NewProvider(cfg, client, store)
	if err != nil {
		log.Fatal().Err(err).Msg("gallery provider init failed")
	}
	gallerySvc := gallery.NewService(provider, cfg.GalleryCacheTTL)
	galleryHandler := gallery.NewHandler(gallerySvc, cfg.PublicBaseURL)

	gatewayHandler := gateway.NewHandler(gateway.Config{
		APIBase:    cfg.CloudinaryAPIBase,
		CloudName:  cfg.CloudinaryCloudName,
		APIKey:     cfg.CloudinaryAPIKey,
		APISecret:  cfg.CloudinaryAPISecret,
		Folder:     cfg.GalleryFolder,
		MaxResults: cfg.GalleryListMax,
		CacheTTL:   cfg.GalleryCacheTTL,
	}, client)

	// RSVPs go to Postgres when configured, otherwise to the spreadsheet.
	var rsvpStore rsvp.Store
	if cfg.DatabaseURL != "" {
		pool, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("database connection failed")
		}
		defer pool.Close()

		if err := db.Migrate(cfg.DatabaseURL); err != nil {
			log.Fatal().Err(err).Msg("database migration failed")
		}
		rsvpStore = rsvp.NewPostgresStore(pool)
	} else {
		rsvpStore = rsvp.NewSheetStore(client, cfg.AppsScriptURL)
	}
	rsvpHandler := rsvp.NewHandler(rsvp.NewService(rsvpStore))

	authHandler := auth.NewHandler(auth.NewService(cfg.AdminPassword, cfg.JWTSecret))
	if cfg.AdminPassword == "" {
		log.Warn().Msg("ADMIN_PASSWORD not set, admin login disabled")
	}

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger UI at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Path the static site already calls.
	r.Handle("/.netlify/functions/get-images", gatewayHandler)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Handle("/gateway/images", gatewayHandler)

		r.Route("/gallery", func(r chi.Router) {
			r.Get("/images", galleryHandler.ListImages)
			r.Post("/images", galleryHandler.UploadImage)
			r.Post("/refresh", galleryHandler.Refresh)
			r.Get("/qr", galleryHandler.QR)
		})

		r.Get("/rsvp", rsvpHandler.Submit)
		r.Post("/rsvp", rsvpHandler.Submit)

		r.Post("/auth/token", authHandler.IssueToken)

		// Protected admin endpoints
		r.Route("/admin", func(r chi.Router) {
			r.Use(appMiddleware.RequireAuth(cfg.JWTSecret))
			r.Get("/gallery/stats", galleryHandler.Stats)
			r.Delete("/gallery/cache", galleryHandler.ClearCache)
			r.Get("/rsvps", rsvpHandler.List)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("env", cfg.AppEnv).
			Str("provider", provider.Name()).
			Msg("server listening")
		log.Info().Msgf("swagger UI at http://localhost:%s/swagger/", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-quit
	log.Info().Msg("shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}

	log.Info().Msg("server stopped")
}
