package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/JunoAX/cafe-fausse/internal/api"
	"github.com/JunoAX/cafe-fausse/internal/config"
	"github.com/JunoAX/cafe-fausse/internal/content"
	"github.com/JunoAX/cafe-fausse/internal/flash"
	"github.com/JunoAX/cafe-fausse/internal/gallery"
	"github.com/JunoAX/cafe-fausse/internal/logging"
	"github.com/JunoAX/cafe-fausse/internal/server"
	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var Version = "dev"

func main() {
	// .env is optional; real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Failed to load .env", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	cfg.Log.Component = "cafe-fausse"
	logger := logging.New(cfg.Log)
	slog.SetDefault(logger)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	httpClient := &http.Client{Timeout: cfg.API.Timeout}
	if cfg.EnableTracing {
		if err := xray.Configure(xray.Config{ServiceVersion: Version}); err != nil {
			logger.Warn("Failed to configure X-Ray, using defaults", "error", err)
			if configErr := xray.Configure(xray.Config{}); configErr != nil {
				logger.Error("Failed to configure default X-Ray settings", "error", configErr)
				os.Exit(1)
			}
		}
		os.Setenv("AWS_XRAY_CONTEXT_MISSING", "LOG_ERROR")
		httpClient = xray.Client(httpClient)
	}

	client := api.NewClient(cfg.API.URL, cfg.API.AdminToken,
		api.WithHTTPClient(httpClient),
		api.WithLogger(logger),
	)
	if cfg.API.AdminToken == "" {
		logger.Warn("ADMIN_TOKEN is not set; the admin dashboard will be rejected by the backend")
	}

	index, err := loadGallery(cfg)
	if err != nil {
		logger.Error("Failed to load gallery", "error", err)
		os.Exit(1)
	}
	logger.Info("Gallery indexed", "images", index.Len(), "categories", len(index.Categories()))

	about, err := content.About()
	if err != nil {
		logger.Error("Failed to render About page", "error", err)
		os.Exit(1)
	}

	opts := server.Options{
		Backend:       client,
		Gallery:       index,
		Flash:         flash.NewService(cfg.FlashSecret, "cafe-fausse", flash.DefaultTTL),
		Logger:        logger,
		Version:       Version,
		AboutHTML:     about,
		AssetsDir:     cfg.Gallery.AssetsDir,
		AssetsURL:     cfg.Gallery.AssetsURL,
		CSRFKey:       cfg.CSRFKey,
		SecureCookies: cfg.SecureCookies,
		EnableTracing: cfg.EnableTracing,
	}
	if cfg.EnableAPIProxy {
		opts.ProxyURL = cfg.API.URL
		opts.ProxyTransport = httpClient.Transport
	}

	engine, err := server.NewRouter(opts)
	if err != nil {
		logger.Error("Failed to build router", "error", err)
		os.Exit(1)
	}
	handler, err := server.NewHandler(engine, opts)
	if err != nil {
		logger.Error("Failed to build handler", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Server starting", "addr", srv.Addr, "api_url", client.BaseURL(), "version", Version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("Server exited")
}

// loadGallery prefers an explicit manifest and otherwise scans the local
// assets directory
func loadGallery(cfg *config.Config) (*gallery.Index, error) {
	opts := gallery.Options{Anchor: cfg.Gallery.Anchor, Order: cfg.Gallery.Order}

	var entries []gallery.Entry
	var err error
	switch {
	case cfg.Gallery.Manifest != "":
		entries, err = gallery.LoadManifest(cfg.Gallery.Manifest)
	case cfg.Gallery.AssetsDir != "":
		dir := filepath.Join(cfg.Gallery.AssetsDir, cfg.Gallery.Anchor)
		if _, statErr := os.Stat(dir); statErr == nil {
			entries, err = gallery.BuildManifest(os.DirFS(dir), cfg.Gallery.Anchor, cfg.Gallery.AssetsURL+"/"+cfg.Gallery.Anchor)
		}
	}
	if err != nil {
		return nil, err
	}
	return gallery.NewIndex(entries, opts), nil
}
