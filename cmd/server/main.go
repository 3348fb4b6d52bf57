package main

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"scholarportal/internal/auth"
	"scholarportal/internal/config"
	"scholarportal/internal/domain/models"
	"scholarportal/internal/handler"
	"scholarportal/internal/middleware"
	"scholarportal/internal/notify"
	"scholarportal/internal/service"
	"scholarportal/internal/storage"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	var logOut io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, "portal-server", cfg.LogMaxFiles)
		if err != nil {
			log.Fatalf("Failed to set up log file: %v", err)
		}
		defer logFile.Close()
		logOut = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger) // Set as default logger

	if missing := cfg.Missing(); len(missing) > 0 {
		log.Fatalf("Missing required configuration: %s", strings.Join(missing, ", "))
	}

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"data_backend", cfg.DataBackend,
	)

	// Identity provider token verification for the admin surface
	jwtVerifier, err := auth.NewJWTVerifier(cfg.AuthJWKSURL, cfg.AuthIssuer, cfg.AuthAudience, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	ctx := context.Background()
	store, err := openBackend(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to open data backend: %v", err)
	}
	defer store.Close()

	labels, err := models.LoadLabels()
	if err != nil {
		log.Fatalf("Failed to load label tables: %v", err)
	}

	// Outcome emails
	var mailer notify.Mailer
	if smtpMailer, err := notify.NewSMTPMailer(cfg.SMTP); err != nil {
		logger.Warn("email notifications disabled", "reason", err.Error())
		mailer = notify.NewLogMailer(logger)
	} else {
		mailer = smtpMailer
	}
	notifier := notify.NewHook(mailer, cfg.NotifyTimeout, logger)

	// Object storage is optional; uploads answer 500 until it is configured
	var uploader handler.FileUploader
	if cfg.Storage.Configured() {
		s3Uploader, err := storage.NewS3Uploader(ctx, cfg.Storage, logger)
		if err != nil {
			logger.Error("object storage unavailable", "error", err)
		} else {
			uploader = s3Uploader
		}
	} else {
		logger.Warn("object storage not configured; uploads disabled")
	}

	// Admin services use the elevated credential
	svc, ro := store.Service, store.ReadOnly
	resourceService := service.NewResourceService(svc.Resources, svc.Collections, svc.Tx, logger)
	collectionService := service.NewCollectionService(svc.Collections, svc.Resources, svc.Tx, logger)
	questionService := service.NewQuestionService(svc.Questions, notifier, logger)
	ijazaService := service.NewIjazaService(svc.Ijazat, logger)
	settingsService := service.NewSiteSettingsService(svc.SiteSettings, svc.Resources, logger)

	// Public listings use the read-only credential
	publicSettings := service.NewSiteSettingsService(ro.SiteSettings, ro.Resources, logger)
	catalogService := service.NewCatalogService(ro.Resources, ro.Collections, publicSettings, logger)
	sitemapService := service.NewSitemapService(cfg.SiteURL, ro.Resources, ro.Collections, logger)

	logger.Info("services initialized")

	mux := handler.NewRouter(&handler.Handlers{
		Health:       handler.NewHealthHandler(store.Ping, logger),
		Catalog:      handler.NewCatalogHandler(catalogService, labels, logger),
		Sitemap:      handler.NewSitemapHandler(sitemapService, logger),
		Collections:  handler.NewCollectionHandler(collectionService, logger),
		Resources:    handler.NewResourceHandler(resourceService, logger),
		Questions:    handler.NewQuestionHandler(questionService, logger),
		Ijazat:       handler.NewIjazaHandler(ijazaService, logger),
		SiteSettings: handler.NewSiteSettingsHandler(settingsService, logger),
		Uploads:      handler.NewUploadHandler(uploader, logger),
	}, middleware.RequireAuth(jwtVerifier, logger))

	// Build middleware chain
	// Order: CORS → Recovery → RequestLogger → Routes (auth is per-route)
	var h http.Handler = mux
	h = middleware.RequestLogger(logger)(h)
	h = middleware.Recovery(logger)(h)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", "Accept-Language"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutting down", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}

	// Let queued emails finish before the process exits
	notifier.Wait()
	logger.Info("server stopped")
}
