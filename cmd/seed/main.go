package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"scholarportal/internal/config"
	"scholarportal/internal/domain"
	"scholarportal/internal/migrations"
	"scholarportal/internal/repository/postgres"
	"scholarportal/internal/service"
)

func main() {
	// Parse command-line flags
	schemaOnly := flag.Bool("schema-only", false, "Only apply migrations, don't seed content")
	clearData := flag.Bool("clear-data", false, "Delete all portal content (keep schema)")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *clearData {
		log.Fatalf("🚫 BLOCKED: Cannot run destructive operations (--clear-data) in production environment")
	}
	if cfg.DatabaseURL == "" {
		log.Fatalf("DATABASE_URL is required")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	switch {
	case *clearData:
		log.Printf("🧹 Clearing data only (environment: %s)", cfg.Environment)
	case *schemaOnly:
		log.Printf("🏗️  Setting up schema only (environment: %s)", cfg.Environment)
	default:
		log.Printf("🌱 Seeding database (environment: %s)", cfg.Environment)
	}

	// Run migrations to ensure tables exist
	log.Println("📋 Ensuring database schema is up to date...")
	db, err := migrations.OpenDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open migration connection: %v", err)
	}
	if err := migrations.MigrateUp(db); err != nil {
		db.Close()
		log.Fatalf("Failed to run migrations: %v", err)
	}
	db.Close()
	log.Println("✅ Schema ready")

	if *schemaOnly {
		log.Println("✅ Schema setup complete (schema-only mode)")
		return
	}

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL, postgres.ServicePool)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if *clearData {
		log.Println("🧹 Clearing portal content...")
		if err := clearPortalData(ctx, pool); err != nil {
			log.Fatalf("Failed to clear data: %v", err)
		}
		log.Println("✅ Data cleared successfully")
		return
	}

	// Create repositories and services; seeding goes through validation like any admin write
	repoConfig := &postgres.RepositoryConfig{Pool: pool, Logger: logger}
	resourceRepo := postgres.NewResourceRepository(repoConfig)
	collectionRepo := postgres.NewCollectionRepository(repoConfig)
	txManager := postgres.NewTransactionManager(repoConfig)

	collectionService := service.NewCollectionService(collectionRepo, resourceRepo, txManager, logger)
	resourceService := service.NewResourceService(resourceRepo, collectionRepo, txManager, logger)
	ijazaService := service.NewIjazaService(postgres.NewIjazaRepository(repoConfig), logger)
	settingsService := service.NewSiteSettingsService(postgres.NewSiteSettingsRepository(repoConfig), resourceRepo, logger)

	// Collections first so resources can link to them
	log.Println("📚 Seeding collections...")
	collectionIDs := make(map[string]string)
	for _, c := range seedCollections() {
		created, err := collectionService.CreateCollection(ctx, c.request)
		var conflict *domain.ConflictError
		switch {
		case errors.As(err, &conflict):
			collectionIDs[c.key] = conflict.ResourceID
			log.Printf("↩️  Collection '%s' already exists (ID: %s)", c.request.Name, conflict.ResourceID)
		case err != nil:
			log.Printf("❌ Failed to create collection '%s': %v", c.request.Name, err)
		default:
			collectionIDs[c.key] = created.ID
			log.Printf("✅ Created collection '%s' (ID: %s)", created.Name, created.ID)
		}
	}

	log.Println("📝 Seeding resources...")
	var featured []*string
	resources := seedResources()
	for i, r := range resources {
		if r.collection != "" {
			if id, ok := collectionIDs[r.collection]; ok {
				r.request.CollectionID = &id
			}
		}
		created, err := resourceService.CreateResource(ctx, r.request)
		var conflict *domain.ConflictError
		switch {
		case errors.As(err, &conflict):
			log.Printf("↩️  Resource '%s' already exists (ID: %s)", r.request.Title, conflict.ResourceID)
			continue
		case err != nil:
			log.Printf("❌ Failed to create resource '%s': %v", r.request.Title, err)
			continue
		}
		log.Printf("✅ Created resource %d/%d: %s (ID: %s)", i+1, len(resources), created.Title, created.ID)
		if r.featured {
			id := created.ID
			featured = append(featured, &id)
		}
	}

	log.Println("📜 Seeding ijazat...")
	for _, req := range seedIjazat() {
		created, err := ijazaService.CreateIjaza(ctx, req)
		if err != nil {
			log.Printf("❌ Failed to create ijaza '%s': %v", req.Title.En, err)
			continue
		}
		log.Printf("✅ Created ijaza '%s' (ID: %s)", created.Title.En, created.ID)
	}

	log.Println("⚙️  Writing site settings...")
	update := seedSettings()
	if len(featured) > 0 {
		update.FeaturedResourceIDs = featured
	}
	if _, err := settingsService.UpdateSettings(ctx, update); err != nil {
		log.Printf("❌ Failed to write site settings: %v", err)
	}

	log.Println("🎉 Seeding complete!")
}

// clearPortalData deletes every row of portal content. Resources go first so
// the collection foreign key never has to fire.
func clearPortalData(ctx context.Context, pool *pgxpool.Pool) error {
	for _, table := range []string{"resources", "collections", "questions", "ijazat", "site_config"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
		log.Printf("  ✓ Cleared %s", table)
	}
	return nil
}
