package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"scholarportal/internal/config"
	"scholarportal/internal/domain/repositories"
	"scholarportal/internal/migrations"
	"scholarportal/internal/repository/memory"
	"scholarportal/internal/repository/postgres"
)

// repoSet is one credential tier's view of the store.
type repoSet struct {
	Resources    repositories.ResourceRepository
	Collections  repositories.CollectionRepository
	Questions    repositories.QuestionRepository
	Ijazat       repositories.IjazaRepository
	SiteSettings repositories.SiteSettingsRepository
	Tx           repositories.TransactionManager
}

// backend holds the elevated (admin) and read-only (public) repository sets.
// With the memory backend both point at the same store.
type backend struct {
	Service  repoSet
	ReadOnly repoSet
	Ping     func(ctx context.Context) error
	close    []func()
}

func (b *backend) Close() {
	for i := len(b.close) - 1; i >= 0; i-- {
		b.close[i]()
	}
}

func openBackend(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*backend, error) {
	switch cfg.DataBackend {
	case config.BackendMemory:
		logger.Warn("using in-memory data backend; data is lost on restart")
		store := memory.NewStore()
		set := repoSet{
			Resources:    store.Resources(),
			Collections:  store.Collections(),
			Questions:    store.Questions(),
			Ijazat:       store.Ijazat(),
			SiteSettings: store.SiteSettings(),
			Tx:           memory.NewTransactionManager(),
		}
		return &backend{Service: set, ReadOnly: set}, nil
	case config.BackendPostgres:
		return openPostgres(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown DATA_BACKEND %q", cfg.DataBackend)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*backend, error) {
	if err := prepareSchema(cfg.DatabaseURL, cfg.AutoMigrate, logger); err != nil {
		return nil, err
	}

	b := &backend{}

	servicePool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL, postgres.ServicePool)
	if err != nil {
		return nil, fmt.Errorf("service pool: %w", err)
	}
	b.close = append(b.close, servicePool.Close)

	readURL, fellBack := cfg.ReadOnlyURL()
	if fellBack {
		logger.Warn("DATABASE_READONLY_URL not set; public reads use the service credential")
	}
	readPool, err := postgres.CreateConnectionPool(ctx, readURL, postgres.ReadOnlyPool)
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("read-only pool: %w", err)
	}
	b.close = append(b.close, readPool.Close)

	logger.Info("database connected",
		"service_max_conns", postgres.ServicePool.MaxConns,
		"readonly_max_conns", postgres.ReadOnlyPool.MaxConns,
	)

	b.Service = postgresRepos(servicePool, logger)
	b.ReadOnly = postgresRepos(readPool, logger)
	b.Ping = readPool.Ping
	return b, nil
}

func postgresRepos(pool *pgxpool.Pool, logger *slog.Logger) repoSet {
	repoConfig := &postgres.RepositoryConfig{Pool: pool, Logger: logger}
	return repoSet{
		Resources:    postgres.NewResourceRepository(repoConfig),
		Collections:  postgres.NewCollectionRepository(repoConfig),
		Questions:    postgres.NewQuestionRepository(repoConfig),
		Ijazat:       postgres.NewIjazaRepository(repoConfig),
		SiteSettings: postgres.NewSiteSettingsRepository(repoConfig),
		Tx:           postgres.NewTransactionManager(repoConfig),
	}
}

// prepareSchema applies pending migrations when autoMigrate is set and
// otherwise refuses to start on an outdated schema.
func prepareSchema(databaseURL string, autoMigrate bool, logger *slog.Logger) error {
	db, err := migrations.OpenDB(databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if autoMigrate {
		if err := migrations.MigrateUp(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	if err := migrations.CheckStatus(db); err != nil {
		return fmt.Errorf("schema check: %w", err)
	}

	version, _ := migrations.LatestVersion()
	logger.Info("database schema ready", "version", version, "auto_migrate", autoMigrate)
	return nil
}
