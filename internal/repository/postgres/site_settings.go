package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"scholarportal/internal/domain"
	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/repositories"
)

// siteSettingsKey is the single row of site_config holding the settings document.
const siteSettingsKey = "main_settings"

// PostgresSiteSettingsRepository implements the SiteSettingsRepository interface
type PostgresSiteSettingsRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewSiteSettingsRepository creates a new site settings repository
func NewSiteSettingsRepository(config *RepositoryConfig) repositories.SiteSettingsRepository {
	return &PostgresSiteSettingsRepository{
		pool:   config.Pool,
		logger: config.Logger,
	}
}

// Get returns the stored settings, or nil when none were saved
func (r *PostgresSiteSettingsRepository) Get(ctx context.Context) (*models.SiteSettings, error) {
	query := `SELECT data, version, updated_at FROM site_config WHERE key = $1`

	var settings models.SiteSettings
	var version int64
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, siteSettingsKey).Scan(&settings, &version, &settings.UpdatedAt)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get site settings: %w", err)
	}

	settings.Version = version
	settings.Normalize()
	return &settings, nil
}

// Save writes settings when the stored version still equals expectedVersion
func (r *PostgresSiteSettingsRepository) Save(ctx context.Context, settings *models.SiteSettings, expectedVersion int64) error {
	var query string
	if expectedVersion == 0 {
		query = `
			INSERT INTO site_config (key, data, version, updated_at)
			VALUES ($1, $2, 1, $3)
			ON CONFLICT (key) DO NOTHING
			RETURNING version
		`
	} else {
		query = `
			UPDATE site_config
			SET data = $2, version = version + 1, updated_at = $3
			WHERE key = $1 AND version = $4
			RETURNING version
		`
	}

	args := []interface{}{siteSettingsKey, settings, settings.UpdatedAt}
	if expectedVersion != 0 {
		args = append(args, expectedVersion)
	}

	var version int64
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, args...).Scan(&version)
	if err != nil {
		if IsPgNoRowsError(err) {
			r.logger.Info("site settings version moved", "expected_version", expectedVersion)
			return domain.NewSettingsVersionConflict()
		}
		return fmt.Errorf("save site settings: %w", err)
	}

	settings.Version = version
	return nil
}
