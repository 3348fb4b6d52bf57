package repositories

import (
	"context"

	"scholarportal/internal/domain/models"
)

// SiteSettingsRepository stores the singleton settings document
type SiteSettingsRepository interface {
	// Get returns the stored document, or nil when none was ever saved
	Get(ctx context.Context) (*models.SiteSettings, error)

	// Save writes settings if the stored version still equals expectedVersion
	// (0 = nothing stored yet) and sets settings.Version to the new version.
	// Returns a *domain.ConflictError when the version moved.
	Save(ctx context.Context, settings *models.SiteSettings, expectedVersion int64) error
}
