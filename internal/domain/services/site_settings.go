package services

import (
	"context"

	"scholarportal/internal/domain/models"
)

// SiteSettingsService reads and merge-writes the singleton settings record
type SiteSettingsService interface {
	// GetSettings returns the stored settings, or defaults when none were saved
	GetSettings(ctx context.Context) (*models.SiteSettings, error)

	// UpdateSettings merges u onto the stored record and saves it
	UpdateSettings(ctx context.Context, u *models.SiteSettingsUpdate) (*models.SiteSettings, error)
}
