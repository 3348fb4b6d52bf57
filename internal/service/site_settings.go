package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"scholarportal/internal/domain"
	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/repositories"
	"scholarportal/internal/domain/services"
	"scholarportal/internal/validation"
)

// siteSettingsService keeps the singleton settings record. Reads and writes
// both normalize the featured list to models.FeaturedSlots entries.
type siteSettingsService struct {
	settingsRepo repositories.SiteSettingsRepository
	resourceRepo repositories.ResourceRepository
	logger       *slog.Logger
}

// NewSiteSettingsService creates a new site settings service
func NewSiteSettingsService(
	settingsRepo repositories.SiteSettingsRepository,
	resourceRepo repositories.ResourceRepository,
	logger *slog.Logger,
) services.SiteSettingsService {
	return &siteSettingsService{
		settingsRepo: settingsRepo,
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// GetSettings returns the stored settings or the defaults
func (s *siteSettingsService) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load site settings: %w", err)
	}
	if settings == nil {
		return models.DefaultSiteSettings(), nil
	}
	settings.Normalize()
	return settings, nil
}

// UpdateSettings merges u onto the current record. When u carries a version
// it must match the stored one; the save itself is also guarded so two
// concurrent merges cannot both win.
func (s *siteSettingsService) UpdateSettings(ctx context.Context, u *models.SiteSettingsUpdate) (*models.SiteSettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	expected := settings.Version
	if u.Version != nil && *u.Version != expected {
		return nil, domain.NewSettingsVersionConflict()
	}

	settings.Merge(u)
	if err := validation.SiteSettings(settings); err != nil {
		return nil, err
	}
	if err := s.checkFeatured(ctx, settings); err != nil {
		return nil, err
	}

	settings.UpdatedAt = time.Now().UTC()
	if err := s.settingsRepo.Save(ctx, settings, expected); err != nil {
		return nil, err
	}

	s.logger.Info("site settings updated",
		"version", settings.Version,
		"featured", len(settings.FeaturedIDs()),
	)
	return settings, nil
}

// checkFeatured rejects featured slots that point at missing resources.
func (s *siteSettingsService) checkFeatured(ctx context.Context, settings *models.SiteSettings) error {
	for i, id := range settings.FeaturedResourceIDs {
		if id == nil {
			continue
		}
		if _, err := s.resourceRepo.GetByID(ctx, *id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewValidationError("featured_resource_ids",
					fmt.Sprintf("slot %d: resource %s does not exist", i+1, *id))
			}
			return fmt.Errorf("look up featured resource: %w", err)
		}
	}
	return nil
}
