package memory

import (
	"context"

	"scholarportal/internal/domain"
	"scholarportal/internal/domain/models"
)

type siteSettingsRepository struct {
	store *Store
}

func (r *siteSettingsRepository) Get(ctx context.Context) (*models.SiteSettings, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if r.store.settings == nil {
		return nil, nil
	}
	return cloneSettings(r.store.settings), nil
}

func (r *siteSettingsRepository) Save(ctx context.Context, settings *models.SiteSettings, expectedVersion int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var current int64
	if r.store.settings != nil {
		current = r.store.settings.Version
	}
	if current != expectedVersion {
		return domain.NewSettingsVersionConflict()
	}

	settings.Version = expectedVersion + 1
	r.store.settings = cloneSettings(settings)
	return nil
}
