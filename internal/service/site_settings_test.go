package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarportal/internal/domain"
	"scholarportal/internal/domain/models"
)

func TestGetSettingsDefaults(t *testing.T) {
	f := newFixture(t)

	s, err := f.settings.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Len(t, s.FeaturedResourceIDs, models.FeaturedSlots)
	assert.Equal(t, int64(0), s.Version)
	assert.NotEmpty(t, s.SiteTitle.En)
}

func TestUpdateSettingsMergesAndNormalizes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	r := f.createResource(t, "https://a.com/1", nil)

	email := "info@example.org"
	s, err := f.settings.UpdateSettings(ctx, &models.SiteSettingsUpdate{
		ContactEmail:        &email,
		FeaturedResourceIDs: []*string{&r.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.Version)
	require.Len(t, s.FeaturedResourceIDs, models.FeaturedSlots)
	assert.Equal(t, r.ID, *s.FeaturedResourceIDs[0])
	assert.Nil(t, s.FeaturedResourceIDs[1])

	titleAr := "عنوان"
	s, err = f.settings.UpdateSettings(ctx, &models.SiteSettingsUpdate{SiteTitleAr: &titleAr})
	require.NoError(t, err)
	assert.Equal(t, "info@example.org", s.ContactEmail, "unsent fields keep their value")
	assert.Equal(t, "عنوان", s.SiteTitle.Ar)
	assert.Equal(t, int64(2), s.Version)

	featured, err := f.catalog.FeaturedResources(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, r.ID, featured[0].ID)
}

func TestUpdateSettingsStaleVersion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	email := "a@b.com"
	_, err := f.settings.UpdateSettings(ctx, &models.SiteSettingsUpdate{ContactEmail: &email})
	require.NoError(t, err)

	stale := int64(0)
	_, err = f.settings.UpdateSettings(ctx, &models.SiteSettingsUpdate{ContactEmail: &email, Version: &stale})
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestUpdateSettingsRejectsUnknownFeaturedResource(t *testing.T) {
	f := newFixture(t)
	missing := "2d0c8bbf-2a40-4bd6-9b48-3f6f0d0f0e11"

	_, err := f.settings.UpdateSettings(context.Background(), &models.SiteSettingsUpdate{
		FeaturedResourceIDs: []*string{nil, &missing},
	})
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Fields, "featured_resource_ids")
}
