package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"scholarportal/internal/domain"
	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/repositories"
	"scholarportal/internal/domain/services"
	"scholarportal/internal/listing"
)

// catalogService serves public pages. It is wired to repositories opened
// with the read-only credential.
type catalogService struct {
	resourceRepo   repositories.ResourceRepository
	collectionRepo repositories.CollectionRepository
	settings       services.SiteSettingsService
	logger         *slog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	resourceRepo repositories.ResourceRepository,
	collectionRepo repositories.CollectionRepository,
	settings services.SiteSettingsService,
	logger *slog.Logger,
) services.CatalogService {
	return &catalogService{
		resourceRepo:   resourceRepo,
		collectionRepo: collectionRepo,
		settings:       settings,
		logger:         logger,
	}
}

func (s *catalogService) ListResources(ctx context.Context) ([]models.Resource, error) {
	return s.resourceRepo.List(ctx, repositories.ResourceQuery{})
}

func (s *catalogService) ListCollections(ctx context.Context) ([]models.Collection, error) {
	return s.collectionRepo.List(ctx)
}

// GetCollection returns a collection with its resources in reading order
func (s *catalogService) GetCollection(ctx context.Context, id string) (*services.CollectionDetail, error) {
	collection, err := s.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resources, err := s.resourceRepo.List(ctx, repositories.ResourceQuery{CollectionID: &id})
	if err != nil {
		return nil, fmt.Errorf("list collection resources: %w", err)
	}

	return &services.CollectionDetail{
		Collection: *collection,
		Resources:  listing.Positioned(resources),
	}, nil
}

// FeaturedResources resolves the featured slots in order. Slots pointing at
// deleted resources are skipped rather than failing the home page.
func (s *catalogService) FeaturedResources(ctx context.Context) ([]models.Resource, error) {
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	featured := make([]models.Resource, 0, models.FeaturedSlots)
	for _, id := range settings.FeaturedIDs() {
		resource, err := s.resourceRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				s.logger.Warn("featured resource no longer exists", "resource_id", id)
				continue
			}
			return nil, fmt.Errorf("load featured resource: %w", err)
		}
		featured = append(featured, *resource)
	}
	return featured, nil
}
