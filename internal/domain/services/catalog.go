package services

import (
	"context"
	"time"

	"scholarportal/internal/domain/models"
)

// CatalogService serves the public, read-only views of the library
type CatalogService interface {
	// ListResources returns every resource with its collection joined, newest first
	ListResources(ctx context.Context) ([]models.Resource, error)

	// ListCollections returns every collection ordered by name
	ListCollections(ctx context.Context) ([]models.Collection, error)

	// GetCollection returns a collection and its resources in reading order
	GetCollection(ctx context.Context, id string) (*CollectionDetail, error)

	// FeaturedResources resolves the filled featured slots, skipping ids that no longer exist
	FeaturedResources(ctx context.Context) ([]models.Resource, error)
}

// CollectionDetail is a collection with its member resources, oldest first.
type CollectionDetail struct {
	Collection models.Collection           `json:"collection"`
	Resources  []models.PositionedResource `json:"resources"`
}

// SitemapService renders sitemap.xml
type SitemapService interface {
	Sitemap(ctx context.Context, now time.Time) ([]byte, error)
}
