package repositories

import (
	"context"

	"scholarportal/internal/domain/models"
)

// ResourceQuery narrows a resource listing. Zero value lists everything.
type ResourceQuery struct {
	CollectionID *string // only resources linked to this collection
	Limit        int     // 0 = no limit
}

// ResourceRepository defines data access operations for resources
type ResourceRepository interface {
	// List returns resources joined with their collection, newest first
	List(ctx context.Context, query ResourceQuery) ([]models.Resource, error)

	// GetByID retrieves a resource by ID
	GetByID(ctx context.Context, id string) (*models.Resource, error)

	// FindIDByURL returns the id of a resource with url, excluding excludeID.
	// Returns "" when no such resource exists.
	FindIDByURL(ctx context.Context, url, excludeID string) (string, error)

	// Create inserts a resource and fills in ID and timestamps
	Create(ctx context.Context, resource *models.Resource) error

	// Update overwrites every mutable column of an existing resource
	Update(ctx context.Context, resource *models.Resource) error

	// Delete hard-deletes a resource. Returns domain.ErrNotFound when no row matched.
	Delete(ctx context.Context, id string) error

	// UnlinkCollection sets collection_id to NULL on every resource in the collection
	UnlinkCollection(ctx context.Context, collectionID string) (int64, error)
}
