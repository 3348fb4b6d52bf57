package repositories

import (
	"context"

	"scholarportal/internal/domain/models"
)

// CollectionKey is the uniqueness triple of a collection.
type CollectionKey struct {
	Name        string
	ContentType models.ContentType
	Category    *models.Category
}

// CollectionRepository defines data access operations for collections
type CollectionRepository interface {
	// List returns all collections ordered by name ascending
	List(ctx context.Context) ([]models.Collection, error)

	// GetByID retrieves a collection by ID
	GetByID(ctx context.Context, id string) (*models.Collection, error)

	// FindIDByKey returns the id of a collection matching key, excluding excludeID.
	// Returns "" when no such collection exists.
	FindIDByKey(ctx context.Context, key CollectionKey, excludeID string) (string, error)

	// Create inserts a collection and fills in ID and timestamps
	Create(ctx context.Context, collection *models.Collection) error

	// Update overwrites every mutable column of an existing collection
	Update(ctx context.Context, collection *models.Collection) error

	// Delete removes the collection row. Returns domain.ErrNotFound when no row matched.
	Delete(ctx context.Context, id string) error
}
