package services

import (
	"context"

	"scholarportal/internal/domain/models"
)

// CollectionService handles collection business logic for the admin surface
type CollectionService interface {
	// ListCollections returns every collection ordered by name
	ListCollections(ctx context.Context) ([]models.Collection, error)

	// GetCollection retrieves a collection by ID
	GetCollection(ctx context.Context, id string) (*models.Collection, error)

	// CreateCollection validates, checks the (name, content type, category)
	// triple and inserts a collection
	CreateCollection(ctx context.Context, req *CreateCollectionRequest) (*models.Collection, error)

	// UpdateCollection applies a partial update, re-checking the triple
	// against every other collection
	UpdateCollection(ctx context.Context, id string, req *UpdateCollectionRequest) (*models.Collection, error)

	// DeleteCollection unlinks member resources, then removes the collection
	DeleteCollection(ctx context.Context, id string) error
}

// CreateCollectionRequest represents a collection creation request.
// ContentType is a pointer so a missing value reaches validation instead of
// defaulting to the zero string.
type CreateCollectionRequest struct {
	Name          string              `json:"name"`
	Description   *string             `json:"description,omitempty"`
	CoverImageURL *string             `json:"cover_image_url,omitempty"`
	Language      *models.Language    `json:"language,omitempty"`
	Category      *models.Category    `json:"category,omitempty"`
	ContentType   *models.ContentType `json:"collection_content_type"`
}

// UpdateCollectionRequest represents a partial collection update.
// ContentType may never be cleared; a present-but-empty value is a validation error.
type UpdateCollectionRequest struct {
	Name          *string
	Description   models.OptionalString
	CoverImageURL models.OptionalString
	Language      models.OptionalString
	Category      models.OptionalString
	ContentType   models.OptionalString
}

// IsEmpty reports whether the update carries no field at all
func (r *UpdateCollectionRequest) IsEmpty() bool {
	return r.Name == nil && !r.Description.Present && !r.CoverImageURL.Present &&
		!r.Language.Present && !r.Category.Present && !r.ContentType.Present
}
