package services

import (
	"context"

	"scholarportal/internal/domain/models"
)

// ResourceService handles resource business logic for the admin surface
type ResourceService interface {
	// ListResources returns every resource with its collection joined, newest first
	ListResources(ctx context.Context) ([]models.Resource, error)

	// GetResource retrieves a resource by ID
	GetResource(ctx context.Context, id string) (*models.Resource, error)

	// CreateResource validates, checks url uniqueness and inserts a resource
	CreateResource(ctx context.Context, req *CreateResourceRequest) (*models.Resource, error)

	// UpdateResource applies a partial update; absent fields are left untouched
	UpdateResource(ctx context.Context, id string, req *UpdateResourceRequest) (*models.Resource, error)

	// DeleteResource hard-deletes a resource
	DeleteResource(ctx context.Context, id string) error
}

// CreateResourceRequest represents a resource creation request
type CreateResourceRequest struct {
	Title         string              `json:"title"`
	Description   *string             `json:"description,omitempty"`
	Type          models.ResourceType `json:"type"`
	Language      models.Language     `json:"language"`
	Category      models.Category     `json:"category"`
	Tags          []string            `json:"tags,omitempty"`
	URL           string              `json:"url"`
	CoverImageURL *string             `json:"cover_image_url,omitempty"` // "" means none
	CollectionID  *string             `json:"collection_id,omitempty"`   // "" means none
}

// UpdateResourceRequest represents a partial resource update.
// Optional text fields use tri-state semantics; an empty string clears the column.
type UpdateResourceRequest struct {
	Title         *string
	Description   models.OptionalString
	Type          *models.ResourceType
	Language      *models.Language
	Category      *models.Category
	Tags          models.OptionalStrings
	URL           *string
	CoverImageURL models.OptionalString
	CollectionID  models.OptionalString
}

// IsEmpty reports whether the update carries no field at all
func (r *UpdateResourceRequest) IsEmpty() bool {
	return r.Title == nil && !r.Description.Present && r.Type == nil && r.Language == nil &&
		r.Category == nil && !r.Tags.Present && r.URL == nil && !r.CoverImageURL.Present &&
		!r.CollectionID.Present
}
