package models

import "time"

// Resource is a single content item whose payload lives at an external url.
type Resource struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   *string        `json:"description"`
	Type          ResourceType   `json:"type"`
	Language      Language       `json:"language"`
	Category      Category       `json:"category"`
	Tags          []string       `json:"tags"`
	URL           string         `json:"url"`
	CoverImageURL *string        `json:"cover_image_url"`
	CollectionID  *string        `json:"collection_id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	Collection    *CollectionRef `json:"collection,omitempty"` // joined for display, never persisted
}

// CollectionRef is the slice of a Collection joined onto resource listings.
type CollectionRef struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	ContentType ContentType `json:"collection_content_type"`
}

// CollectionKey returns the resource's collection id, or "" when unlinked.
func (r *Resource) CollectionKey() string {
	if r.CollectionID == nil {
		return ""
	}
	return *r.CollectionID
}

// Collection is a named, typed grouping of resources.
type Collection struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Description   *string     `json:"description"`
	CoverImageURL *string     `json:"cover_image_url"`
	Language      *Language   `json:"language"`
	Category      *Category   `json:"category"`
	ContentType   ContentType `json:"collection_content_type"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// OptionalString carries tri-state PATCH semantics without tying the
// domain to a wire format. The handler maps from httputil.OptionalString.
//   - Present=false: leave unchanged
//   - Present=true, Value=nil or &"": clear (persist NULL)
//   - Present=true, Value=&"text": set
type OptionalString struct {
	Present bool
	Value   *string
}

// Cleared reports whether the field was sent and asks for NULL.
func (o OptionalString) Cleared() bool {
	return o.Present && (o.Value == nil || *o.Value == "")
}

// Resolve returns the pointer to persist for a present field.
func (o OptionalString) Resolve() *string {
	if o.Cleared() {
		return nil
	}
	v := *o.Value
	return &v
}

// OptionalStrings is OptionalString for list fields such as tags.
type OptionalStrings struct {
	Present bool
	Value   []string
}

// PositionedResource is a resource with its 1-based ordinal inside its
// collection bucket. The position is computed for display and never stored.
type PositionedResource struct {
	Resource
	Position int `json:"position"`
}
