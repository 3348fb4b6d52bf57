package domain

// Messages shared by the pre-insert checks and the store's unique-constraint
// translation, so both paths read the same to the caller.
const (
	CollectionConflictMessage  = "A collection with this name, content type, and category already exists."
	ResourceURLConflictMessage = "A resource with this URL already exists."
)

// NewCollectionConflict reports a duplicate (name, content type, category) triple.
func NewCollectionConflict(existingID string) *ConflictError {
	return &ConflictError{
		Message:      CollectionConflictMessage,
		ResourceType: "collection",
		Field:        "name,collection_content_type,category",
		ResourceID:   existingID,
	}
}

// NewResourceURLConflict reports a duplicate resource url.
func NewResourceURLConflict(existingID string) *ConflictError {
	return &ConflictError{
		Message:      ResourceURLConflictMessage,
		ResourceType: "resource",
		Field:        "url",
		ResourceID:   existingID,
	}
}

// NewSettingsVersionConflict reports a site settings write based on a stale version.
func NewSettingsVersionConflict() *ConflictError {
	return &ConflictError{
		Message:      "site settings were changed by someone else; reload and try again",
		ResourceType: "site_settings",
		Field:        "version",
	}
}
