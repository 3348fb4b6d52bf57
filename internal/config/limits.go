package config

const (
	// MaxTitleLength bounds resource titles.
	MaxTitleLength = 300

	// MaxCollectionNameLength bounds collection names. Together with the
	// content type and category it forms the collection's unique key.
	MaxCollectionNameLength = 200

	// MaxDescriptionLength bounds free-text descriptions of resources and collections.
	MaxDescriptionLength = 5000

	// MinQuestionLength is the shortest accepted question text, in characters.
	MinQuestionLength = 10

	// MaxQuestionLength is the longest accepted question text, in characters.
	MaxQuestionLength = 5000

	// MaxRejectionReasonLength bounds the optional note sent with a rejection.
	MaxRejectionReasonLength = 2000

	// DefaultPageSize matches the library pages (20 items per page).
	DefaultPageSize = 20

	// MaxPageSize caps per_page on public listings.
	MaxPageSize = 100

	// MaxUploadSize is the largest file accepted by the upload endpoint (50MB).
	// Scanned books are the largest expected payload.
	MaxUploadSize = 50 << 20
)
