package handler

import (
	"log/slog"
	"net/http"

	"scholarportal/internal/domain/services"
	"scholarportal/internal/httputil"
)

// CollectionHandler handles admin collection requests
type CollectionHandler struct {
	collectionService services.CollectionService
	logger            *slog.Logger
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(collectionService services.CollectionService, logger *slog.Logger) *CollectionHandler {
	return &CollectionHandler{
		collectionService: collectionService,
		logger:            logger,
	}
}

// updateCollectionBody is the PATCH wire format. Optional columns are
// tri-state: absent keeps, null or "" clears, a value sets.
type updateCollectionBody struct {
	Name          *string                 `json:"name"`
	Description   httputil.OptionalString `json:"description"`
	CoverImageURL httputil.OptionalString `json:"cover_image_url"`
	Language      httputil.OptionalString `json:"language"`
	Category      httputil.OptionalString `json:"category"`
	ContentType   httputil.OptionalString `json:"collection_content_type"`
}

func (b *updateCollectionBody) toRequest() *services.UpdateCollectionRequest {
	return &services.UpdateCollectionRequest{
		Name:          b.Name,
		Description:   b.Description.ToDomain(),
		CoverImageURL: b.CoverImageURL.ToDomain(),
		Language:      b.Language.ToDomain(),
		Category:      b.Category.ToDomain(),
		ContentType:   b.ContentType.ToDomain(),
	}
}

// ListCollections returns every collection
// GET /api/admin/collections
func (h *CollectionHandler) ListCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := h.collectionService.ListCollections(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, collections)
}

// GetCollection retrieves a collection by ID
// GET /api/admin/collections/{id}
func (h *CollectionHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	collection, err := h.collectionService.GetCollection(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, collection)
}

// CreateCollection creates a new collection
// POST /api/admin/collections
// Returns 409 when another collection has the same (name, content type, category)
func (h *CollectionHandler) CreateCollection(w http.ResponseWriter, r *http.Request) {
	var req services.CreateCollectionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	collection, err := h.collectionService.CreateCollection(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, collection)
}

// UpdateCollection applies a partial update
// PATCH /api/admin/collections/{id}
func (h *CollectionHandler) UpdateCollection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	var body updateCollectionBody
	if err := httputil.ParseJSON(w, r, &body); err != nil {
		handleError(w, err)
		return
	}

	collection, err := h.collectionService.UpdateCollection(r.Context(), id, body.toRequest())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, collection)
}

// DeleteCollection removes a collection; its resources are kept and unlinked
// DELETE /api/admin/collections/{id}
func (h *CollectionHandler) DeleteCollection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.collectionService.DeleteCollection(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondNoContent(w)
}
