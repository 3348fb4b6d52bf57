package handler

import (
	"log/slog"
	"net/http"

	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/services"
	"scholarportal/internal/httputil"
)

// ResourceHandler handles admin resource requests
type ResourceHandler struct {
	resourceService services.ResourceService
	logger          *slog.Logger
}

// NewResourceHandler creates a new resource handler
func NewResourceHandler(resourceService services.ResourceService, logger *slog.Logger) *ResourceHandler {
	return &ResourceHandler{
		resourceService: resourceService,
		logger:          logger,
	}
}

// updateResourceBody is the PATCH wire format
type updateResourceBody struct {
	Title         *string                      `json:"title"`
	Description   httputil.OptionalString      `json:"description"`
	Type          *models.ResourceType         `json:"type"`
	Language      *models.Language             `json:"language"`
	Category      *models.Category             `json:"category"`
	Tags          httputil.OptionalStringSlice `json:"tags"`
	URL           *string                      `json:"url"`
	CoverImageURL httputil.OptionalString      `json:"cover_image_url"`
	CollectionID  httputil.OptionalString      `json:"collection_id"`
}

func (b *updateResourceBody) toRequest() *services.UpdateResourceRequest {
	return &services.UpdateResourceRequest{
		Title:         b.Title,
		Description:   b.Description.ToDomain(),
		Type:          b.Type,
		Language:      b.Language,
		Category:      b.Category,
		Tags:          b.Tags.ToDomain(),
		URL:           b.URL,
		CoverImageURL: b.CoverImageURL.ToDomain(),
		CollectionID:  b.CollectionID.ToDomain(),
	}
}

// ListResources returns every resource with its collection joined
// GET /api/admin/resources
func (h *ResourceHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	resources, err := h.resourceService.ListResources(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, resources)
}

// GetResource retrieves a resource by ID
// GET /api/admin/resources/{id}
func (h *ResourceHandler) GetResource(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	resource, err := h.resourceService.GetResource(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, resource)
}

// CreateResource creates a new resource
// POST /api/admin/resources
// Returns 409 when another resource already uses the url
func (h *ResourceHandler) CreateResource(w http.ResponseWriter, r *http.Request) {
	var req services.CreateResourceRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	resource, err := h.resourceService.CreateResource(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, resource)
}

// UpdateResource applies a partial update
// PATCH /api/admin/resources/{id}
func (h *ResourceHandler) UpdateResource(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	var body updateResourceBody
	if err := httputil.ParseJSON(w, r, &body); err != nil {
		handleError(w, err)
		return
	}

	resource, err := h.resourceService.UpdateResource(r.Context(), id, body.toRequest())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, resource)
}

// DeleteResource hard-deletes a resource
// DELETE /api/admin/resources/{id}
func (h *ResourceHandler) DeleteResource(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.resourceService.DeleteResource(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondNoContent(w)
}
