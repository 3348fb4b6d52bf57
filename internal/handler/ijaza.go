package handler

import (
	"log/slog"
	"net/http"

	"scholarportal/internal/domain/services"
	"scholarportal/internal/httputil"
)

// IjazaHandler handles ijaza requests
type IjazaHandler struct {
	ijazaService services.IjazaService
	logger       *slog.Logger
}

// NewIjazaHandler creates a new ijaza handler
func NewIjazaHandler(ijazaService services.IjazaService, logger *slog.Logger) *IjazaHandler {
	return &IjazaHandler{
		ijazaService: ijazaService,
		logger:       logger,
	}
}

// ListIjazat returns every ijaza, most recent year first
// GET /api/ijazat
func (h *IjazaHandler) ListIjazat(w http.ResponseWriter, r *http.Request) {
	ijazat, err := h.ijazaService.ListIjazat(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, ijazat)
}

// CreateIjaza adds an ijaza
// POST /api/admin/ijazat
func (h *IjazaHandler) CreateIjaza(w http.ResponseWriter, r *http.Request) {
	var req services.CreateIjazaRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	ijaza, err := h.ijazaService.CreateIjaza(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, ijaza)
}

// DeleteIjaza removes an ijaza
// DELETE /api/admin/ijazat/{id}
func (h *IjazaHandler) DeleteIjaza(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.ijazaService.DeleteIjaza(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondNoContent(w)
}
