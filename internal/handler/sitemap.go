package handler

import (
	"log/slog"
	"net/http"
	"time"

	"scholarportal/internal/domain/services"
)

// SitemapHandler serves sitemap.xml
type SitemapHandler struct {
	sitemap services.SitemapService
	logger  *slog.Logger
}

// NewSitemapHandler creates a new sitemap handler
func NewSitemapHandler(sitemap services.SitemapService, logger *slog.Logger) *SitemapHandler {
	return &SitemapHandler{
		sitemap: sitemap,
		logger:  logger,
	}
}

// ServeSitemap renders the sitemap; it is cached for a day
// GET /sitemap.xml
func (h *SitemapHandler) ServeSitemap(w http.ResponseWriter, r *http.Request) {
	body, err := h.sitemap.Sitemap(r.Context(), time.Now().UTC())
	if err != nil {
		h.logger.Error("failed to render sitemap", "error", err)
		http.Error(w, "failed to render sitemap", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
