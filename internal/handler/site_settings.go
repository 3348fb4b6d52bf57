package handler

import (
	"log/slog"
	"net/http"
	"time"

	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/services"
	"scholarportal/internal/httputil"
)

// SiteSettingsHandler handles the site settings document
type SiteSettingsHandler struct {
	settingsService services.SiteSettingsService
	logger          *slog.Logger
	now             func() time.Time
}

// NewSiteSettingsHandler creates a new site settings handler
func NewSiteSettingsHandler(settingsService services.SiteSettingsService, logger *slog.Logger) *SiteSettingsHandler {
	return &SiteSettingsHandler{
		settingsService: settingsService,
		logger:          logger,
		now:             time.Now,
	}
}

// settingsResponse adds the footer and title rendered for the negotiated locale.
type settingsResponse struct {
	*models.SiteSettings
	Locale         models.Language `json:"locale"`
	RenderedTitle  string          `json:"rendered_title"`
	RenderedFooter string          `json:"rendered_footer"`
}

func (h *SiteSettingsHandler) respond(w http.ResponseWriter, r *http.Request, settings *models.SiteSettings) {
	locale := negotiateLocale(r)
	httputil.RespondJSON(w, http.StatusOK, settingsResponse{
		SiteSettings:   settings,
		Locale:         locale,
		RenderedTitle:  settings.SiteTitle.In(locale),
		RenderedFooter: settings.RenderFooter(locale, h.now().Year()),
	})
}

// GetSettings returns the settings, or defaults when none were saved
// GET /api/site-settings
func (h *SiteSettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.GetSettings(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	h.respond(w, r, settings)
}

// UpdateSettings merge-writes the settings
// PUT /api/admin/site-settings
func (h *SiteSettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req models.SiteSettingsUpdate
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	settings, err := h.settingsService.UpdateSettings(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	h.logger.Info("site settings updated", "version", settings.Version, "user_id", httputil.GetUserID(r))
	h.respond(w, r, settings)
}
