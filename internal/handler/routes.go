package handler

import "net/http"

// Handlers groups every HTTP handler the server mounts.
type Handlers struct {
	Health       *HealthHandler
	Catalog      *CatalogHandler
	Sitemap      *SitemapHandler
	Collections  *CollectionHandler
	Resources    *ResourceHandler
	Questions    *QuestionHandler
	Ijazat       *IjazaHandler
	SiteSettings *SiteSettingsHandler
	Uploads      *UploadHandler
}

// NewRouter registers public routes directly and wraps every /api/admin
// route with gate.
func NewRouter(h *Handlers, gate func(http.Handler) http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	admin := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, gate(fn))
	}

	// Health check
	mux.HandleFunc("GET /health", h.Health.HealthCheck)
	mux.HandleFunc("GET /sitemap.xml", h.Sitemap.ServeSitemap)

	// Public reads (read-only credential)
	mux.HandleFunc("GET /api/resources", h.Catalog.ListResources)
	mux.HandleFunc("GET /api/collections", h.Catalog.ListCollections)
	mux.HandleFunc("GET /api/collections/{id}", h.Catalog.GetCollection)
	mux.HandleFunc("GET /api/featured", h.Catalog.FeaturedResources)
	mux.HandleFunc("GET /api/ijazat", h.Ijazat.ListIjazat)
	mux.HandleFunc("GET /api/site-settings", h.SiteSettings.GetSettings)

	// Public write
	mux.HandleFunc("POST /api/questions", h.Questions.SubmitQuestion)

	// Collection routes
	admin("GET /api/admin/collections", h.Collections.ListCollections)
	admin("POST /api/admin/collections", h.Collections.CreateCollection)
	admin("GET /api/admin/collections/{id}", h.Collections.GetCollection)
	admin("PATCH /api/admin/collections/{id}", h.Collections.UpdateCollection)
	admin("DELETE /api/admin/collections/{id}", h.Collections.DeleteCollection)

	// Resource routes
	admin("GET /api/admin/resources", h.Resources.ListResources)
	admin("POST /api/admin/resources", h.Resources.CreateResource)
	admin("GET /api/admin/resources/{id}", h.Resources.GetResource)
	admin("PATCH /api/admin/resources/{id}", h.Resources.UpdateResource)
	admin("DELETE /api/admin/resources/{id}", h.Resources.DeleteResource)

	// Question moderation
	admin("GET /api/admin/questions", h.Questions.ListQuestions)
	admin("PATCH /api/admin/questions/{id}/answer", h.Questions.AnswerQuestion)
	admin("PATCH /api/admin/questions/{id}/reject", h.Questions.RejectQuestion)

	// Ijazat, settings and uploads
	admin("POST /api/admin/ijazat", h.Ijazat.CreateIjaza)
	admin("DELETE /api/admin/ijazat/{id}", h.Ijazat.DeleteIjaza)
	admin("PUT /api/admin/site-settings", h.SiteSettings.UpdateSettings)
	admin("POST /api/admin/uploads", h.Uploads.Upload)

	return mux
}
