package handler

import (
	"log/slog"
	"net/http"

	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/services"
	"scholarportal/internal/httputil"
	"scholarportal/internal/listing"
)

// CatalogHandler serves the public library listings. Every response carries
// display labels for the locale negotiated from ?lang= or Accept-Language.
type CatalogHandler struct {
	catalog services.CatalogService
	labels  *models.LabelRegistry
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog services.CatalogService, labels *models.LabelRegistry, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		labels:  labels,
		logger:  logger,
	}
}

type resourceLabels struct {
	Category    string `json:"category"`
	Type        string `json:"type"`
	Language    string `json:"language"`
	ContentType string `json:"collection_content_type,omitempty"`
}

// resourceView adds display fields to a resource. Position is the ordinal
// inside the bucket being shown; CollectionPosition is the ordinal among
// every resource of the collection, whatever filters are active.
type resourceView struct {
	models.Resource
	Position           int            `json:"position,omitempty"`
	CollectionPosition int            `json:"collection_position,omitempty"`
	Labels             resourceLabels `json:"labels"`
}

type groupView struct {
	Key            string         `json:"key"`
	CollectionID   *string        `json:"collection_id"`
	CollectionName string         `json:"collection_name,omitempty"`
	Items          []resourceView `json:"items"`
}

type collectionLabels struct {
	Category    string `json:"category,omitempty"`
	Language    string `json:"language,omitempty"`
	ContentType string `json:"collection_content_type"`
}

type collectionView struct {
	models.Collection
	Labels collectionLabels `json:"labels"`
}

type collectionDetailView struct {
	Collection collectionView `json:"collection"`
	Resources  []resourceView `json:"resources"`
}

func (h *CatalogHandler) viewResource(table *models.LabelTable, r models.Resource, position, collectionPosition int) resourceView {
	view := resourceView{
		Resource:           r,
		Position:           position,
		CollectionPosition: collectionPosition,
		Labels: resourceLabels{
			Category: table.Label(models.LabelCategory, string(r.Category)),
			Type:     table.Label(models.LabelType, string(r.Type)),
			Language: table.Label(models.LabelLanguage, string(r.Language)),
		},
	}
	if r.Collection != nil {
		view.Labels.ContentType = table.Label(models.LabelContentType, string(r.Collection.ContentType))
	}
	return view
}

func (h *CatalogHandler) viewCollection(table *models.LabelTable, c models.Collection) collectionView {
	view := collectionView{
		Collection: c,
		Labels: collectionLabels{
			ContentType: table.Label(models.LabelContentType, string(c.ContentType)),
		},
	}
	if c.Category != nil {
		view.Labels.Category = table.Label(models.LabelCategory, string(*c.Category))
	}
	if c.Language != nil {
		view.Labels.Language = table.Label(models.LabelLanguage, string(*c.Language))
	}
	return view
}

func resourceFilterFromQuery(r *http.Request) listing.ResourceFilter {
	return listing.ResourceFilter{
		Query:        httputil.QueryString(r, "q"),
		Category:     models.Category(httputil.QueryString(r, "category")),
		Language:     models.Language(httputil.QueryString(r, "language")),
		Type:         models.ResourceType(httputil.QueryString(r, "type")),
		CollectionID: httputil.QueryString(r, "collection"),
		ContentType:  models.ContentType(httputil.QueryString(r, "content_type")),
	}
}

// ListResources filters, optionally groups, and paginates resources.
// With group=collection a page holds whole collection buckets.
// GET /api/resources
func (h *CatalogHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	all, err := h.catalog.ListResources(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	table := h.labels.For(negotiateLocale(r))
	page := httputil.QueryInt(r, "page", 1)
	perPage := httputil.QueryInt(r, "per_page", 0)

	// collection positions come from the unfiltered list so a part keeps its
	// number in the collection while filters are active
	collectionPositions := make(map[string]int, len(all))
	for _, g := range listing.GroupByCollection(all) {
		if g.CollectionID == nil {
			continue
		}
		for _, item := range g.Items {
			collectionPositions[item.ID] = item.Position
		}
	}

	filtered := listing.FilterResources(all, resourceFilterFromQuery(r))

	if httputil.QueryString(r, "group") == "collection" {
		groups := listing.GroupByCollection(filtered)
		views := make([]groupView, 0, len(groups))
		for _, g := range groups {
			gv := groupView{
				Key:            g.Key,
				CollectionID:   g.CollectionID,
				CollectionName: g.CollectionName,
				Items:          make([]resourceView, 0, len(g.Items)),
			}
			for _, item := range g.Items {
				gv.Items = append(gv.Items, h.viewResource(table, item.Resource, item.Position, collectionPositions[item.ID]))
			}
			views = append(views, gv)
		}
		httputil.RespondJSON(w, http.StatusOK, listing.Paginate(views, page, perPage))
		return
	}

	views := make([]resourceView, 0, len(filtered))
	for _, res := range filtered {
		views = append(views, h.viewResource(table, res, 0, collectionPositions[res.ID]))
	}
	httputil.RespondJSON(w, http.StatusOK, listing.Paginate(views, page, perPage))
}

// ListCollections filters collections
// GET /api/collections
func (h *CatalogHandler) ListCollections(w http.ResponseWriter, r *http.Request) {
	all, err := h.catalog.ListCollections(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	filtered := listing.FilterCollections(all, listing.CollectionFilter{
		Query:       httputil.QueryString(r, "q"),
		Category:    models.Category(httputil.QueryString(r, "category")),
		Language:    models.Language(httputil.QueryString(r, "language")),
		ContentType: models.ContentType(httputil.QueryString(r, "content_type")),
	})

	table := h.labels.For(negotiateLocale(r))
	views := make([]collectionView, 0, len(filtered))
	for _, c := range filtered {
		views = append(views, h.viewCollection(table, c))
	}
	httputil.RespondJSON(w, http.StatusOK, views)
}

// GetCollection returns a collection and its numbered resources
// GET /api/collections/{id}
func (h *CatalogHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	detail, err := h.catalog.GetCollection(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	table := h.labels.For(negotiateLocale(r))
	view := collectionDetailView{
		Collection: h.viewCollection(table, detail.Collection),
		Resources:  make([]resourceView, 0, len(detail.Resources)),
	}
	for _, item := range detail.Resources {
		view.Resources = append(view.Resources, h.viewResource(table, item.Resource, item.Position, item.Position))
	}
	httputil.RespondJSON(w, http.StatusOK, view)
}

// FeaturedResources returns the home page picks
// GET /api/featured
func (h *CatalogHandler) FeaturedResources(w http.ResponseWriter, r *http.Request) {
	featured, err := h.catalog.FeaturedResources(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	table := h.labels.For(negotiateLocale(r))
	views := make([]resourceView, 0, len(featured))
	for _, res := range featured {
		views = append(views, h.viewResource(table, res, 0, 0))
	}
	httputil.RespondJSON(w, http.StatusOK, views)
}
