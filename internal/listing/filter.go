// Package listing filters, groups and paginates in-memory resource and
// collection lists. Every function returns new slices and leaves its input
// untouched, so the same source list can be re-filtered freely.
package listing

import (
	"strings"

	"golang.org/x/text/cases"

	"scholarportal/internal/domain/models"
)

// NoCollection is the collection filter value that selects unlinked resources.
const NoCollection = "none"

// ResourceFilter holds the active resource filters. Zero-valued fields are
// inactive; active fields are combined with AND.
type ResourceFilter struct {
	Query        string // case-insensitive substring over title, description, tags and collection name
	Category     models.Category
	Language     models.Language
	Type         models.ResourceType
	CollectionID string // a collection id, or NoCollection
	ContentType  models.ContentType
}

// IsZero reports whether no filter is active.
func (f ResourceFilter) IsZero() bool {
	return f == ResourceFilter{}
}

// FilterResources returns the resources matching every active filter, in input order.
func FilterResources(items []models.Resource, f ResourceFilter) []models.Resource {
	m := newTextMatcher(f.Query)
	out := make([]models.Resource, 0, len(items))
	for i := range items {
		if matchResource(&items[i], f, m) {
			out = append(out, items[i])
		}
	}
	return out
}

func matchResource(r *models.Resource, f ResourceFilter, m *textMatcher) bool {
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	if f.Language != "" && r.Language != f.Language {
		return false
	}
	if f.Type != "" && r.Type != f.Type {
		return false
	}
	switch f.CollectionID {
	case "":
	case NoCollection:
		if r.CollectionID != nil {
			return false
		}
	default:
		if r.CollectionKey() != f.CollectionID {
			return false
		}
	}
	if f.ContentType != "" && (r.Collection == nil || r.Collection.ContentType != f.ContentType) {
		return false
	}
	if m == nil {
		return true
	}
	if m.match(r.Title) || m.matchPtr(r.Description) {
		return true
	}
	if r.Collection != nil && m.match(r.Collection.Name) {
		return true
	}
	for _, tag := range r.Tags {
		if m.match(tag) {
			return true
		}
	}
	return false
}

// CollectionFilter holds the active collection filters.
type CollectionFilter struct {
	Query       string // case-insensitive substring over name and description
	Category    models.Category
	Language    models.Language
	ContentType models.ContentType
}

// FilterCollections returns the collections matching every active filter, in input order.
func FilterCollections(items []models.Collection, f CollectionFilter) []models.Collection {
	m := newTextMatcher(f.Query)
	out := make([]models.Collection, 0, len(items))
	for _, c := range items {
		if f.Category != "" && (c.Category == nil || *c.Category != f.Category) {
			continue
		}
		if f.Language != "" && (c.Language == nil || *c.Language != f.Language) {
			continue
		}
		if f.ContentType != "" && c.ContentType != f.ContentType {
			continue
		}
		if m != nil && !m.match(c.Name) && !m.matchPtr(c.Description) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// CollectionsForResourceType returns the collections a resource of type t may
// join: pdf and article go in books, audio in audio, video in video, and any
// other type only in collections with no recognised content type.
func CollectionsForResourceType(collections []models.Collection, t models.ResourceType) []models.Collection {
	want, typed := models.ContentTypeFor(t)
	out := make([]models.Collection, 0, len(collections))
	for _, c := range collections {
		if typed {
			if c.ContentType == want {
				out = append(out, c)
			}
			continue
		}
		if !models.Contains(models.ContentTypes, c.ContentType) {
			out = append(out, c)
		}
	}
	return out
}

// textMatcher does Unicode case-folded substring matching. Folding covers
// Latin case as well as the few cased scripts admins paste into titles;
// Arabic has no case and passes through unchanged.
type textMatcher struct {
	folder cases.Caser
	needle string
}

// newTextMatcher returns nil for a blank query.
func newTextMatcher(query string) *textMatcher {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	folder := cases.Fold()
	return &textMatcher{folder: folder, needle: folder.String(query)}
}

func (m *textMatcher) match(s string) bool {
	return s != "" && strings.Contains(m.folder.String(s), m.needle)
}

func (m *textMatcher) matchPtr(s *string) bool {
	return s != nil && m.match(*s)
}
