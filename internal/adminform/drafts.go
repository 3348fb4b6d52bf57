package adminform

import (
	"slices"
	"sort"
	"strings"

	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/services"
	"scholarportal/internal/validation"
)

// Patch is a partial-update body keyed by wire field name. A nil value
// clears the field.
type Patch map[string]interface{}

// Keys returns the field names in sorted order.
func (p Patch) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CollectionDraft is the editable copy of a collection. Empty strings stand
// for unset optional fields.
type CollectionDraft struct {
	Name          string
	Description   string
	CoverImageURL string
	Language      string
	Category      string
	ContentType   string
}

// CollectionDraftFrom copies c into a draft.
func CollectionDraftFrom(c *models.Collection) CollectionDraft {
	d := CollectionDraft{
		Name:          c.Name,
		Description:   deref(c.Description),
		CoverImageURL: deref(c.CoverImageURL),
		ContentType:   string(c.ContentType),
	}
	if c.Language != nil {
		d.Language = string(*c.Language)
	}
	if c.Category != nil {
		d.Category = string(*c.Category)
	}
	return d
}

// CreateRequest builds the create body from the draft.
func (d CollectionDraft) CreateRequest() *services.CreateCollectionRequest {
	req := &services.CreateCollectionRequest{
		Name:          strings.TrimSpace(d.Name),
		Description:   nonBlank(d.Description),
		CoverImageURL: nonBlank(validation.CleanDuplicatedURL(d.CoverImageURL)),
	}
	if v := strings.TrimSpace(d.Language); v != "" {
		lang := models.Language(v)
		req.Language = &lang
	}
	if v := strings.TrimSpace(d.Category); v != "" {
		cat := models.Category(v)
		req.Category = &cat
	}
	if v := strings.TrimSpace(d.ContentType); v != "" {
		ct := models.ContentType(v)
		req.ContentType = &ct
	}
	return req
}

// DiffCollection returns the fields of draft that differ from original. The
// name is always present. collection_content_type is never sent empty.
func DiffCollection(original, draft CollectionDraft) Patch {
	p := Patch{"name": strings.TrimSpace(draft.Name)}
	diffText(p, "description", original.Description, draft.Description)
	diffText(p, "cover_image_url",
		validation.CleanDuplicatedURL(original.CoverImageURL),
		validation.CleanDuplicatedURL(draft.CoverImageURL))
	diffText(p, "language", original.Language, draft.Language)
	diffText(p, "category", original.Category, draft.Category)

	if ct := strings.TrimSpace(draft.ContentType); ct != "" && ct != strings.TrimSpace(original.ContentType) {
		p["collection_content_type"] = ct
	}
	return p
}

// ResourceDraft is the editable copy of a resource. Tags is the raw
// comma-separated text of the tags input.
type ResourceDraft struct {
	Title         string
	Description   string
	Type          string
	Language      string
	Category      string
	Tags          string
	URL           string
	CoverImageURL string
	CollectionID  string
}

// ResourceDraftFrom copies r into a draft.
func ResourceDraftFrom(r *models.Resource) ResourceDraft {
	return ResourceDraft{
		Title:         r.Title,
		Description:   deref(r.Description),
		Type:          string(r.Type),
		Language:      string(r.Language),
		Category:      string(r.Category),
		Tags:          strings.Join(r.Tags, ", "),
		URL:           r.URL,
		CoverImageURL: deref(r.CoverImageURL),
		CollectionID:  deref(r.CollectionID),
	}
}

// TagList splits the tags input, dropping blanks.
func (d ResourceDraft) TagList() []string {
	return SplitTags(d.Tags)
}

// CreateRequest builds the create body from the draft.
func (d ResourceDraft) CreateRequest() *services.CreateResourceRequest {
	return &services.CreateResourceRequest{
		Title:         strings.TrimSpace(d.Title),
		Description:   nonBlank(d.Description),
		Type:          models.ResourceType(strings.TrimSpace(d.Type)),
		Language:      models.Language(strings.TrimSpace(d.Language)),
		Category:      models.Category(strings.TrimSpace(d.Category)),
		Tags:          d.TagList(),
		URL:           validation.CleanDuplicatedURL(d.URL),
		CoverImageURL: nonBlank(validation.CleanDuplicatedURL(d.CoverImageURL)),
		CollectionID:  nonBlank(d.CollectionID),
	}
}

// DiffResource returns the fields of draft that differ from original. The
// title is always present.
func DiffResource(original, draft ResourceDraft) Patch {
	p := Patch{"title": strings.TrimSpace(draft.Title)}
	diffText(p, "description", original.Description, draft.Description)
	diffRequired(p, "type", original.Type, draft.Type)
	diffRequired(p, "language", original.Language, draft.Language)
	diffRequired(p, "category", original.Category, draft.Category)
	diffRequired(p, "url",
		validation.CleanDuplicatedURL(original.URL),
		validation.CleanDuplicatedURL(draft.URL))
	diffText(p, "cover_image_url",
		validation.CleanDuplicatedURL(original.CoverImageURL),
		validation.CleanDuplicatedURL(draft.CoverImageURL))
	diffText(p, "collection_id", original.CollectionID, draft.CollectionID)

	if before, after := original.TagList(), draft.TagList(); !slices.Equal(before, after) {
		p["tags"] = after
	}
	return p
}

// SplitTags turns "a, b,,c" into [a b c].
func SplitTags(s string) []string {
	tags := []string{}
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// diffText handles clearable fields: a blank draft value is sent as null.
func diffText(p Patch, field, before, after string) {
	before, after = strings.TrimSpace(before), strings.TrimSpace(after)
	if before == after {
		return
	}
	if after == "" {
		p[field] = nil
		return
	}
	p[field] = after
}

// diffRequired handles fields the server cannot clear; blanking one is
// left for server validation to reject.
func diffRequired(p Patch, field, before, after string) {
	before, after = strings.TrimSpace(before), strings.TrimSpace(after)
	if before != after {
		p[field] = after
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonBlank(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
