package listing

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarportal/internal/domain/models"
)

var base = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func resource(id string, minutes int, collection *models.CollectionRef) models.Resource {
	r := models.Resource{
		ID:        id,
		Title:     "Resource " + id,
		Type:      models.ResourceTypePDF,
		Language:  models.LanguageArabic,
		Category:  models.CategoryFiqh,
		URL:       "https://example.com/" + id,
		CreatedAt: base.Add(time.Duration(minutes) * time.Minute),
	}
	if collection != nil {
		r.CollectionID = strPtr(collection.ID)
		r.Collection = collection
	}
	return r
}

func fixture() []models.Resource {
	zad := &models.CollectionRef{ID: "c-zad", Name: "Zad al-Mustaqni", ContentType: models.ContentTypeBook}
	bulugh := &models.CollectionRef{ID: "c-bulugh", Name: "Bulugh al-Maram", ContentType: models.ContentTypeAudio}

	items := []models.Resource{
		resource("r1", 30, zad),
		resource("r2", 10, zad),
		resource("r3", 20, nil),
		resource("r4", 5, bulugh),
		resource("r5", 40, zad),
		resource("r6", 1, nil),
	}
	items[0].Title = "Kitab al-Taharah"
	items[1].Description = strPtr("Explains WUDU step by step")
	items[2].Tags = []string{"Ramadan", "siyam"}
	items[3].Language = models.LanguageEnglish
	items[3].Category = models.CategoryAhadith
	items[3].Type = models.ResourceTypeAudio
	return items
}

func ids(items []models.Resource) []string {
	out := make([]string, len(items))
	for i, r := range items {
		out[i] = r.ID
	}
	return out
}

func TestFilterResources(t *testing.T) {
	items := fixture()

	tests := []struct {
		name   string
		filter ResourceFilter
		want   []string
	}{
		{"no filters keeps everything", ResourceFilter{}, []string{"r1", "r2", "r3", "r4", "r5", "r6"}},
		{"title is case-insensitive", ResourceFilter{Query: "taharah"}, []string{"r1"}},
		{"description", ResourceFilter{Query: "wudu"}, []string{"r2"}},
		{"tags", ResourceFilter{Query: "RAMADAN"}, []string{"r3"}},
		{"collection name", ResourceFilter{Query: "bulugh"}, []string{"r4"}},
		{"category", ResourceFilter{Category: models.CategoryAhadith}, []string{"r4"}},
		{"language", ResourceFilter{Language: models.LanguageEnglish}, []string{"r4"}},
		{"type", ResourceFilter{Type: models.ResourceTypeAudio}, []string{"r4"}},
		{"collection", ResourceFilter{CollectionID: "c-zad"}, []string{"r1", "r2", "r5"}},
		{"no collection", ResourceFilter{CollectionID: NoCollection}, []string{"r3", "r6"}},
		{"content type", ResourceFilter{ContentType: models.ContentTypeBook}, []string{"r1", "r2", "r5"}},
		{"filters combine with AND", ResourceFilter{CollectionID: "c-zad", Query: "resource"}, []string{"r2", "r5"}},
		{"nothing matches", ResourceFilter{Query: "zzz"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterResources(items, tt.filter)))
		})
	}
}

func TestFilterDoesNotMutateSource(t *testing.T) {
	items := fixture()
	before := ids(items)

	FilterResources(items, ResourceFilter{Query: "zad"})
	GroupByCollection(items)
	Positioned(items)

	assert.Equal(t, before, ids(items))
}

func TestFilterIsIdempotent(t *testing.T) {
	items := fixture()
	f := ResourceFilter{CollectionID: "c-zad"}

	once := FilterResources(items, f)
	twice := FilterResources(once, f)
	assert.Equal(t, ids(once), ids(twice))
}

func TestGroupByCollectionIsPartition(t *testing.T) {
	items := fixture()
	groups := GroupByCollection(items)

	seen := map[string]int{}
	for _, g := range groups {
		for _, item := range g.Items {
			seen[item.ID]++
			if g.Key == NoCollectionKey {
				assert.Nil(t, item.CollectionID)
			} else {
				assert.Equal(t, g.Key, *item.CollectionID)
			}
		}
	}
	require.Len(t, seen, len(items))
	for id, n := range seen {
		assert.Equal(t, 1, n, "resource %s appears %d times", id, n)
	}
}

func TestGroupByCollectionOrderAndPositions(t *testing.T) {
	groups := GroupByCollection(fixture())
	require.Len(t, groups, 3)

	assert.Equal(t, "c-bulugh", groups[0].Key)
	assert.Equal(t, "Bulugh al-Maram", groups[0].CollectionName)
	assert.Equal(t, "c-zad", groups[1].Key)
	assert.Equal(t, NoCollectionKey, groups[2].Key)
	assert.Nil(t, groups[2].CollectionID)

	zad := groups[1].Items
	require.Len(t, zad, 3)
	for i, want := range []string{"r2", "r1", "r5"} {
		assert.Equal(t, want, zad[i].ID)
		assert.Equal(t, i+1, zad[i].Position)
	}
}

func TestGroupingEmptyInput(t *testing.T) {
	assert.Empty(t, GroupByCollection(nil))
}

func TestPositionedTiesAreStable(t *testing.T) {
	items := []models.Resource{resource("b", 0, nil), resource("a", 0, nil), resource("c", -1, nil)}
	got := Positioned(items)
	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
	assert.Equal(t, "b", got[2].ID)
	assert.Equal(t, 3, got[2].Position)
}

func TestPositionInCollection(t *testing.T) {
	items := fixture()
	assert.Equal(t, 2, PositionInCollection(items, &items[0]))
	assert.Equal(t, 1, PositionInCollection(items, &items[1]))
	assert.Equal(t, 0, PositionInCollection(items, &items[2]))
}

func TestCollectionsForResourceType(t *testing.T) {
	collections := []models.Collection{
		{ID: "b", ContentType: models.ContentTypeBook},
		{ID: "a", ContentType: models.ContentTypeAudio},
		{ID: "v", ContentType: models.ContentTypeVideo},
		{ID: "x", ContentType: ""},
	}
	pick := func(t models.ResourceType) []string {
		var out []string
		for _, c := range CollectionsForResourceType(collections, t) {
			out = append(out, c.ID)
		}
		return out
	}

	assert.Equal(t, []string{"b"}, pick(models.ResourceTypePDF))
	assert.Equal(t, []string{"b"}, pick(models.ResourceTypeArticle))
	assert.Equal(t, []string{"a"}, pick(models.ResourceTypeAudio))
	assert.Equal(t, []string{"v"}, pick(models.ResourceTypeVideo))
	assert.Equal(t, []string{"x"}, pick(models.ResourceTypeImage))
}

func TestFilterCollections(t *testing.T) {
	fiqh := models.CategoryFiqh
	en := models.LanguageEnglish
	collections := []models.Collection{
		{ID: "1", Name: "Sharh X", ContentType: models.ContentTypeBook, Category: &fiqh},
		{ID: "2", Name: "Lectures", Description: strPtr("sharh series"), ContentType: models.ContentTypeAudio, Language: &en},
		{ID: "3", Name: "Other", ContentType: models.ContentTypeVideo},
	}

	got := FilterCollections(collections, CollectionFilter{Query: "SHARH"})
	assert.Len(t, got, 2)

	got = FilterCollections(collections, CollectionFilter{Category: models.CategoryFiqh})
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	got = FilterCollections(collections, CollectionFilter{Language: models.LanguageEnglish, ContentType: models.ContentTypeAudio})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestPaginate(t *testing.T) {
	items := make([]int, 45)
	for i := range items {
		items[i] = i
	}

	tests := []struct {
		page, perPage     int
		wantLen, wantPage int
		wantFirst         int
		wantTotalPages    int
	}{
		{1, 20, 20, 1, 0, 3},
		{3, 20, 5, 3, 40, 3},
		{0, 0, 20, 1, 0, 3},
		{2, 1000, 0, 2, -1, 1},
		{4, 20, 0, 4, -1, 3},
		{math.MaxInt, 20, 0, math.MaxInt, -1, 3},
		{math.MaxInt / 20, 20, 0, math.MaxInt / 20, -1, 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("page=%d per=%d", tt.page, tt.perPage), func(t *testing.T) {
			p := Paginate(items, tt.page, tt.perPage)
			require.NotNil(t, p.Items)
			assert.Len(t, p.Items, tt.wantLen)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, 45, p.Total)
			assert.Equal(t, tt.wantTotalPages, p.TotalPages)
			if tt.wantFirst >= 0 {
				assert.Equal(t, tt.wantFirst, p.Items[0])
			}
		})
	}
}
