package adminform

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarportal/internal/domain"
	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/services"
)

func strPtr(s string) *string { return &s }

func sampleCollection() *models.Collection {
	lang := models.LanguageArabic
	cat := models.CategoryFiqh
	return &models.Collection{
		ID:          "c1",
		Name:        "Fiqh Lessons",
		Description: strPtr("weekly"),
		Language:    &lang,
		Category:    &cat,
		ContentType: models.ContentTypeAudio,
	}
}

func sampleResource() *models.Resource {
	return &models.Resource{
		ID:           "r1",
		Title:        "Lesson 1",
		Type:         models.ResourceTypeAudio,
		Language:     models.LanguageArabic,
		Category:     models.CategoryFiqh,
		Tags:         []string{"salah", "wudu"},
		URL:          "https://example.com/1.mp3",
		CollectionID: strPtr("c1"),
	}
}

func TestDiffCollection(t *testing.T) {
	original := CollectionDraftFrom(sampleCollection())

	tests := []struct {
		name   string
		mutate func(d *CollectionDraft)
		want   Patch
	}{
		{
			name:   "unchanged sends only the name",
			mutate: func(d *CollectionDraft) {},
			want:   Patch{"name": "Fiqh Lessons"},
		},
		{
			name:   "single change sends it with the name",
			mutate: func(d *CollectionDraft) { d.Category = "family" },
			want:   Patch{"name": "Fiqh Lessons", "category": "family"},
		},
		{
			name:   "whitespace only is not a change",
			mutate: func(d *CollectionDraft) { d.Description = "  weekly " },
			want:   Patch{"name": "Fiqh Lessons"},
		},
		{
			name:   "blanking an optional field clears it",
			mutate: func(d *CollectionDraft) { d.Description = "" },
			want:   Patch{"name": "Fiqh Lessons", "description": nil},
		},
		{
			name:   "content type is never sent empty",
			mutate: func(d *CollectionDraft) { d.ContentType = "" },
			want:   Patch{"name": "Fiqh Lessons"},
		},
		{
			name:   "content type change is sent",
			mutate: func(d *CollectionDraft) { d.ContentType = "book" },
			want:   Patch{"name": "Fiqh Lessons", "collection_content_type": "book"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := original
			tt.mutate(&draft)
			assert.Equal(t, tt.want, DiffCollection(original, draft))
		})
	}
}

func TestDiffCollectionNilAndEmptyAreEquivalent(t *testing.T) {
	c := sampleCollection()
	c.Description = nil
	original := CollectionDraftFrom(c)

	c.Description = strPtr("")
	draft := CollectionDraftFrom(c)

	assert.Equal(t, []string{"name"}, DiffCollection(original, draft).Keys())
}

func TestDiffResource(t *testing.T) {
	original := ResourceDraftFrom(sampleResource())

	tests := []struct {
		name   string
		mutate func(d *ResourceDraft)
		want   Patch
	}{
		{
			name:   "unchanged sends only the title",
			mutate: func(d *ResourceDraft) {},
			want:   Patch{"title": "Lesson 1"},
		},
		{
			name:   "retyped tags with the same values are not a change",
			mutate: func(d *ResourceDraft) { d.Tags = "salah ,wudu," },
			want:   Patch{"title": "Lesson 1"},
		},
		{
			name:   "tag change sends the full list",
			mutate: func(d *ResourceDraft) { d.Tags = "salah" },
			want:   Patch{"title": "Lesson 1", "tags": []string{"salah"}},
		},
		{
			name:   "removing every tag sends an empty list",
			mutate: func(d *ResourceDraft) { d.Tags = " , " },
			want:   Patch{"title": "Lesson 1", "tags": []string{}},
		},
		{
			name:   "unlinking the collection sends null",
			mutate: func(d *ResourceDraft) { d.CollectionID = "" },
			want:   Patch{"title": "Lesson 1", "collection_id": nil},
		},
		{
			name:   "duplicated pasted url collapses to the original",
			mutate: func(d *ResourceDraft) { d.URL = "https://example.com/1.mp3https://example.com/1.mp3" },
			want:   Patch{"title": "Lesson 1"},
		},
		{
			name:   "wayback url is sent as typed",
			mutate: func(d *ResourceDraft) { d.URL = "https://web.archive.org/web/2020/https://example.com/1.mp3" },
			want:   Patch{"title": "Lesson 1", "url": "https://web.archive.org/web/2020/https://example.com/1.mp3"},
		},
		{
			name:   "title edit is trimmed",
			mutate: func(d *ResourceDraft) { d.Title = " Lesson One " },
			want:   Patch{"title": "Lesson One"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := original
			tt.mutate(&draft)
			assert.Equal(t, tt.want, DiffResource(original, draft))
		})
	}
}

func TestResourceDraftCreateRequest(t *testing.T) {
	d := ResourceDraft{
		Title:    " New ",
		Type:     "pdf",
		Language: "en",
		Category: "quran",
		Tags:     "a, b",
		URL:      " https://example.com/a.pdf ",
	}
	req := d.CreateRequest()
	assert.Equal(t, "New", req.Title)
	assert.Equal(t, []string{"a", "b"}, req.Tags)
	assert.Equal(t, "https://example.com/a.pdf", req.URL)
	assert.Nil(t, req.CollectionID)
	assert.Nil(t, req.CoverImageURL)
}

func TestCollectionDraftCreateRequestLeavesMissingContentTypeNil(t *testing.T) {
	req := CollectionDraft{Name: "x"}.CreateRequest()
	assert.Nil(t, req.ContentType)
	assert.Nil(t, req.Language)
}

func TestFormLifecycle(t *testing.T) {
	var f Form[ResourceDraft]
	assert.Equal(t, ModeClosed, f.Mode())
	assert.ErrorIs(t, f.Update(func(d *ResourceDraft) {}), ErrNotOpen)

	original := ResourceDraftFrom(sampleResource())
	f.OpenEdit("r1", original)
	require.NoError(t, f.Update(func(d *ResourceDraft) { d.Title = "changed" }))

	assert.Equal(t, "changed", f.Draft().Title)
	assert.Equal(t, "Lesson 1", f.Original().Title, "draft edits must not leak into the original")

	f.Close()
	assert.Equal(t, ModeClosed, f.Mode())
	assert.Empty(t, f.Draft().Title)
}

func TestSubmitGuard(t *testing.T) {
	var f Form[CollectionDraft]
	f.OpenCreate(CollectionDraft{Name: "x"})

	require.NoError(t, f.BeginSubmit())
	assert.ErrorIs(t, f.BeginSubmit(), ErrSubmitInFlight)

	f.EndSubmit(errors.New("boom"))
	assert.False(t, f.Submitting())
	assert.Equal(t, ModeCreate, f.Mode(), "failed submit keeps the form open")
	assert.Equal(t, "x", f.Draft().Name)

	require.NoError(t, f.BeginSubmit())
	f.EndSubmit(nil)
	assert.Equal(t, ModeClosed, f.Mode())
}

func TestEndSubmitExposesFieldErrors(t *testing.T) {
	var f Form[CollectionDraft]
	f.OpenCreate(CollectionDraft{})
	require.NoError(t, f.BeginSubmit())

	f.EndSubmit(domain.NewValidationError("name", "required"))
	assert.Equal(t, map[string]string{"name": "required"}, f.FieldErrors())
}

type blockingStore struct {
	mu      sync.Mutex
	calls   int
	release chan struct{}
	patches []Patch
	err     error
}

func (s *blockingStore) CreateCollection(ctx context.Context, req *services.CreateCollectionRequest) (*models.Collection, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.release != nil {
		<-s.release
	}
	if s.err != nil {
		return nil, s.err
	}
	return &models.Collection{ID: "new", Name: req.Name}, nil
}

func (s *blockingStore) UpdateCollection(ctx context.Context, id string, patch Patch) (*models.Collection, error) {
	s.mu.Lock()
	s.calls++
	s.patches = append(s.patches, patch)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return &models.Collection{ID: id}, nil
}

func TestSubmitCollectionRejectsDoubleSubmit(t *testing.T) {
	store := &blockingStore{release: make(chan struct{})}
	var f Form[CollectionDraft]
	f.OpenCreate(CollectionDraft{Name: "x", ContentType: "book"})

	done := make(chan error, 1)
	go func() {
		_, err := SubmitCollection(context.Background(), &f, store)
		done <- err
	}()

	require.Eventually(t, f.Submitting, time.Second, time.Millisecond)
	_, err := SubmitCollection(context.Background(), &f, store)
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(store.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, store.calls)
}

func TestSubmitCollectionEditSendsMinimalPatch(t *testing.T) {
	store := &blockingStore{}
	var f Form[CollectionDraft]
	f.OpenEdit("c1", CollectionDraftFrom(sampleCollection()))
	require.NoError(t, f.Update(func(d *CollectionDraft) { d.Language = "en" }))

	_, err := SubmitCollection(context.Background(), &f, store)
	require.NoError(t, err)
	require.Len(t, store.patches, 1)
	assert.Equal(t, Patch{"name": "Fiqh Lessons", "language": "en"}, store.patches[0])
}

type fakeUploader struct {
	url string
	err error
}

func (u fakeUploader) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	return u.url, nil
}

func TestAttach(t *testing.T) {
	setCover := func(d *ResourceDraft, url string) { d.CoverImageURL = url }

	t.Run("success writes the url into the draft", func(t *testing.T) {
		var f Form[ResourceDraft]
		f.OpenCreate(ResourceDraft{Title: "keep me"})

		url, err := Attach(context.Background(), &f, fakeUploader{url: "https://cdn/x.png"},
			"covers", "x.png", "image/png", strings.NewReader("png"), setCover)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn/x.png", url)
		assert.Equal(t, "https://cdn/x.png", f.Draft().CoverImageURL)
	})

	t.Run("failure keeps the draft", func(t *testing.T) {
		var f Form[ResourceDraft]
		f.OpenCreate(ResourceDraft{Title: "keep me", CoverImageURL: "https://old"})

		_, err := Attach(context.Background(), &f, fakeUploader{err: errors.New("bucket down")},
			"covers", "x.png", "image/png", strings.NewReader("png"), setCover)
		require.Error(t, err)
		assert.Equal(t, "keep me", f.Draft().Title)
		assert.Equal(t, "https://old", f.Draft().CoverImageURL)
		assert.ErrorContains(t, f.LastError(), "bucket down")
	})

	t.Run("closed form", func(t *testing.T) {
		var f Form[ResourceDraft]
		_, err := Attach(context.Background(), &f, fakeUploader{url: "u"}, "", "x", "", strings.NewReader(""), setCover)
		assert.ErrorIs(t, err, ErrNotOpen)
	})
}
