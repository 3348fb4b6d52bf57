package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/services"
	"scholarportal/internal/repository/memory"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

func present(s string) models.OptionalString {
	return models.OptionalString{Present: true, Value: &s}
}

// recordingNotifier captures notifications instead of sending mail.
type recordingNotifier struct {
	mu       sync.Mutex
	answered []models.Question
	rejected []models.Question
}

func (n *recordingNotifier) QuestionAnswered(ctx context.Context, q *models.Question) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.answered = append(n.answered, *q)
}

func (n *recordingNotifier) QuestionRejected(ctx context.Context, q *models.Question) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.rejected = append(n.rejected, *q)
}

type fixture struct {
	store       *memory.Store
	resources   services.ResourceService
	collections services.CollectionService
	questions   services.QuestionService
	settings    services.SiteSettingsService
	catalog     services.CatalogService
	notifier    *recordingNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	tx := memory.NewTransactionManager()
	logger := discardLogger()
	notifier := &recordingNotifier{}
	settings := NewSiteSettingsService(store.SiteSettings(), store.Resources(), logger)

	return &fixture{
		store:       store,
		resources:   NewResourceService(store.Resources(), store.Collections(), tx, logger),
		collections: NewCollectionService(store.Collections(), store.Resources(), tx, logger),
		questions:   NewQuestionService(store.Questions(), notifier, logger),
		settings:    settings,
		catalog:     NewCatalogService(store.Resources(), store.Collections(), settings, logger),
		notifier:    notifier,
	}
}

func (f *fixture) createCollection(t *testing.T, name string, ct models.ContentType, category *models.Category) *models.Collection {
	t.Helper()
	c, err := f.collections.CreateCollection(context.Background(), &services.CreateCollectionRequest{
		Name: name, ContentType: &ct, Category: category,
	})
	if err != nil {
		t.Fatalf("create collection: %v", err)
	}
	return c
}

func (f *fixture) createResource(t *testing.T, url string, collectionID *string) *models.Resource {
	t.Helper()
	r, err := f.resources.CreateResource(context.Background(), &services.CreateResourceRequest{
		Title:        "Resource " + url,
		Type:         models.ResourceTypePDF,
		Language:     models.LanguageArabic,
		Category:     models.CategoryFiqh,
		URL:          url,
		CollectionID: collectionID,
	})
	if err != nil {
		t.Fatalf("create resource: %v", err)
	}
	return r
}
