// Package memory keeps every portal entity in process memory. It backs
// DATA_BACKEND=memory and the service tests, and it enforces the same unique
// keys and foreign-key behaviour as the relational schema so callers see the
// same errors from both backends.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/repositories"
)

// Store is the shared state behind all memory repositories.
// It is safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	collections map[string]models.Collection
	resources   map[string]models.Resource
	questions   map[string]models.Question
	ijazat      map[string]models.Ijaza
	settings    *models.SiteSettings
	newID       func() string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		collections: make(map[string]models.Collection),
		resources:   make(map[string]models.Resource),
		questions:   make(map[string]models.Question),
		ijazat:      make(map[string]models.Ijaza),
		newID:       uuid.NewString,
	}
}

// Resources returns the resource repository view of the store.
func (s *Store) Resources() repositories.ResourceRepository { return &resourceRepository{s} }

// Collections returns the collection repository view of the store.
func (s *Store) Collections() repositories.CollectionRepository { return &collectionRepository{s} }

// Questions returns the question repository view of the store.
func (s *Store) Questions() repositories.QuestionRepository { return &questionRepository{s} }

// Ijazat returns the ijaza repository view of the store.
func (s *Store) Ijazat() repositories.IjazaRepository { return &ijazaRepository{s} }

// SiteSettings returns the settings repository view of the store.
func (s *Store) SiteSettings() repositories.SiteSettingsRepository { return &siteSettingsRepository{s} }

// TransactionManager runs fn directly. Each memory write is applied under the
// store lock as it happens; a failing fn does not undo earlier writes.
type TransactionManager struct{}

// NewTransactionManager returns a no-op transaction manager.
func NewTransactionManager() repositories.TransactionManager { return TransactionManager{} }

// ExecTx executes fn without a transaction
func (TransactionManager) ExecTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

func cloneResource(r models.Resource) models.Resource {
	r.Tags = slices.Clone(r.Tags)
	r.Collection = nil
	return r
}

func cloneSettings(s *models.SiteSettings) *models.SiteSettings {
	out := *s
	out.FeaturedResourceIDs = make([]*string, len(s.FeaturedResourceIDs))
	for i, id := range s.FeaturedResourceIDs {
		if id != nil {
			v := *id
			out.FeaturedResourceIDs[i] = &v
		}
	}
	return &out
}

func sameCategory(a, b *models.Category) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
