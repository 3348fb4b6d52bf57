package memory

import (
	"cmp"
	"context"
	"slices"

	"scholarportal/internal/domain"
	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/repositories"
)

type collectionRepository struct {
	store *Store
}

func (r *collectionRepository) List(ctx context.Context) ([]models.Collection, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]models.Collection, 0, len(r.store.collections))
	for _, c := range r.store.collections {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b models.Collection) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *collectionRepository) GetByID(ctx context.Context, id string) (*models.Collection, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.collections[id]
	if !ok {
		return nil, &domain.NotFoundError{ResourceType: "collection", ID: id}
	}
	return &c, nil
}

func (r *collectionRepository) FindIDByKey(ctx context.Context, key repositories.CollectionKey, excludeID string) (string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.findByKey(key, excludeID), nil
}

func (r *collectionRepository) Create(ctx context.Context, collection *models.Collection) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if id := r.findByKey(keyOf(collection), ""); id != "" {
		return domain.NewCollectionConflict(id)
	}

	collection.ID = r.store.newID()
	r.store.collections[collection.ID] = *collection
	return nil
}

func (r *collectionRepository) Update(ctx context.Context, collection *models.Collection) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.collections[collection.ID]
	if !ok {
		return &domain.NotFoundError{ResourceType: "collection", ID: collection.ID}
	}
	if id := r.findByKey(keyOf(collection), collection.ID); id != "" {
		return domain.NewCollectionConflict(id)
	}

	updated := *collection
	updated.CreatedAt = existing.CreatedAt
	r.store.collections[collection.ID] = updated
	return nil
}

// Delete removes the collection and, like ON DELETE SET NULL, unlinks any
// resource still pointing at it.
func (r *collectionRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.collections[id]; !ok {
		return &domain.NotFoundError{ResourceType: "collection", ID: id}
	}
	r.store.unlinkLocked(id)
	delete(r.store.collections, id)
	return nil
}

func (r *collectionRepository) findByKey(key repositories.CollectionKey, excludeID string) string {
	for id, c := range r.store.collections {
		if id == excludeID {
			continue
		}
		if c.Name == key.Name && c.ContentType == key.ContentType && sameCategory(c.Category, key.Category) {
			return id
		}
	}
	return ""
}

func keyOf(c *models.Collection) repositories.CollectionKey {
	return repositories.CollectionKey{Name: c.Name, ContentType: c.ContentType, Category: c.Category}
}
