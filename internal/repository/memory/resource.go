package memory

import (
	"cmp"
	"context"
	"slices"

	"scholarportal/internal/domain"
	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/repositories"
)

type resourceRepository struct {
	store *Store
}

func (r *resourceRepository) List(ctx context.Context, query repositories.ResourceQuery) ([]models.Resource, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]models.Resource, 0, len(r.store.resources))
	for _, res := range r.store.resources {
		if query.CollectionID != nil && res.CollectionKey() != *query.CollectionID {
			continue
		}
		out = append(out, r.joined(res))
	}

	slices.SortFunc(out, func(a, b models.Resource) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	if query.Limit > 0 && len(out) > query.Limit {
		out = out[:query.Limit]
	}
	return out, nil
}

func (r *resourceRepository) GetByID(ctx context.Context, id string) (*models.Resource, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	res, ok := r.store.resources[id]
	if !ok {
		return nil, &domain.NotFoundError{ResourceType: "resource", ID: id}
	}
	joined := r.joined(res)
	return &joined, nil
}

func (r *resourceRepository) FindIDByURL(ctx context.Context, url, excludeID string) (string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.findByURL(url, excludeID), nil
}

func (r *resourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.checkConstraints(resource, ""); err != nil {
		return err
	}

	resource.ID = r.store.newID()
	r.store.resources[resource.ID] = cloneResource(*resource)
	return nil
}

func (r *resourceRepository) Update(ctx context.Context, resource *models.Resource) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.resources[resource.ID]
	if !ok {
		return &domain.NotFoundError{ResourceType: "resource", ID: resource.ID}
	}
	if err := r.checkConstraints(resource, resource.ID); err != nil {
		return err
	}

	updated := cloneResource(*resource)
	updated.CreatedAt = existing.CreatedAt
	r.store.resources[resource.ID] = updated
	return nil
}

func (r *resourceRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.resources[id]; !ok {
		return &domain.NotFoundError{ResourceType: "resource", ID: id}
	}
	delete(r.store.resources, id)
	return nil
}

func (r *resourceRepository) UnlinkCollection(ctx context.Context, collectionID string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.unlinkLocked(collectionID), nil
}

// checkConstraints mirrors the url unique index and the collection foreign key.
func (r *resourceRepository) checkConstraints(resource *models.Resource, excludeID string) error {
	if id := r.findByURL(resource.URL, excludeID); id != "" {
		return domain.NewResourceURLConflict(id)
	}
	if resource.CollectionID != nil {
		if _, ok := r.store.collections[*resource.CollectionID]; !ok {
			return domain.NewValidationError("collection_id", "collection does not exist")
		}
	}
	return nil
}

func (r *resourceRepository) findByURL(url, excludeID string) string {
	for id, res := range r.store.resources {
		if id != excludeID && res.URL == url {
			return id
		}
	}
	return ""
}

// joined returns a copy of res with its collection reference filled in.
func (r *resourceRepository) joined(res models.Resource) models.Resource {
	out := cloneResource(res)
	if res.CollectionID != nil {
		if c, ok := r.store.collections[*res.CollectionID]; ok {
			out.Collection = &models.CollectionRef{ID: c.ID, Name: c.Name, ContentType: c.ContentType}
		}
	}
	return out
}

// unlinkLocked nulls collection_id on every member of collectionID.
// Caller must hold the write lock.
func (s *Store) unlinkLocked(collectionID string) int64 {
	var n int64
	for id, res := range s.resources {
		if res.CollectionKey() == collectionID {
			res.CollectionID = nil
			s.resources[id] = res
			n++
		}
	}
	return n
}
