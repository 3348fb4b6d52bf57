package memory

import (
	"cmp"
	"context"
	"slices"

	"scholarportal/internal/domain"
	"scholarportal/internal/domain/models"
)

type ijazaRepository struct {
	store *Store
}

func (r *ijazaRepository) List(ctx context.Context) ([]models.Ijaza, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]models.Ijaza, 0, len(r.store.ijazat))
	for _, i := range r.store.ijazat {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b models.Ijaza) int {
		if c := cmp.Compare(b.Year, a.Year); c != 0 {
			return c
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func (r *ijazaRepository) Create(ctx context.Context, ijaza *models.Ijaza) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ijaza.ID = r.store.newID()
	r.store.ijazat[ijaza.ID] = *ijaza
	return nil
}

func (r *ijazaRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.ijazat[id]; !ok {
		return &domain.NotFoundError{ResourceType: "ijaza", ID: id}
	}
	delete(r.store.ijazat, id)
	return nil
}
