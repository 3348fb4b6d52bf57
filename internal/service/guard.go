package service

import (
	"context"
	"fmt"

	"scholarportal/internal/domain"
	"scholarportal/internal/domain/repositories"
)

// UniquenessGuard checks uniqueness before a write so the caller gets a
// named conflict instead of a raw constraint error. The check is racy
// against concurrent writers; the store's unique constraints stay
// authoritative and are translated to the same *domain.ConflictError.
type UniquenessGuard struct {
	resources   repositories.ResourceRepository
	collections repositories.CollectionRepository
}

// NewUniquenessGuard creates a guard over the given repositories
func NewUniquenessGuard(resources repositories.ResourceRepository, collections repositories.CollectionRepository) *UniquenessGuard {
	return &UniquenessGuard{resources: resources, collections: collections}
}

// CheckCollection fails with a conflict when another collection already has
// key. excludeID is the collection being updated, or "" on create.
func (g *UniquenessGuard) CheckCollection(ctx context.Context, key repositories.CollectionKey, excludeID string) error {
	existingID, err := g.collections.FindIDByKey(ctx, key, excludeID)
	if err != nil {
		return fmt.Errorf("check collection uniqueness: %w", err)
	}
	if existingID != "" {
		return domain.NewCollectionConflict(existingID)
	}
	return nil
}

// CheckResourceURL fails with a conflict when another resource already uses url.
func (g *UniquenessGuard) CheckResourceURL(ctx context.Context, url, excludeID string) error {
	existingID, err := g.resources.FindIDByURL(ctx, url, excludeID)
	if err != nil {
		return fmt.Errorf("check resource url uniqueness: %w", err)
	}
	if existingID != "" {
		return domain.NewResourceURLConflict(existingID)
	}
	return nil
}
