package repositories

import (
	"context"

	"scholarportal/internal/domain/models"
)

// IjazaRepository defines data access operations for ijazat
type IjazaRepository interface {
	// List returns all ijazat, most recent year first
	List(ctx context.Context) ([]models.Ijaza, error)

	Create(ctx context.Context, ijaza *models.Ijaza) error

	// Delete returns domain.ErrNotFound when no row matched
	Delete(ctx context.Context, id string) error
}
