package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/repositories"
	"scholarportal/internal/domain/services"
	"scholarportal/internal/validation"
)

// collectionService implements the CollectionService interface
type collectionService struct {
	collectionRepo repositories.CollectionRepository
	resourceRepo   repositories.ResourceRepository
	guard          *UniquenessGuard
	txManager      repositories.TransactionManager
	logger         *slog.Logger
}

// NewCollectionService creates a new collection service
func NewCollectionService(
	collectionRepo repositories.CollectionRepository,
	resourceRepo repositories.ResourceRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.CollectionService {
	return &collectionService{
		collectionRepo: collectionRepo,
		resourceRepo:   resourceRepo,
		guard:          NewUniquenessGuard(resourceRepo, collectionRepo),
		txManager:      txManager,
		logger:         logger,
	}
}

// ListCollections returns every collection ordered by name
func (s *collectionService) ListCollections(ctx context.Context) ([]models.Collection, error) {
	return s.collectionRepo.List(ctx)
}

// GetCollection retrieves a collection by ID
func (s *collectionService) GetCollection(ctx context.Context, id string) (*models.Collection, error) {
	return s.collectionRepo.GetByID(ctx, id)
}

// CreateCollection creates a new collection
func (s *collectionService) CreateCollection(ctx context.Context, req *services.CreateCollectionRequest) (*models.Collection, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = trimmedOrNil(req.Description)
	req.CoverImageURL = cleanURLOrNil(req.CoverImageURL)

	if err := validation.CreateCollection(req); err != nil {
		return nil, err
	}

	collection := &models.Collection{
		Name:          req.Name,
		Description:   req.Description,
		CoverImageURL: req.CoverImageURL,
		Language:      req.Language,
		Category:      req.Category,
		ContentType:   *req.ContentType,
	}

	if err := s.guard.CheckCollection(ctx, collectionKey(collection), ""); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	collection.CreatedAt = now
	collection.UpdatedAt = now

	if err := s.collectionRepo.Create(ctx, collection); err != nil {
		return nil, err
	}

	s.logger.Info("collection created",
		"id", collection.ID,
		"name", collection.Name,
		"content_type", collection.ContentType,
	)

	return collection, nil
}

// UpdateCollection applies a partial update. The uniqueness triple is
// checked on the merged row, so changing only the category can still conflict.
func (s *collectionService) UpdateCollection(ctx context.Context, id string, req *services.UpdateCollectionRequest) (*models.Collection, error) {
	req.Name = trimPtr(req.Name)
	req.Description = trimOptional(req.Description)
	req.CoverImageURL = cleanOptionalURL(req.CoverImageURL)
	req.Language = trimOptional(req.Language)
	req.Category = trimOptional(req.Category)
	req.ContentType = trimOptional(req.ContentType)

	if err := validation.UpdateCollection(req); err != nil {
		return nil, err
	}

	var updated *models.Collection
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		collection, err := s.collectionRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		applyCollectionUpdate(collection, req)

		if err := s.guard.CheckCollection(txCtx, collectionKey(collection), id); err != nil {
			return err
		}

		collection.UpdatedAt = time.Now().UTC()
		if err := s.collectionRepo.Update(txCtx, collection); err != nil {
			return err
		}
		updated = collection
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("collection updated", "id", id)
	return updated, nil
}

// DeleteCollection unlinks the collection's resources, then deletes it.
// A failed unlink is logged and does not stop the delete; the foreign key
// also nulls the link when the row goes.
func (s *collectionService) DeleteCollection(ctx context.Context, id string) error {
	unlinked, err := s.resourceRepo.UnlinkCollection(ctx, id)
	if err != nil {
		s.logger.Error("failed to unlink resources from collection",
			"collection_id", id,
			"error", err,
		)
	}

	if err := s.collectionRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("collection deleted",
		"id", id,
		"unlinked_resources", unlinked,
	)
	return nil
}

func collectionKey(c *models.Collection) repositories.CollectionKey {
	return repositories.CollectionKey{
		Name:        c.Name,
		ContentType: c.ContentType,
		Category:    c.Category,
	}
}

func applyCollectionUpdate(c *models.Collection, req *services.UpdateCollectionRequest) {
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Description.Present {
		c.Description = req.Description.Resolve()
	}
	if req.CoverImageURL.Present {
		c.CoverImageURL = req.CoverImageURL.Resolve()
	}
	if req.Language.Present {
		c.Language = enumPtr[models.Language](req.Language.Resolve())
	}
	if req.Category.Present {
		c.Category = enumPtr[models.Category](req.Category.Resolve())
	}
	if req.ContentType.Present && !req.ContentType.Cleared() {
		c.ContentType = models.ContentType(*req.ContentType.Value)
	}
}

func enumPtr[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}
