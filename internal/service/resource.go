package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"scholarportal/internal/domain"
	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/repositories"
	"scholarportal/internal/domain/services"
	"scholarportal/internal/validation"
)

// resourceService implements the ResourceService interface
type resourceService struct {
	resourceRepo   repositories.ResourceRepository
	collectionRepo repositories.CollectionRepository
	guard          *UniquenessGuard
	txManager      repositories.TransactionManager
	logger         *slog.Logger
}

// NewResourceService creates a new resource service
func NewResourceService(
	resourceRepo repositories.ResourceRepository,
	collectionRepo repositories.CollectionRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.ResourceService {
	return &resourceService{
		resourceRepo:   resourceRepo,
		collectionRepo: collectionRepo,
		guard:          NewUniquenessGuard(resourceRepo, collectionRepo),
		txManager:      txManager,
		logger:         logger,
	}
}

// ListResources returns every resource, newest first
func (s *resourceService) ListResources(ctx context.Context) ([]models.Resource, error) {
	return s.resourceRepo.List(ctx, repositories.ResourceQuery{})
}

// GetResource retrieves a resource by ID
func (s *resourceService) GetResource(ctx context.Context, id string) (*models.Resource, error) {
	return s.resourceRepo.GetByID(ctx, id)
}

// CreateResource creates a new resource
func (s *resourceService) CreateResource(ctx context.Context, req *services.CreateResourceRequest) (*models.Resource, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.URL = validation.CleanDuplicatedURL(req.URL)
	req.CoverImageURL = cleanURLOrNil(req.CoverImageURL)
	req.CollectionID = trimmedOrNil(req.CollectionID)
	req.Description = trimmedOrNil(req.Description)
	req.Tags = normalizeTags(req.Tags)

	if err := validation.CreateResource(req); err != nil {
		return nil, err
	}

	if err := s.ensureCollection(ctx, req.CollectionID); err != nil {
		return nil, err
	}
	if err := s.guard.CheckResourceURL(ctx, req.URL, ""); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	resource := &models.Resource{
		Title:         req.Title,
		Description:   req.Description,
		Type:          req.Type,
		Language:      req.Language,
		Category:      req.Category,
		Tags:          req.Tags,
		URL:           req.URL,
		CoverImageURL: req.CoverImageURL,
		CollectionID:  req.CollectionID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		return nil, err
	}

	s.logger.Info("resource created",
		"id", resource.ID,
		"type", resource.Type,
		"collection_id", resource.CollectionKey(),
	)

	return s.resourceRepo.GetByID(ctx, resource.ID)
}

// UpdateResource applies a partial update to a resource
func (s *resourceService) UpdateResource(ctx context.Context, id string, req *services.UpdateResourceRequest) (*models.Resource, error) {
	req.Title = trimPtr(req.Title)
	req.Description = trimOptional(req.Description)
	req.CoverImageURL = cleanOptionalURL(req.CoverImageURL)
	req.CollectionID = trimOptional(req.CollectionID)
	if req.URL != nil {
		cleaned := validation.CleanDuplicatedURL(*req.URL)
		req.URL = &cleaned
	}

	if err := validation.UpdateResource(req); err != nil {
		return nil, err
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		resource, err := s.resourceRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		applyResourceUpdate(resource, req)

		if req.CollectionID.Present {
			if err := s.ensureCollection(txCtx, resource.CollectionID); err != nil {
				return err
			}
		}
		if req.URL != nil {
			if err := s.guard.CheckResourceURL(txCtx, resource.URL, id); err != nil {
				return err
			}
		}

		resource.UpdatedAt = time.Now().UTC()
		return s.resourceRepo.Update(txCtx, resource)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("resource updated", "id", id)

	return s.resourceRepo.GetByID(ctx, id)
}

// DeleteResource deletes a resource
func (s *resourceService) DeleteResource(ctx context.Context, id string) error {
	if err := s.resourceRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("resource deleted", "id", id)
	return nil
}

// ensureCollection rejects links to collections that do not exist.
func (s *resourceService) ensureCollection(ctx context.Context, collectionID *string) error {
	if collectionID == nil {
		return nil
	}
	if _, err := s.collectionRepo.GetByID(ctx, *collectionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("collection_id", "collection does not exist")
		}
		return fmt.Errorf("look up collection: %w", err)
	}
	return nil
}

func applyResourceUpdate(r *models.Resource, req *services.UpdateResourceRequest) {
	if req.Title != nil {
		r.Title = *req.Title
	}
	if req.Description.Present {
		r.Description = req.Description.Resolve()
	}
	if req.Type != nil {
		r.Type = *req.Type
	}
	if req.Language != nil {
		r.Language = *req.Language
	}
	if req.Category != nil {
		r.Category = *req.Category
	}
	if req.Tags.Present {
		r.Tags = normalizeTags(req.Tags.Value)
	}
	if req.URL != nil {
		r.URL = *req.URL
	}
	if req.CoverImageURL.Present {
		r.CoverImageURL = req.CoverImageURL.Resolve()
	}
	if req.CollectionID.Present {
		r.CollectionID = req.CollectionID.Resolve()
	}
	// The joined ref is stale once the link changes; it is reloaded after save.
	r.Collection = nil
}
