package adminform

import (
	"context"

	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/services"
)

// CollectionStore is the remote side of the collection form.
type CollectionStore interface {
	CreateCollection(ctx context.Context, req *services.CreateCollectionRequest) (*models.Collection, error)
	UpdateCollection(ctx context.Context, id string, patch Patch) (*models.Collection, error)
}

// ResourceStore is the remote side of the resource form.
type ResourceStore interface {
	CreateResource(ctx context.Context, req *services.CreateResourceRequest) (*models.Resource, error)
	UpdateResource(ctx context.Context, id string, patch Patch) (*models.Resource, error)
}

// SubmitCollection creates or patches depending on the form mode. Only one
// submission runs at a time; a second call while one is outstanding returns
// ErrSubmitInFlight without touching the store.
func SubmitCollection(ctx context.Context, f *Form[CollectionDraft], store CollectionStore) (*models.Collection, error) {
	if err := f.BeginSubmit(); err != nil {
		return nil, err
	}
	var (
		saved *models.Collection
		err   error
	)
	if f.Mode() == ModeEdit {
		saved, err = store.UpdateCollection(ctx, f.EditingID(), DiffCollection(f.Original(), f.Draft()))
	} else {
		saved, err = store.CreateCollection(ctx, f.Draft().CreateRequest())
	}
	f.EndSubmit(err)
	return saved, err
}

// SubmitResource is SubmitCollection for resources.
func SubmitResource(ctx context.Context, f *Form[ResourceDraft], store ResourceStore) (*models.Resource, error) {
	if err := f.BeginSubmit(); err != nil {
		return nil, err
	}
	var (
		saved *models.Resource
		err   error
	)
	if f.Mode() == ModeEdit {
		saved, err = store.UpdateResource(ctx, f.EditingID(), DiffResource(f.Original(), f.Draft()))
	} else {
		saved, err = store.CreateResource(ctx, f.Draft().CreateRequest())
	}
	f.EndSubmit(err)
	return saved, err
}
