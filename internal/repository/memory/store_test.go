package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarportal/internal/domain"
	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/repositories"
)

func TestCollectionUniqueKeyTreatsNullCategoryAsValue(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Collections()

	first := &models.Collection{Name: "Sharh X", ContentType: models.ContentTypeBook}
	require.NoError(t, repo.Create(ctx, first))

	dup := &models.Collection{Name: "Sharh X", ContentType: models.ContentTypeBook}
	err := repo.Create(ctx, dup)
	var conflict *domain.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, first.ID, conflict.ResourceID)

	fiqh := models.CategoryFiqh
	other := &models.Collection{Name: "Sharh X", ContentType: models.ContentTypeBook, Category: &fiqh}
	assert.NoError(t, repo.Create(ctx, other))

	id, err := repo.FindIDByKey(ctx, repositories.CollectionKey{Name: "Sharh X", ContentType: models.ContentTypeBook, Category: &fiqh}, other.ID)
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestResourceConstraints(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	resources := store.Resources()

	missing := "7b1f6f55-2a7c-4a53-9d7c-9d2f1f0c8c11"
	err := resources.Create(ctx, &models.Resource{URL: "https://a.com", CollectionID: &missing})
	assert.True(t, errors.Is(err, domain.ErrValidation))

	require.NoError(t, resources.Create(ctx, &models.Resource{URL: "https://a.com"}))
	err = resources.Create(ctx, &models.Resource{URL: "https://a.com"})
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestDeleteCollectionNullsMembers(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	c := &models.Collection{Name: "Audio", ContentType: models.ContentTypeAudio}
	require.NoError(t, store.Collections().Create(ctx, c))

	r := &models.Resource{URL: "https://a.com/1", CollectionID: &c.ID, CreatedAt: time.Now()}
	require.NoError(t, store.Resources().Create(ctx, r))

	require.NoError(t, store.Collections().Delete(ctx, c.ID))

	got, err := store.Resources().GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CollectionID)
	assert.Nil(t, got.Collection)

	assert.True(t, errors.Is(store.Collections().Delete(ctx, c.ID), domain.ErrNotFound))
}

func TestResolvePendingOnlyOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Questions()

	q := &models.Question{Status: models.QuestionStatusPending, SubmittedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, q))

	res := models.QuestionResolution{Status: models.QuestionStatusRejected, AnsweredAt: time.Now()}
	got, err := repo.ResolvePending(ctx, q.ID, res)
	require.NoError(t, err)
	assert.Equal(t, models.QuestionStatusRejected, got.Status)
	require.NotNil(t, got.AnsweredAt)

	_, err = repo.ResolvePending(ctx, q.ID, res)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestSiteSettingsVersioning(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().SiteSettings()

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	s := models.DefaultSiteSettings()
	require.NoError(t, repo.Save(ctx, s, 0))
	assert.Equal(t, int64(1), s.Version)

	err = repo.Save(ctx, s, 0)
	assert.True(t, errors.Is(err, domain.ErrConflict))

	require.NoError(t, repo.Save(ctx, s, 1))
	stored, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.Version)
}

func TestExecTxAppliesWritesImmediately(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	tx := NewTransactionManager()
	failed := errors.New("second step failed")

	err := tx.ExecTx(ctx, func(txCtx context.Context) error {
		c := &models.Collection{Name: "Sharh X", ContentType: models.ContentTypeBook}
		require.NoError(t, store.Collections().Create(txCtx, c))
		return failed
	})
	require.ErrorIs(t, err, failed)

	// no rollback: the write made before the failure stays visible
	all, err := store.Collections().List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
