package memory

import (
	"cmp"
	"context"
	"slices"

	"scholarportal/internal/domain"
	"scholarportal/internal/domain/models"
)

type questionRepository struct {
	store *Store
}

func (r *questionRepository) Create(ctx context.Context, question *models.Question) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	question.ID = r.store.newID()
	r.store.questions[question.ID] = *question
	return nil
}

func (r *questionRepository) List(ctx context.Context, status *models.QuestionStatus) ([]models.Question, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]models.Question, 0, len(r.store.questions))
	for _, q := range r.store.questions {
		if status != nil && q.Status != *status {
			continue
		}
		out = append(out, q)
	}
	slices.SortFunc(out, func(a, b models.Question) int {
		if c := b.SubmittedAt.Compare(a.SubmittedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return out, nil
}

func (r *questionRepository) GetByID(ctx context.Context, id string) (*models.Question, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	q, ok := r.store.questions[id]
	if !ok {
		return nil, &domain.NotFoundError{ResourceType: "question", ID: id}
	}
	return &q, nil
}

func (r *questionRepository) ResolvePending(ctx context.Context, id string, res models.QuestionResolution) (*models.Question, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	q, ok := r.store.questions[id]
	if !ok || q.Status != models.QuestionStatusPending {
		return nil, &domain.NotFoundError{ResourceType: "pending question", ID: id}
	}
	res.Apply(&q)
	r.store.questions[id] = q
	return &q, nil
}
