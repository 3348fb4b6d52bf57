package repositories

import (
	"context"

	"scholarportal/internal/domain/models"
)

// QuestionRepository defines data access operations for questions
type QuestionRepository interface {
	// Create inserts a question and fills in ID
	Create(ctx context.Context, question *models.Question) error

	// List returns questions newest first; nil status lists all
	List(ctx context.Context, status *models.QuestionStatus) ([]models.Question, error)

	// GetByID retrieves a question by ID
	GetByID(ctx context.Context, id string) (*models.Question, error)

	// ResolvePending applies res to the question only while it is still pending.
	// Returns domain.ErrNotFound when no pending question with id exists.
	ResolvePending(ctx context.Context, id string, res models.QuestionResolution) (*models.Question, error)
}
