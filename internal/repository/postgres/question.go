package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"scholarportal/internal/domain"
	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/repositories"
)

const questionColumns = `
	id, email, category, question_text, status, answer_youtube_link,
	rejection_reason, submitted_at, answered_at`

// PostgresQuestionRepository implements the QuestionRepository interface
type PostgresQuestionRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(config *RepositoryConfig) repositories.QuestionRepository {
	return &PostgresQuestionRepository{
		pool:   config.Pool,
		logger: config.Logger,
	}
}

// Create inserts a submitted question
func (r *PostgresQuestionRepository) Create(ctx context.Context, question *models.Question) error {
	query := `
		INSERT INTO questions (email, category, question_text, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, submitted_at
	`

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		question.Email,
		question.Category,
		question.QuestionText,
		question.Status,
		question.SubmittedAt,
	).Scan(&question.ID, &question.SubmittedAt)

	if err != nil {
		if IsPgCheckViolation(err) {
			return domain.NewValidationError(constraintField(pgConstraint(err)), "violates a data constraint")
		}
		return fmt.Errorf("create question: %w", err)
	}

	return nil
}

// List retrieves questions newest first, optionally filtered by status
func (r *PostgresQuestionRepository) List(ctx context.Context, status *models.QuestionStatus) ([]models.Question, error) {
	query := "SELECT " + questionColumns + `
		FROM questions
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY submitted_at DESC, id DESC`

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, *question)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}

	return questions, nil
}

// GetByID retrieves a question by ID
func (r *PostgresQuestionRepository) GetByID(ctx context.Context, id string) (*models.Question, error) {
	query := "SELECT " + questionColumns + `
		FROM questions
		WHERE id = $1`

	executor := GetExecutor(ctx, r.pool)
	question, err := scanQuestion(executor.QueryRow(ctx, query, id))
	if err != nil {
		if IsPgNoRowsError(err) || IsPgInvalidTextError(err) {
			return nil, &domain.NotFoundError{ResourceType: "question", ID: id}
		}
		return nil, fmt.Errorf("get question: %w", err)
	}

	return question, nil
}

// ResolvePending moves a pending question to its terminal state in one
// statement, so two concurrent moderators cannot both win.
func (r *PostgresQuestionRepository) ResolvePending(ctx context.Context, id string, res models.QuestionResolution) (*models.Question, error) {
	query := `
		UPDATE questions
		SET status = $1, answer_youtube_link = $2, rejection_reason = $3, answered_at = $4
		WHERE id = $5 AND status = 'pending'
		RETURNING ` + questionColumns

	executor := GetExecutor(ctx, r.pool)
	question, err := scanQuestion(executor.QueryRow(ctx, query,
		res.Status,
		res.AnswerYoutubeLink,
		res.RejectionReason,
		res.AnsweredAt,
		id,
	))
	if err != nil {
		if IsPgNoRowsError(err) || IsPgInvalidTextError(err) {
			return nil, &domain.NotFoundError{ResourceType: "question", ID: id}
		}
		return nil, fmt.Errorf("resolve question: %w", err)
	}

	return question, nil
}

func scanQuestion(row pgx.Row) (*models.Question, error) {
	var question models.Question
	err := row.Scan(
		&question.ID,
		&question.Email,
		&question.Category,
		&question.QuestionText,
		&question.Status,
		&question.AnswerYoutubeLink,
		&question.RejectionReason,
		&question.SubmittedAt,
		&question.AnsweredAt,
	)
	if err != nil {
		return nil, err
	}
	return &question, nil
}
