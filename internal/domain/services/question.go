package services

import (
	"context"

	"scholarportal/internal/domain/models"
)

// QuestionService drives the question review workflow
type QuestionService interface {
	// SubmitQuestion stores a public submission in the pending state
	SubmitQuestion(ctx context.Context, req *SubmitQuestionRequest) (*models.Question, error)

	// ListQuestions returns questions newest first, optionally filtered by status
	ListQuestions(ctx context.Context, status *models.QuestionStatus) ([]models.Question, error)

	// AnswerQuestion moves a pending question to answered and notifies the asker
	AnswerQuestion(ctx context.Context, id string, req *AnswerQuestionRequest) (*models.Question, error)

	// RejectQuestion moves a pending question to rejected and notifies the asker
	RejectQuestion(ctx context.Context, id string, req *RejectQuestionRequest) (*models.Question, error)
}

// SubmitQuestionRequest represents a public question submission
type SubmitQuestionRequest struct {
	Email        string                  `json:"email"`
	Category     models.QuestionCategory `json:"category"`
	QuestionText string                  `json:"question_text"`
}

// AnswerQuestionRequest is the admin answer payload
type AnswerQuestionRequest struct {
	YoutubeLink   string `json:"youtubeLink"`
	QuestionEmail string `json:"questionEmail"`
}

// RejectQuestionRequest is the admin rejection payload
type RejectQuestionRequest struct {
	RejectionReason *string `json:"rejectionReason,omitempty"`
	QuestionEmail   string  `json:"questionEmail"`
}

// QuestionNotifier is told about resolved questions. Implementations must not
// block the caller on delivery.
type QuestionNotifier interface {
	QuestionAnswered(ctx context.Context, q *models.Question)
	QuestionRejected(ctx context.Context, q *models.Question)
}
