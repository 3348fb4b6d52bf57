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

// questionService implements the QuestionService interface.
//
// A question only leaves the pending state once. Answer and reject on an
// already resolved question fail with a conflict.
type questionService struct {
	questionRepo repositories.QuestionRepository
	notifier     services.QuestionNotifier
	logger       *slog.Logger
	now          func() time.Time
}

// NewQuestionService creates a new question service
func NewQuestionService(
	questionRepo repositories.QuestionRepository,
	notifier services.QuestionNotifier,
	logger *slog.Logger,
) services.QuestionService {
	return &questionService{
		questionRepo: questionRepo,
		notifier:     notifier,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// SubmitQuestion stores a new pending question
func (s *questionService) SubmitQuestion(ctx context.Context, req *services.SubmitQuestionRequest) (*models.Question, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.QuestionText = strings.TrimSpace(req.QuestionText)

	if err := validation.SubmitQuestion(req); err != nil {
		return nil, err
	}

	question := &models.Question{
		Email:        req.Email,
		Category:     req.Category,
		QuestionText: req.QuestionText,
		Status:       models.QuestionStatusPending,
		SubmittedAt:  s.now(),
	}

	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}

	s.logger.Info("question submitted",
		"id", question.ID,
		"category", question.Category,
	)

	return question, nil
}

// ListQuestions returns questions newest first
func (s *questionService) ListQuestions(ctx context.Context, status *models.QuestionStatus) ([]models.Question, error) {
	if status != nil && !models.Contains(models.QuestionStatuses, *status) {
		return nil, domain.NewValidationError("status", "must be one of pending, answered, rejected or all")
	}
	return s.questionRepo.List(ctx, status)
}

// AnswerQuestion moves a pending question to answered
func (s *questionService) AnswerQuestion(ctx context.Context, id string, req *services.AnswerQuestionRequest) (*models.Question, error) {
	req.YoutubeLink = validation.CleanDuplicatedURL(req.YoutubeLink)
	req.QuestionEmail = strings.TrimSpace(req.QuestionEmail)

	if err := validation.AnswerQuestion(req); err != nil {
		return nil, err
	}

	link := req.YoutubeLink
	question, err := s.resolve(ctx, id, models.QuestionResolution{
		Status:            models.QuestionStatusAnswered,
		AnswerYoutubeLink: &link,
		AnsweredAt:        s.now(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("question answered", "id", id)
	s.warnOnEmailMismatch(question, req.QuestionEmail)
	s.notifier.QuestionAnswered(ctx, question)

	return question, nil
}

// RejectQuestion moves a pending question to rejected
func (s *questionService) RejectQuestion(ctx context.Context, id string, req *services.RejectQuestionRequest) (*models.Question, error) {
	req.RejectionReason = trimmedOrNil(req.RejectionReason)
	req.QuestionEmail = strings.TrimSpace(req.QuestionEmail)

	if err := validation.RejectQuestion(req); err != nil {
		return nil, err
	}

	question, err := s.resolve(ctx, id, models.QuestionResolution{
		Status:          models.QuestionStatusRejected,
		RejectionReason: req.RejectionReason,
		AnsweredAt:      s.now(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("question rejected", "id", id)
	s.warnOnEmailMismatch(question, req.QuestionEmail)
	s.notifier.QuestionRejected(ctx, question)

	return question, nil
}

// resolve applies res to a pending question. When nothing pending matched it
// tells a missing question (404) apart from an already resolved one (409).
func (s *questionService) resolve(ctx context.Context, id string, res models.QuestionResolution) (*models.Question, error) {
	question, err := s.questionRepo.ResolvePending(ctx, id, res)
	if err == nil {
		return question, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("resolve question: %w", err)
	}

	existing, getErr := s.questionRepo.GetByID(ctx, id)
	if getErr != nil {
		return nil, getErr
	}
	return nil, &domain.ConflictError{
		Message:      fmt.Sprintf("question is already %s", existing.Status),
		ResourceType: "question",
		Field:        "status",
		ResourceID:   id,
	}
}

// The notification goes to the stored address. The admin form echoes it
// back; a mismatch means a stale client and is worth a log line.
func (s *questionService) warnOnEmailMismatch(q *models.Question, echoed string) {
	if echoed != "" && !strings.EqualFold(echoed, q.Email) {
		s.logger.Warn("question email in request differs from stored email; notifying stored address",
			"id", q.ID,
		)
	}
}
