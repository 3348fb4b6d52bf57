package handler

import (
	"log/slog"
	"net/http"

	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/services"
	"scholarportal/internal/httputil"
)

// QuestionHandler handles question submission and moderation
type QuestionHandler struct {
	questionService services.QuestionService
	logger          *slog.Logger
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionService services.QuestionService, logger *slog.Logger) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		logger:          logger,
	}
}

// SubmitQuestion stores a public question
// POST /api/questions
func (h *QuestionHandler) SubmitQuestion(w http.ResponseWriter, r *http.Request) {
	var req services.SubmitQuestionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	question, err := h.questionService.SubmitQuestion(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, question)
}

// ListQuestions lists questions newest first
// GET /api/admin/questions?status=pending|answered|rejected|all
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	var status *models.QuestionStatus
	if raw := httputil.QueryString(r, "status"); raw != "" && raw != "all" {
		s := models.QuestionStatus(raw)
		status = &s
	}

	questions, err := h.questionService.ListQuestions(r.Context(), status)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, questions)
}

// AnswerQuestion attaches a video answer to a pending question
// PATCH /api/admin/questions/{id}/answer
func (h *QuestionHandler) AnswerQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	var req services.AnswerQuestionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	question, err := h.questionService.AnswerQuestion(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	h.logger.Info("question answered", "question_id", id, "user_id", httputil.GetUserID(r))
	httputil.RespondJSON(w, http.StatusOK, question)
}

// RejectQuestion rejects a pending question
// PATCH /api/admin/questions/{id}/reject
func (h *QuestionHandler) RejectQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	var req services.RejectQuestionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	question, err := h.questionService.RejectQuestion(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	h.logger.Info("question rejected", "question_id", id, "user_id", httputil.GetUserID(r))
	httputil.RespondJSON(w, http.StatusOK, question)
}
