package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"scholarportal/internal/domain/models"
)

// Hook sends question outcome emails in the background. Delivery failures
// are logged and never reach the moderator's request.
type Hook struct {
	mailer  Mailer
	timeout time.Duration
	logger  *slog.Logger
	wg      sync.WaitGroup
}

// NewHook creates a Hook. Each delivery gets at most timeout.
func NewHook(mailer Mailer, timeout time.Duration, logger *slog.Logger) *Hook {
	return &Hook{
		mailer:  mailer,
		timeout: timeout,
		logger:  logger,
	}
}

// QuestionAnswered queues the "answered" email.
func (h *Hook) QuestionAnswered(ctx context.Context, q *models.Question) {
	h.dispatch(ctx, q)
}

// QuestionRejected queues the "rejected" email.
func (h *Hook) QuestionRejected(ctx context.Context, q *models.Question) {
	h.dispatch(ctx, q)
}

// Wait blocks until every queued email has been attempted. Called on shutdown.
func (h *Hook) Wait() {
	h.wg.Wait()
}

func (h *Hook) dispatch(ctx context.Context, q *models.Question) {
	msg, err := renderOutcome(q)
	if err != nil {
		h.logger.Error("failed to render notification", "question_id", q.ID, "error", err)
		return
	}

	// The request context ends when the handler returns.
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.timeout)

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		defer cancel()

		h.logger.Info("sending question notification", "question_id", q.ID, "status", q.Status)
		if err := h.mailer.Send(sendCtx, msg); err != nil {
			h.logger.Warn("question notification failed; the question update was kept",
				"question_id", q.ID,
				"error", err,
			)
			return
		}
		h.logger.Debug("question notification sent", "question_id", q.ID)
	}()
}
