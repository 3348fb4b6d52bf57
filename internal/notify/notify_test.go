package notify

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarportal/internal/config"
	"scholarportal/internal/domain/models"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []*Message
	errs []error // ctx.Err() observed at send time
	dead []bool
	err  error
}

func (m *recordingMailer) Send(ctx context.Context, msg *Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	m.errs = append(m.errs, ctx.Err())
	_, hasDeadline := ctx.Deadline()
	m.dead = append(m.dead, hasDeadline)
	return m.err
}

func strPtr(s string) *string { return &s }

func answeredQuestion() *models.Question {
	return &models.Question{
		ID:                "q-1",
		Email:             "a@b.com",
		Category:          models.QuestionCategoryFiqh,
		QuestionText:      "سؤال عن الصلاة في السفر",
		Status:            models.QuestionStatusAnswered,
		AnswerYoutubeLink: strPtr("https://youtube.com/watch?v=X"),
	}
}

func TestRenderOutcome(t *testing.T) {
	t.Run("answered", func(t *testing.T) {
		msg, err := renderOutcome(answeredQuestion())
		require.NoError(t, err)

		assert.Equal(t, "a@b.com", msg.To)
		assert.Equal(t, "Response to your Question (رد على سؤالك)", msg.Subject)
		assert.Contains(t, msg.Text, "تم الإجابة على سؤالك")
		assert.Contains(t, msg.Text, "https://youtube.com/watch?v=X")
		assert.Contains(t, msg.HTML, `<a href="https://youtube.com/watch?v=X">`)
		assert.Contains(t, msg.HTML, `dir="rtl"`)
	})

	t.Run("rejected with reason", func(t *testing.T) {
		q := answeredQuestion()
		q.Status = models.QuestionStatusRejected
		q.AnswerYoutubeLink = nil
		q.RejectionReason = strPtr("<b>duplicate</b>")

		msg, err := renderOutcome(q)
		require.NoError(t, err)

		assert.Contains(t, msg.Text, "Reason: <b>duplicate</b>")
		assert.Contains(t, msg.HTML, "&lt;b&gt;duplicate&lt;/b&gt;")
		assert.NotContains(t, msg.HTML, "youtube")
	})

	t.Run("rejected without reason", func(t *testing.T) {
		q := answeredQuestion()
		q.Status = models.QuestionStatusRejected
		q.AnswerYoutubeLink = nil

		msg, err := renderOutcome(q)
		require.NoError(t, err)
		assert.NotContains(t, msg.Text, "Reason:")
	})

	t.Run("pending is refused", func(t *testing.T) {
		q := answeredQuestion()
		q.Status = models.QuestionStatusPending

		_, err := renderOutcome(q)
		assert.Error(t, err)
	})
}

func TestHookDeliversAfterRequestContextEnds(t *testing.T) {
	mailer := &recordingMailer{}
	hook := NewHook(mailer, time.Second, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	hook.QuestionAnswered(ctx, answeredQuestion())
	hook.Wait()

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "a@b.com", mailer.sent[0].To)
	assert.NoError(t, mailer.errs[0], "send context must not inherit the request cancellation")
	assert.True(t, mailer.dead[0])
}

func TestHookSwallowsMailerErrors(t *testing.T) {
	var logs bytes.Buffer
	mailer := &recordingMailer{err: errors.New("connection refused")}
	hook := NewHook(mailer, time.Second, slog.New(slog.NewTextHandler(&logs, nil)))

	q := answeredQuestion()
	q.Status = models.QuestionStatusRejected
	hook.QuestionRejected(context.Background(), q)
	hook.Wait()

	require.Len(t, mailer.sent, 1)
	assert.Contains(t, logs.String(), "question notification failed")
	assert.Contains(t, logs.String(), "connection refused")
}

func TestLogMailer(t *testing.T) {
	var logs bytes.Buffer
	mailer := NewLogMailer(slog.New(slog.NewTextHandler(&logs, nil)))

	err := mailer.Send(context.Background(), &Message{To: "a@b.com", Subject: "hello", Text: "body"})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "a@b.com")
	assert.Contains(t, logs.String(), "email not sent")
}

func TestNewSMTPMailerRequiresSettings(t *testing.T) {
	_, err := NewSMTPMailer(config.SMTPConfig{Host: "smtp.example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP_USER")

	mailer, err := NewSMTPMailer(config.SMTPConfig{
		Host:      "smtp.example.com",
		Port:      587,
		User:      "user",
		Pass:      "pass",
		FromEmail: "noreply@example.com",
	})
	require.NoError(t, err)
	assert.NotNil(t, mailer)
}
