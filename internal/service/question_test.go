package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarportal/internal/domain"
	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/services"
)

func submit(t *testing.T, f *fixture) *models.Question {
	t.Helper()
	q, err := f.questions.SubmitQuestion(context.Background(), &services.SubmitQuestionRequest{
		Email:        "a@b.com",
		Category:     models.QuestionCategoryFiqh,
		QuestionText: "سؤال عن الصلاة في السفر",
	})
	require.NoError(t, err)
	return q
}

func TestQuestionAnswerFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	q := submit(t, f)
	assert.Equal(t, models.QuestionStatusPending, q.Status)
	assert.Nil(t, q.AnsweredAt)

	answered, err := f.questions.AnswerQuestion(ctx, q.ID, &services.AnswerQuestionRequest{
		YoutubeLink:   "https://youtube.com/watch?v=X",
		QuestionEmail: "a@b.com",
	})
	require.NoError(t, err)
	assert.Equal(t, models.QuestionStatusAnswered, answered.Status)
	require.NotNil(t, answered.AnsweredAt)
	require.NotNil(t, answered.AnswerYoutubeLink)
	assert.Equal(t, "https://youtube.com/watch?v=X", *answered.AnswerYoutubeLink)

	require.Len(t, f.notifier.answered, 1)
	assert.Equal(t, "a@b.com", f.notifier.answered[0].Email)
	assert.Empty(t, f.notifier.rejected)
}

func TestQuestionRejectFlow(t *testing.T) {
	f := newFixture(t)
	q := submit(t, f)

	rejected, err := f.questions.RejectQuestion(context.Background(), q.ID, &services.RejectQuestionRequest{
		RejectionReason: strPtr("  "),
		QuestionEmail:   "a@b.com",
	})
	require.NoError(t, err)
	assert.Equal(t, models.QuestionStatusRejected, rejected.Status)
	assert.Nil(t, rejected.RejectionReason)
	assert.Nil(t, rejected.AnswerYoutubeLink)
	require.NotNil(t, rejected.AnsweredAt)
	assert.Len(t, f.notifier.rejected, 1)
}

func TestResolvedQuestionsAreTerminal(t *testing.T) {
	tests := []struct {
		name    string
		resolve func(f *fixture, id string) error
	}{
		{"answered", func(f *fixture, id string) error {
			_, err := f.questions.AnswerQuestion(context.Background(), id, &services.AnswerQuestionRequest{
				YoutubeLink: "https://youtube.com/watch?v=1", QuestionEmail: "a@b.com",
			})
			return err
		}},
		{"rejected", func(f *fixture, id string) error {
			_, err := f.questions.RejectQuestion(context.Background(), id, &services.RejectQuestionRequest{
				QuestionEmail: "a@b.com",
			})
			return err
		}},
	}

	for _, first := range tests {
		for _, second := range tests {
			t.Run(first.name+" then "+second.name, func(t *testing.T) {
				f := newFixture(t)
				q := submit(t, f)

				require.NoError(t, first.resolve(f, q.ID))
				err := second.resolve(f, q.ID)

				var conflict *domain.ConflictError
				require.True(t, errors.As(err, &conflict), "got %v", err)
				assert.Equal(t, "question is already "+first.name, conflict.Message)

				stored, err := f.store.Questions().GetByID(context.Background(), q.ID)
				require.NoError(t, err)
				assert.Equal(t, models.QuestionStatus(first.name), stored.Status)
				assert.Len(t, f.notifier.answered, boolToInt(first.name == "answered"))
				assert.Len(t, f.notifier.rejected, boolToInt(first.name == "rejected"))
			})
		}
	}
}

func TestAnswerMissingQuestion(t *testing.T) {
	f := newFixture(t)
	_, err := f.questions.AnswerQuestion(context.Background(), "2d0c8bbf-2a40-4bd6-9b48-3f6f0d0f0e11", &services.AnswerQuestionRequest{
		YoutubeLink: "https://youtube.com/watch?v=1", QuestionEmail: "a@b.com",
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Empty(t, f.notifier.answered)
}

func TestAnswerRequiresValidLink(t *testing.T) {
	f := newFixture(t)
	q := submit(t, f)

	_, err := f.questions.AnswerQuestion(context.Background(), q.ID, &services.AnswerQuestionRequest{
		YoutubeLink: "not a link", QuestionEmail: "a@b.com",
	})
	assert.True(t, errors.Is(err, domain.ErrValidation))

	stored, err := f.store.Questions().GetByID(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, models.QuestionStatusPending, stored.Status)
}

func TestSubmitQuestionRejectsLatinText(t *testing.T) {
	f := newFixture(t)
	_, err := f.questions.SubmitQuestion(context.Background(), &services.SubmitQuestionRequest{
		Email:        "a@b.com",
		Category:     models.QuestionCategoryFiqh,
		QuestionText: "What is the ruling on travel prayer?",
	})
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestListQuestionsByStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := submit(t, f)
	submit(t, f)
	_, err := f.questions.RejectQuestion(ctx, first.ID, &services.RejectQuestionRequest{QuestionEmail: "a@b.com"})
	require.NoError(t, err)

	pending := models.QuestionStatusPending
	list, err := f.questions.ListQuestions(ctx, &pending)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	all, err := f.questions.ListQuestions(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	bogus := models.QuestionStatus("archived")
	_, err = f.questions.ListQuestions(ctx, &bogus)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
