package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/repositories/memory"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/sanitize"
)

func newTestFeedback(t *testing.T) (*FeedbackService, *memory.DB) {
	t.Helper()
	repos, db := memory.NewRepositories()
	require.NoError(t, repos.Students.Register(context.Background(), &models.Student{StudentNumber: "12345", Name: "Jo Lee"}, nil))

	svc := NewFeedbackService(repos.Ideas, zerolog.Nop())
	clock := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return svc, db
}

func TestSubmit_StripsTagsAndListsFirst(t *testing.T) {
	svc, _ := newTestFeedback(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, dto.FeedbackForm{StudentNumber: "12345", Feedback: "first idea"})
	require.NoError(t, err)

	idea, err := svc.Submit(ctx, dto.FeedbackForm{StudentNumber: "12345", Feedback: "<script>hi</script> great school"})
	require.NoError(t, err)
	assert.Equal(t, "hi great school", idea.Content)

	ideas, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, ideas, 2)
	assert.Equal(t, "hi great school", ideas[0].Content)
}

func TestSubmit_EscapesSpecialCharacters(t *testing.T) {
	svc, _ := newTestFeedback(t)

	idea, err := svc.Submit(context.Background(), dto.FeedbackForm{StudentNumber: "12345", Feedback: `more "fish" & chips`})
	require.NoError(t, err)
	assert.Equal(t, "more &#34;fish&#34; &amp; chips", idea.Content)
	assert.Equal(t, idea.Content, sanitize.Text(idea.Content))
}

func TestSubmit_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		form   dto.FeedbackForm
		target error
	}{
		{"missing number", dto.FeedbackForm{Feedback: "hello"}, apperrors.ErrValidationFailed},
		{"missing feedback", dto.FeedbackForm{StudentNumber: "12345"}, apperrors.ErrValidationFailed},
		{"151 words", dto.FeedbackForm{StudentNumber: "12345", Feedback: strings.Repeat("word ", 151)}, apperrors.ErrValidationFailed},
		{"1001 chars", dto.FeedbackForm{StudentNumber: "12345", Feedback: strings.Repeat("x", 1001)}, apperrors.ErrValidationFailed},
		{"escaping pushes over limit", dto.FeedbackForm{StudentNumber: "12345", Feedback: strings.Repeat("&", 201)}, apperrors.ErrValidationFailed},
		{"unknown student", dto.FeedbackForm{StudentNumber: "99999", Feedback: "hello"}, apperrors.ErrUnknownStudent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, db := newTestFeedback(t)
			_, err := svc.Submit(context.Background(), tt.form)
			assert.ErrorIs(t, err, tt.target)
			assert.NotEmpty(t, apperrors.UserMessage(err, ""))
			assert.Zero(t, db.IdeaCount())
		})
	}
}

type brokenIdeas struct{}

func (brokenIdeas) CreateForStudent(context.Context, string, string, time.Time) (*models.Idea, error) {
	return nil, errors.New("commit failed")
}

func (brokenIdeas) ListNewestFirst(context.Context) ([]*models.Idea, error) {
	return nil, errors.New("connection reset")
}

func TestSubmit_StorageFailure(t *testing.T) {
	svc := NewFeedbackService(brokenIdeas{}, zerolog.Nop())

	_, err := svc.Submit(context.Background(), dto.FeedbackForm{StudentNumber: "12345", Feedback: "hello"})
	assert.ErrorIs(t, err, apperrors.ErrStorage)
	assert.Equal(t, MsgFeedbackFailed, apperrors.UserMessage(err, ""))

	_, err = svc.List(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrStorage)
}
