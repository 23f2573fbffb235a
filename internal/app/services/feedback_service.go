package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/repositories"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/sanitize"
)

// Feedback messages
const (
	MsgFeedbackMissing   = "Please provide both student number and feedback."
	MsgFeedbackSubmitted = "Feedback submitted successfully!"
	MsgFeedbackUnknown   = "Invalid student number. Please try again."
	MsgFeedbackFailed    = "An error occurred while submitting feedback. Please try again."
)

// FeedbackService runs the ideas board.
type FeedbackService struct {
	ideas  repositories.IdeaRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewFeedbackService(ideas repositories.IdeaRepository, logger zerolog.Logger) *FeedbackService {
	return &FeedbackService{
		ideas:  ideas,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// List returns every idea, newest first.
func (s *FeedbackService) List(ctx context.Context) ([]*models.Idea, error) {
	ideas, err := s.ideas.ListNewestFirst(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Listing ideas failed")
		return nil, apperrors.NewStorageError("Could not load feedback.", err)
	}
	return ideas, nil
}

// Submit sanitizes and stores one idea.
func (s *FeedbackService) Submit(ctx context.Context, form dto.FeedbackForm) (*models.Idea, error) {
	number := strings.TrimSpace(form.StudentNumber)
	if number == "" || strings.TrimSpace(form.Feedback) == "" {
		return nil, apperrors.NewValidationError(MsgFeedbackMissing)
	}

	content := sanitize.Text(form.Feedback)
	if content == "" {
		return nil, apperrors.NewValidationError(MsgFeedbackMissing)
	}
	if sanitize.WordCount(content) > sanitize.Feedback.Words {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("Feedback too long. Please limit to %d words.", sanitize.Feedback.Words))
	}
	if !sanitize.Fits(content, sanitize.Feedback) {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("Feedback too long. Please limit to %d characters.", sanitize.Feedback.Chars))
	}

	idea, err := s.ideas.CreateForStudent(ctx, number, content, s.now())
	switch {
	case errors.Is(err, apperrors.ErrUnknownStudent):
		return nil, apperrors.NewCustomError(apperrors.ErrUnknownStudent, MsgFeedbackUnknown).WithField("student_number")
	case err != nil:
		s.logger.Error().Err(err).Str("studentNumber", number).Msg("Storing idea failed")
		return nil, apperrors.NewStorageError(MsgFeedbackFailed, err)
	}

	s.logger.Info().Int64("ideaID", idea.ID).Msg("Idea stored")
	return idea, nil
}
