package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/campusmap"
	"github.com/yigit/schoolhub/internal/pkg/docindex"
	"github.com/yigit/schoolhub/internal/pkg/notices"
	"github.com/yigit/schoolhub/internal/pkg/sanitize"
)

const (
	defaultNoticeTimeout = 5 * time.Second
	defaultChatTimeout   = 10 * time.Second
)

// Chat messages
const (
	MsgChatUnavailable = "The school assistant is not available right now. Please try again later."
	MsgChatTimeout     = "The school assistant took too long to answer. Please try again."
	MsgChatEmpty       = "Please type a question."
)

// NoticeService reads the notice feed. It fails soft: any error is logged
// and an empty list returned.
type NoticeService struct {
	source  notices.Source
	timeout time.Duration
	logger  zerolog.Logger
}

func NewNoticeService(source notices.Source, timeout time.Duration, logger zerolog.Logger) *NoticeService {
	if timeout <= 0 {
		timeout = defaultNoticeTimeout
	}
	return &NoticeService{source: source, timeout: timeout, logger: logger}
}

// Latest never returns an error.
func (s *NoticeService) Latest(ctx context.Context) []notices.Notice {
	if s.source == nil {
		return []notices.Notice{}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	items, err := s.source.Fetch(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %v", apperrors.ErrCollaboratorUnavailable, err)
		s.logger.Warn().Err(err).Dur("timeout", s.timeout).Msg("Notice feed unavailable, showing none")
		return []notices.Notice{}
	}
	return items
}

// ChatService forwards questions to the document index.
type ChatService struct {
	index   docindex.Index
	timeout time.Duration
	logger  zerolog.Logger
}

func NewChatService(index docindex.Index, timeout time.Duration, logger zerolog.Logger) *ChatService {
	if timeout <= 0 {
		timeout = defaultChatTimeout
	}
	return &ChatService{index: index, timeout: timeout, logger: logger}
}

// Enabled reports whether an index is attached.
func (s *ChatService) Enabled() bool {
	return s.index != nil
}

// Ask returns the index answer for question. Failures come back as
// ErrCollaboratorUnavailable carrying a message fit for the page.
func (s *ChatService) Ask(ctx context.Context, question string) (string, error) {
	q, ok := sanitize.Clean(question, sanitize.Question)
	if q == "" {
		return "", apperrors.NewValidationError(MsgChatEmpty)
	}
	if !ok {
		return "", apperrors.NewValidationError(
			fmt.Sprintf("Question too long. Please limit to %d words or %d characters.",
				sanitize.Question.Words, sanitize.Question.Chars))
	}
	if s.index == nil {
		return "", apperrors.NewCustomError(apperrors.ErrCollaboratorUnavailable, MsgChatUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	answer, err := s.index.Query(ctx, q)
	if err != nil {
		msg := MsgChatUnavailable
		if errors.Is(err, context.DeadlineExceeded) {
			msg = MsgChatTimeout
		}
		s.logger.Warn().Err(err).Msg("Document index query failed")
		return "", apperrors.NewCustomError(errors.Join(apperrors.ErrCollaboratorUnavailable, err), msg)
	}
	return answer, nil
}

// MapService renders the campus map. The location table is fixed, so the
// artifact is built once and reused.
type MapService struct {
	renderer  campusmap.Renderer
	locations []campusmap.Location
	center    campusmap.LatLng

	once     sync.Once
	artifact *campusmap.Artifact
	err      error
}

func NewMapService(renderer campusmap.Renderer, locations []campusmap.Location, center campusmap.LatLng) *MapService {
	if renderer == nil {
		renderer = campusmap.NewLeafletRenderer(campusmap.DefaultOptions)
	}
	return &MapService{renderer: renderer, locations: locations, center: center}
}

func (s *MapService) Render() (*campusmap.Artifact, error) {
	s.once.Do(func() {
		s.artifact, s.err = s.renderer.Render(s.locations, s.center)
	})
	return s.artifact, s.err
}

// LocationName returns the table spelling of name, matched without regard
// to case or surrounding space, or "" when no location matches.
func (s *MapService) LocationName(name string) string {
	name = strings.TrimSpace(name)
	for _, loc := range s.locations {
		if strings.EqualFold(loc.Name, name) {
			return loc.Name
		}
	}
	return ""
}

// Locations returns the location table for the start/destination pickers.
func (s *MapService) Locations() []campusmap.Location {
	return s.locations
}
