package services

import (
	"time"

	"github.com/yigit/schoolhub/internal/app/repositories"
	"github.com/yigit/schoolhub/internal/pkg/auth"
	"github.com/yigit/schoolhub/internal/pkg/campusmap"
	"github.com/yigit/schoolhub/internal/pkg/docindex"
	"github.com/yigit/schoolhub/internal/pkg/logger"
	"github.com/yigit/schoolhub/internal/pkg/notices"
)

// Services bundles every service the controllers use.
type Services struct {
	Auth     *AuthService
	Feedback *FeedbackService
	Tutors   *TutorService
	Subjects *SubjectService
	Notices  *NoticeService
	Chat     *ChatService
	Map      *MapService
}

// Dependencies are the collaborators services are built from.
type Dependencies struct {
	Repos         *repositories.Repositories
	Sessions      *auth.SessionService
	NoticeSource  notices.Source
	NoticeTimeout time.Duration
	Index         docindex.Index // nil disables chat
	ChatTimeout   time.Duration
	MapRenderer   campusmap.Renderer
}

// NewServices wires all services from deps.
func NewServices(deps Dependencies) *Services {
	return &Services{
		Auth:     NewAuthService(deps.Repos.Students, deps.Repos.Tutors, deps.Repos.Products, deps.Sessions, logger.Component("auth")),
		Feedback: NewFeedbackService(deps.Repos.Ideas, logger.Component("feedback")),
		Tutors:   NewTutorService(deps.Repos.Tutors),
		Subjects: NewSubjectService(deps.Repos.Subjects),
		Notices:  NewNoticeService(deps.NoticeSource, deps.NoticeTimeout, logger.Component("notices")),
		Chat:     NewChatService(deps.Index, deps.ChatTimeout, logger.Component("chat")),
		Map:      NewMapService(deps.MapRenderer, campusmap.Campus, campusmap.SchoolCenter),
	}
}
