package middleware

import (
	"errors"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/logger"
)

// Flash categories
const (
	FlashError   = "error"
	FlashSuccess = "success"
)

// FlashCookieName is the cookie holding pending flash messages.
const FlashCookieName = "schoolhub_flash"

// MsgGenericError is shown for failures that carry no message of their own.
const MsgGenericError = "Something went wrong. Please try again."

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string
	Message  string
}

// Flashes installs the cookie-backed store used for flash messages.
func Flashes(secret string, secure bool) gin.HandlerFunc {
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		MaxAge:   3600,
	})
	return sessions.Sessions(FlashCookieName, store)
}

// AddFlash queues a message for the next rendered page.
func AddFlash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, category)
	if err := session.Save(); err != nil {
		logger.Warn().Err(err).Msg("Failed to save flash message")
	}
}

// PopFlashes returns and removes every queued message, errors first.
func PopFlashes(c *gin.Context) []Flash {
	session := sessions.Default(c)

	var out []Flash
	for _, category := range []string{FlashError, FlashSuccess} {
		for _, v := range session.Flashes(category) {
			if msg, ok := v.(string); ok {
				out = append(out, Flash{Category: category, Message: msg})
			}
		}
	}
	if len(out) > 0 {
		if err := session.Save(); err != nil {
			logger.Warn().Err(err).Msg("Failed to clear flash messages")
		}
	}
	return out
}

// ClearFlashes drops all pending flash state.
func ClearFlashes(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()
}

// FlashErr queues the user-facing message for err. Errors outside the
// known taxonomy are logged and shown as a generic message.
func FlashErr(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrUnknownStudent, apperrors.ErrDuplicateStudent):
		AddFlash(c, FlashError, apperrors.UserMessage(err, err.Error()))
	case errors.Is(err, apperrors.ErrStorage), errors.Is(err, apperrors.ErrCollaboratorUnavailable):
		_ = c.Error(err)
		AddFlash(c, FlashError, apperrors.UserMessage(err, MsgGenericError))
	default:
		_ = c.Error(err)
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		AddFlash(c, FlashError, MsgGenericError)
	}
}
