package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/auth"
	"github.com/yigit/schoolhub/internal/pkg/logger"
)

const identityKey = "schoolhub.identity"

// SessionMiddleware resolves the signed session cookie into an identity on
// every request.
type SessionMiddleware struct {
	sessions   *auth.SessionService
	cookieName string
	secure     bool
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(sessions *auth.SessionService, cookieName string, secure bool) *SessionMiddleware {
	return &SessionMiddleware{
		sessions:   sessions,
		cookieName: cookieName,
		secure:     secure,
	}
}

// Load puts the identity into the gin context when the cookie verifies.
// Expired or tampered cookies are cleared and the request goes on anonymous.
func (m *SessionMiddleware) Load() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		id, err := m.sessions.Verify(token)
		if err != nil {
			if !errors.Is(err, apperrors.ErrSessionExpired) {
				logger.Warn().Err(err).Str("ip", c.ClientIP()).Msg("Rejected session cookie")
			}
			m.Clear(c)
			c.Next()
			return
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

// Start sets the session cookie for a freshly issued token.
func (m *SessionMiddleware) Start(c *gin.Context, token string, id auth.Identity) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, token, int(m.sessions.TTL().Seconds()), "/", "", m.secure, true)
	c.Set(identityKey, id)
}

// Clear drops the session cookie. Safe to call without a session.
func (m *SessionMiddleware) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
	c.Set(identityKey, nil)
}

// RequireLogin redirects anonymous requests to loginPath.
func RequireLogin(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentIdentity(c); !ok {
			c.Redirect(http.StatusSeeOther, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the logged-in student, if any.
func CurrentIdentity(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}
