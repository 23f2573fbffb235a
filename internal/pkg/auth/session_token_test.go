package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

func newTestSessionService() *SessionService {
	return NewSessionService(SessionConfig{SecretKey: "secret", TTL: time.Hour, Issuer: "test"})
}

func TestSessionService_IssueVerify(t *testing.T) {
	svc := newTestSessionService()

	token, err := svc.Issue(Identity{StudentNumber: "12345", Name: "Jo Lee"})
	require.NoError(t, err)

	id, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "12345", id.StudentNumber)
	assert.Equal(t, "Jo Lee", id.Name)
}

func TestSessionService_Verify(t *testing.T) {
	svc := newTestSessionService()
	valid, err := svc.Issue(Identity{StudentNumber: "1", Name: "A"})
	require.NoError(t, err)

	late := newTestSessionService()
	late.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := late.Issue(Identity{StudentNumber: "1", Name: "A"})
	require.NoError(t, err)

	other := NewSessionService(SessionConfig{SecretKey: "other", TTL: time.Hour, Issuer: "test"})
	forged, err := other.Issue(Identity{StudentNumber: "1", Name: "A"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "no token", token: "", wantErr: apperrors.ErrSessionMissing},
		{name: "garbage", token: "not.a.token", wantErr: apperrors.ErrSessionInvalid},
		{name: "wrong key", token: forged, wantErr: apperrors.ErrSessionInvalid},
		{name: "expired", token: expired, wantErr: apperrors.ErrSessionExpired},
		{name: "valid", token: valid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(tt.token)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("pw")
	require.NoError(t, err)
	assert.NotEqual(t, "pw", hash)
	assert.True(t, CheckPassword(hash, "pw"))
	assert.False(t, CheckPassword(hash, "PW"))
}
