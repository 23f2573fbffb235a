package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

// SessionConfig defines session token settings
type SessionConfig struct {
	SecretKey string
	TTL       time.Duration
	Issuer    string
}

// Identity is what a session remembers about the logged-in student.
type Identity struct {
	StudentNumber string
	Name          string
}

// SessionClaims is the signed content of a session token.
type SessionClaims struct {
	StudentNumber string `json:"studentNumber"`
	Name          string `json:"name"`
	jwt.RegisteredClaims
}

// SessionService issues and verifies session tokens.
type SessionService struct {
	config SessionConfig
	now    func() time.Time
}

// NewSessionService creates a new session service
func NewSessionService(config SessionConfig) *SessionService {
	return &SessionService{
		config: config,
		now:    time.Now,
	}
}

// TTL returns how long an issued session stays valid.
func (s *SessionService) TTL() time.Duration {
	return s.config.TTL
}

// Issue signs a session token for id.
func (s *SessionService) Issue(id Identity) (string, error) {
	now := s.now()
	claims := &SessionClaims{
		StudentNumber: id.StudentNumber,
		Name:          id.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   id.StudentNumber,
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify validates a session token and returns the identity it carries.
func (s *SessionService) Verify(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, apperrors.ErrSessionMissing
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(s.config.Issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, apperrors.ErrSessionExpired
		}
		return Identity{}, fmt.Errorf("%w: %v", apperrors.ErrSessionInvalid, err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.StudentNumber == "" {
		return Identity{}, apperrors.ErrSessionInvalid
	}

	return Identity{StudentNumber: claims.StudentNumber, Name: claims.Name}, nil
}
