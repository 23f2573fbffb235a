package services

import (
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/schoolhub/internal/app/repositories"
	"github.com/yigit/schoolhub/internal/app/repositories/memory"
	"github.com/yigit/schoolhub/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	auth.BcryptCost = bcrypt.MinCost
	os.Exit(m.Run())
}

func newTestSessions() *auth.SessionService {
	return auth.NewSessionService(auth.SessionConfig{
		SecretKey: "test-secret-0123456789",
		TTL:       time.Hour,
		Issuer:    "schoolhub-test",
	})
}

func newTestAuth(t *testing.T) (*AuthService, *repositories.Repositories, *memory.DB) {
	t.Helper()
	repos, db := memory.NewRepositories()
	return NewAuthService(repos.Students, repos.Tutors, repos.Products, newTestSessions(), zerolog.Nop()), repos, db
}
