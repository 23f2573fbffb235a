package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolhub/internal/app/repositories/memory"
)

func TestCreateDefaultData_Idempotent(t *testing.T) {
	repos, _ := memory.NewRepositories()
	ctx := context.Background()

	require.NoError(t, CreateDefaultData(ctx, repos.Subjects, zerolog.Nop()))
	require.NoError(t, CreateDefaultData(ctx, repos.Subjects, zerolog.Nop()))

	subjects, err := repos.Subjects.List(ctx)
	require.NoError(t, err)
	assert.Len(t, subjects, len(DefaultSubjects))
}
