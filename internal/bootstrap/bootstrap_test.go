package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/schoolhub/internal/config"
)

func chatConfig(t *testing.T) *config.Config {
	t.Helper()
	docs := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(docs, "hours.md"), []byte("The library opens at 8am."), 0o644))

	cfg := &config.Config{}
	cfg.Chat.Enabled = true
	cfg.Chat.DocumentDir = docs
	cfg.Chat.IndexPath = filepath.Join(t.TempDir(), "school.bleve")
	return cfg
}

func TestSetupIndex_BuildsAndCloses(t *testing.T) {
	cfg := chatConfig(t)

	index := SetupIndex(context.Background(), cfg, zerolog.Nop())
	require.NotNil(t, index)

	answer, err := index.Query(context.Background(), "library")
	require.NoError(t, err)
	assert.Equal(t, "The library opens at 8am.", answer)

	collab := Collaborators{Index: index}
	require.NoError(t, collab.Close())
	assert.DirExists(t, cfg.Chat.IndexPath)
}

func TestSetupIndex_Disabled(t *testing.T) {
	cfg := chatConfig(t)
	cfg.Chat.Enabled = false

	assert.Nil(t, SetupIndex(context.Background(), cfg, zerolog.Nop()))
	assert.NoError(t, Collaborators{}.Close())
}

func TestSetupIndex_MissingDocsDisablesChat(t *testing.T) {
	cfg := chatConfig(t)
	cfg.Chat.DocumentDir = filepath.Join(t.TempDir(), "missing")

	assert.Nil(t, SetupIndex(context.Background(), cfg, zerolog.Nop()))
}
