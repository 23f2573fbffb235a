package docindex

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDocs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"uniform.md":  "Uniform\n\nStudents wear the school blazer from Term 2 onwards.\n\nHats are required outside during Terms 1 and 4.",
		"canteen.txt": "The canteen opens at 8am and closes after lunch.\n\nEftpos is accepted at the canteen.",
		"ignored.pdf": "canteen canteen canteen",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestBleveIndex_Query(t *testing.T) {
	idx := NewBleveIndex("")
	require.NoError(t, idx.Build(context.Background(), writeDocs(t)))
	t.Cleanup(func() { _ = idx.Close() })
	assert.Equal(t, 5, idx.Len())

	tests := []struct {
		question string
		want     string
	}{
		{"Is the canteen open after lunch?", "The canteen opens at 8am and closes after lunch."},
		{"Are hats required?", "Hats are required outside during Terms 1 and 4."},
		{"blazer", "Students wear the school blazer from Term 2 onwards."},
		{"spaceships", NoAnswer},
		{"what is the", NoAnswer},
	}
	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			got, err := idx.Query(context.Background(), tt.question)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBleveIndex_Empty(t *testing.T) {
	_, err := NewBleveIndex("").Query(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrIndexEmpty)
}

func TestBleveIndex_CancelledContext(t *testing.T) {
	idx := NewBleveIndex("")
	require.NoError(t, idx.Build(context.Background(), writeDocs(t)))
	t.Cleanup(func() { _ = idx.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := idx.Query(ctx, "canteen")
	assert.Error(t, err)
}

func TestLoadOrBuild(t *testing.T) {
	docs := writeDocs(t)
	indexPath := filepath.Join(t.TempDir(), "store", "school.bleve")

	built, fresh, err := LoadOrBuild(context.Background(), indexPath, docs)
	require.NoError(t, err)
	assert.True(t, fresh)
	assert.DirExists(t, indexPath)
	passages := built.Len()
	require.NoError(t, built.Close())

	// the second start reads the persisted index even if the docs are gone
	require.NoError(t, os.RemoveAll(docs))
	loaded, fresh, err := LoadOrBuild(context.Background(), indexPath, docs)
	require.NoError(t, err)
	t.Cleanup(func() { _ = loaded.Close() })
	assert.False(t, fresh)
	assert.Equal(t, passages, loaded.Len())

	got, err := loaded.Query(context.Background(), "eftpos")
	require.NoError(t, err)
	assert.Equal(t, "Eftpos is accepted at the canteen.", got)
}

func TestBuild_MissingDir(t *testing.T) {
	err := NewBleveIndex("").Build(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestClose_Twice(t *testing.T) {
	idx := NewBleveIndex("")
	require.NoError(t, idx.Build(context.Background(), writeDocs(t)))
	require.NoError(t, idx.Close())
	require.NoError(t, idx.Close())

	_, err := idx.Query(context.Background(), "canteen")
	assert.ErrorIs(t, err, ErrIndexEmpty)
}
