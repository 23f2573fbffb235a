// Package docindex answers free-text questions from a prebuilt index of
// school documents.
package docindex

import (
	"context"
	"errors"
)

// ErrIndexEmpty is returned by Query when nothing has been built or loaded.
var ErrIndexEmpty = errors.New("document index is empty")

// NoAnswer is returned when no indexed passage matches the question.
const NoAnswer = "Sorry, I could not find anything about that in the school documents."

// Index is a document index backend. Build is run out of band, Query is
// called per request.
type Index interface {
	Build(ctx context.Context, documentDir string) error
	Query(ctx context.Context, question string) (string, error)
}

// Persister is implemented by indexes kept on disk between runs. Load opens
// a previously built index read-only.
type Persister interface {
	Load(path string) error
	Close() error
}
