package docindex

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"
)

// Extensions read by Build.
var documentExtensions = map[string]bool{".txt": true, ".md": true}

const (
	passageType = "passage"
	textField   = "text"
)

// Passage is one indexed paragraph.
type Passage struct {
	Source string `json:"source"`
	Text   string `json:"text"`
}

// Type tells bleve which document mapping to use.
func (Passage) Type() string { return passageType }

// BleveIndex indexes documents paragraph by paragraph with bleve and answers
// with the best matching paragraph.
type BleveIndex struct {
	mu    sync.RWMutex
	path  string
	index bleve.Index
}

// NewBleveIndex creates an index that Build writes to path. An empty path
// keeps the index in memory.
func NewBleveIndex(path string) *BleveIndex {
	return &BleveIndex{path: path}
}

func passageMapping() mapping.IndexMapping {
	text := bleve.NewTextFieldMapping()
	text.Analyzer = en.AnalyzerName
	text.Store = true

	source := bleve.NewTextFieldMapping()
	source.Analyzer = keyword.Name
	source.Store = true
	source.IncludeInAll = false

	passage := bleve.NewDocumentStaticMapping()
	passage.AddFieldMappingsAt(textField, text)
	passage.AddFieldMappingsAt("source", source)

	m := bleve.NewIndexMapping()
	m.AddDocumentMapping(passageType, passage)
	m.DefaultAnalyzer = en.AnalyzerName
	return m
}

// Len returns the number of indexed passages.
func (x *BleveIndex) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	if x.index == nil {
		return 0
	}
	n, err := x.index.DocCount()
	if err != nil {
		return 0
	}
	return int(n)
}

// Build replaces the index with the paragraphs of every document under dir.
func (x *BleveIndex) Build(ctx context.Context, dir string) error {
	passages, err := readPassages(ctx, dir)
	if err != nil {
		return err
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if x.index != nil {
		if err := x.index.Close(); err != nil {
			return fmt.Errorf("failed to close previous index: %w", err)
		}
		x.index = nil
	}

	var idx bleve.Index
	if x.path == "" {
		idx, err = bleve.NewMemOnly(passageMapping())
	} else {
		if err = os.RemoveAll(x.path); err != nil {
			return fmt.Errorf("failed to clear index directory: %w", err)
		}
		if err = os.MkdirAll(filepath.Dir(x.path), 0o755); err != nil {
			return fmt.Errorf("failed to create index directory: %w", err)
		}
		idx, err = bleve.New(x.path, passageMapping())
	}
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	batch := idx.NewBatch()
	for i, p := range passages {
		if err := ctx.Err(); err != nil {
			_ = idx.Close()
			return err
		}
		if err := batch.Index(fmt.Sprintf("%s#%d", p.Source, i), p); err != nil {
			_ = idx.Close()
			return fmt.Errorf("failed to index %s: %w", p.Source, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		_ = idx.Close()
		return fmt.Errorf("failed to write index: %w", err)
	}

	x.index = idx
	return nil
}

// Load opens the index stored at path read-only.
func (x *BleveIndex) Load(path string) error {
	idx, err := bleve.OpenUsing(path, map[string]interface{}{"read_only": true})
	if err != nil {
		return fmt.Errorf("failed to open index %s: %w", path, err)
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	if x.index != nil {
		_ = x.index.Close()
	}
	x.index = idx
	x.path = path
	return nil
}

// Close releases the underlying index. Safe to call more than once.
func (x *BleveIndex) Close() error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.index == nil {
		return nil
	}
	err := x.index.Close()
	x.index = nil
	return err
}

// Query returns the passage that best matches question, or NoAnswer.
func (x *BleveIndex) Query(ctx context.Context, question string) (string, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	if x.index == nil {
		return "", ErrIndexEmpty
	}
	if n, err := x.index.DocCount(); err != nil || n == 0 {
		return "", ErrIndexEmpty
	}

	query := bleve.NewMatchQuery(question)
	query.SetField(textField)

	req := bleve.NewSearchRequestOptions(query, 1, 0, false)
	req.Fields = []string{textField}

	res, err := x.index.SearchInContext(ctx, req)
	if err != nil {
		return "", fmt.Errorf("document index search failed: %w", err)
	}
	if len(res.Hits) == 0 {
		return NoAnswer, nil
	}

	text, ok := res.Hits[0].Fields[textField].(string)
	if !ok || text == "" {
		return NoAnswer, nil
	}
	return text, nil
}

// LoadOrBuild opens the index stored at indexPath. When there is none it
// builds one from documentDir at indexPath for the next start.
func LoadOrBuild(ctx context.Context, indexPath, documentDir string) (*BleveIndex, bool, error) {
	idx := NewBleveIndex(indexPath)
	if _, err := os.Stat(indexPath); err == nil {
		if err := idx.Load(indexPath); err != nil {
			return nil, false, err
		}
		return idx, false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, false, fmt.Errorf("failed to stat index: %w", err)
	}

	if err := idx.Build(ctx, documentDir); err != nil {
		return nil, false, err
	}
	return idx, true, nil
}

func readPassages(ctx context.Context, dir string) ([]Passage, error) {
	var passages []Passage
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || !documentExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read document %s: %w", path, err)
		}
		rel, _ := filepath.Rel(dir, path)
		for _, para := range paragraphs(string(content)) {
			passages = append(passages, Passage{Source: filepath.ToSlash(rel), Text: para})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read documents from %s: %w", dir, err)
	}
	return passages, nil
}

func paragraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var out []string
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.Join(strings.Fields(block), " ")
		if block != "" {
			out = append(out, block)
		}
	}
	return out
}
