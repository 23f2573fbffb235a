// Package notices reads the school notice board from its RSS feed.
package notices

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/yigit/schoolhub/internal/pkg/sanitize"
)

// Placeholders used when a feed entry lacks a field.
const (
	NoTitle   = "No title"
	NoDate    = "No date"
	NoContent = "No content"
)

// DefaultLimit is the maximum number of entries kept from one fetch.
const DefaultLimit = 40

// Notice is one entry of the notice board.
type Notice struct {
	Title   string
	Date    string
	Content string
}

// Source fetches the current notices.
type Source interface {
	Fetch(ctx context.Context) ([]Notice, error)
}

// FeedSource fetches notices from an RSS or Atom URL.
type FeedSource struct {
	url    string
	limit  int
	parser *gofeed.Parser
}

// NewFeedSource creates a source for url. A timeout of zero leaves the
// request bounded only by the caller's context.
func NewFeedSource(url string, timeout time.Duration, limit int) *FeedSource {
	if limit <= 0 {
		limit = DefaultLimit
	}
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}
	parser.UserAgent = "schoolhub-notices/1.0"
	return &FeedSource{url: url, limit: limit, parser: parser}
}

// Fetch downloads and parses the feed.
func (s *FeedSource) Fetch(ctx context.Context) ([]Notice, error) {
	feed, err := s.parser.ParseURLWithContext(s.url, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed %s: %w", s.url, err)
	}
	return FromItems(feed.Items, s.limit), nil
}

// FromItems converts at most limit feed items into notices.
func FromItems(items []*gofeed.Item, limit int) []Notice {
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	out := make([]Notice, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		out = append(out, Notice{
			Title:   orDefault(item.Title, NoTitle),
			Date:    orDefault(item.Published, NoDate),
			Content: orDefault(plainText(item.Description), NoContent),
		})
	}
	return out
}

// plainText drops markup from a feed description. The view escapes the
// result again on output.
func plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(sanitize.StripTags(s)))
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
