// Package sanitize cleans free-text form input before it is validated or stored.
//
// Tags are removed with a regular expression, not an HTML parser, so input
// such as "a < b > c" loses the text between the brackets. What remains is
// HTML-escaped for display. Cleaning is pure and idempotent: feeding the
// output back in returns it unchanged.
package sanitize

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Limit bounds a field by word count and character count.
type Limit struct {
	Words int
	Chars int
}

// Field limits applied by the request handlers.
var (
	StudentNumber = Limit{Words: 1, Chars: 20}
	Password      = Limit{Words: 1, Chars: 50}
	Name          = Limit{Words: 10, Chars: 100}
	Email         = Limit{Words: 1, Chars: 100}
	Subjects      = Limit{Words: 20, Chars: 200}
	Year          = Limit{Words: 1, Chars: 4}
	Feedback      = Limit{Words: 150, Chars: 1000}
	Question      = Limit{Words: 150, Chars: 1000}
)

// StripTags removes anything that looks like an HTML tag.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

// Escape escapes text for display. Existing entities are decoded first so
// already-escaped text is not escaped twice.
func Escape(s string) string {
	return html.EscapeString(html.UnescapeString(s))
}

// Text strips tags, escapes and trims s without enforcing any limit.
func Text(s string) string {
	return strings.TrimSpace(Escape(StripTags(s)))
}

// Clean returns the sanitized form of raw and whether it fits within limit.
// A zero Words or Chars disables that check. The cleaned text is returned
// even when it does not fit, callers must check ok.
func Clean(raw string, limit Limit) (string, bool) {
	cleaned := Text(raw)
	return cleaned, Fits(cleaned, limit)
}

// Fits reports whether already-sanitized text is within limit.
func Fits(s string, limit Limit) bool {
	if limit.Words > 0 && WordCount(s) > limit.Words {
		return false
	}
	if limit.Chars > 0 && utf8.RuneCountInString(s) > limit.Chars {
		return false
	}
	return true
}

// WordCount counts whitespace-separated words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// Required cleans raw and returns "" when it is empty or over limit.
func Required(raw string, limit Limit) string {
	cleaned, ok := Clean(raw, limit)
	if !ok {
		return ""
	}
	return cleaned
}
