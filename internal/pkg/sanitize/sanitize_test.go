package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		limit  Limit
		want   string
		wantOk bool
	}{
		{name: "plain", raw: "hello world", limit: Feedback, want: "hello world", wantOk: true},
		{name: "trimmed", raw: "  12345 ", limit: StudentNumber, want: "12345", wantOk: true},
		{name: "script tags", raw: "<script>hi</script> great school", limit: Feedback, want: "hi great school", wantOk: true},
		{name: "escapes ampersand", raw: "fish & chips", limit: Feedback, want: "fish &amp; chips", wantOk: true},
		{name: "escapes quotes", raw: `say "hi"`, limit: Feedback, want: "say &#34;hi&#34;", wantOk: true},
		{name: "too many words", raw: "Jo Lee", limit: StudentNumber, want: "Jo Lee", wantOk: false},
		{name: "too many chars", raw: strings.Repeat("1", 21), limit: StudentNumber, want: strings.Repeat("1", 21), wantOk: false},
		{name: "exactly at char limit", raw: strings.Repeat("1", 20), limit: StudentNumber, want: strings.Repeat("1", 20), wantOk: true},
		{name: "empty", raw: "", limit: Name, want: "", wantOk: true},
		{name: "only tags", raw: "<b></b>", limit: Name, want: "", wantOk: true},
		{name: "no limit", raw: strings.Repeat("word ", 500), limit: Limit{}, want: strings.TrimSpace(strings.Repeat("word ", 500)), wantOk: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Clean(tt.raw, tt.limit)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOk, ok)
		})
	}
}

func TestClean_FeedbackLimits(t *testing.T) {
	_, ok := Clean(strings.Repeat("a ", 150), Feedback)
	assert.True(t, ok, "150 words fit")

	_, ok = Clean(strings.Repeat("a ", 151), Feedback)
	assert.False(t, ok, "151 words do not fit")

	_, ok = Clean(strings.Repeat("x", 1001), Feedback)
	assert.False(t, ok, "1001 chars do not fit")

	// escaping happens before the length check
	_, ok = Clean(strings.Repeat("&", 200), Feedback)
	assert.True(t, ok, "200 ampersands escape to exactly 1000 chars")

	_, ok = Clean(strings.Repeat("&", 201), Feedback)
	assert.False(t, ok, "201 ampersands escape past the limit")
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"<script>hi</script> great school",
		"fish & chips",
		`<a href="x">link</a> "quoted" 'single'`,
		"&lt;b&gt;already escaped&lt;/b&gt;",
		"&amp;amp;",
		"  spaced   out  ",
		"plain",
	}
	for _, in := range inputs {
		once := Text(in)
		twice := Text(once)
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestRequired(t *testing.T) {
	assert.Equal(t, "12345", Required("12345", StudentNumber))
	assert.Equal(t, "", Required("12 345", StudentNumber))
	assert.Equal(t, "", Required("   ", Name))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 3, WordCount(" a  b\tc\n"))
}
