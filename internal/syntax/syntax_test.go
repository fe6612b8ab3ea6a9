package syntax_test

import (
	"testing"

	"github.com/fwojciec/riff/internal/syntax"
	"github.com/stretchr/testify/assert"
)

func TestHighlighter_DetectLanguage(t *testing.T) {
	h := syntax.New()

	cases := []struct {
		path string
		want string
	}{
		{"src/main.go", "Go"},
		{"app.py", "Python"},
		{"b/src/foo.go", "Go"},
		{"a/src/foo.go", "Go"},
		{"file.unknownext", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, h.DetectLanguage(tc.path), "path: %s", tc.path)
	}
}

func TestHighlighter_Highlight(t *testing.T) {
	h := syntax.New()

	rendered, ok := h.Highlight("Go", `func main() {}`)
	assert.True(t, ok)
	assert.Contains(t, rendered, "func")
	assert.Contains(t, rendered, "main")
}

func TestHighlighter_HighlightUnknownLanguage(t *testing.T) {
	h := syntax.New()

	_, ok := h.Highlight("not-a-real-language", "whatever")
	assert.False(t, ok)
}
