package main

import (
	"github.com/fwojciec/riff"
	"github.com/fwojciec/riff/internal/commitline"
	"github.com/fwojciec/riff/internal/hunkheader"
	"github.com/fwojciec/riff/internal/hyperlink"
	"github.com/fwojciec/riff/internal/syntax"
)

// hunkHeaderAdapter satisfies riff.HunkHeaderParser using internal/hunkheader.
type hunkHeaderAdapter struct{}

func (hunkHeaderAdapter) Parse(line string) (riff.HunkHeaderInfo, bool) {
	h, ok := hunkheader.Parse(line)
	if !ok {
		return riff.HunkHeaderInfo{}, false
	}
	return riff.HunkHeaderInfo{Rendered: h.Render(), ColumnCount: h.ColumnCount()}, true
}

// commitLineAdapter satisfies riff.CommitLineFormatter using internal/commitline.
type commitLineAdapter struct{}

func (commitLineAdapter) Format(line string) (string, bool) {
	return commitline.Format(line)
}

// hyperlinkAdapter satisfies riff.FilenameHyperlinker using internal/hyperlink.
type hyperlinkAdapter struct{}

func (hyperlinkAdapter) Hyperlink(tokens []riff.StyledToken) []riff.StyledToken {
	in := make([]hyperlink.Token, len(tokens))
	for i, t := range tokens {
		in[i] = hyperlink.Token{Text: t.Text}
	}
	out := hyperlink.Wrap(in)

	result := make([]riff.StyledToken, len(tokens))
	copy(result, tokens)
	for i := range result {
		result[i].Text = out[i].Text
	}
	return result
}

// syntaxAdapter satisfies riff.SyntaxHighlighter using internal/syntax.
type syntaxAdapter struct {
	h *syntax.Highlighter
}

func (s syntaxAdapter) DetectLanguage(path string) string {
	return s.h.DetectLanguage(path)
}

func (s syntaxAdapter) Highlight(language, line string) (string, bool) {
	return s.h.Highlight(language, line)
}
