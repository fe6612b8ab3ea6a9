// Package hyperlink best-effort wraps a file-header's filename tokens in an
// OSC-8 terminal hyperlink, so a hyperlink-aware terminal can open the file
// directly from the diff. Finishes the upstream FIXME left in riff's
// token_collector.rs, which split out the filename but never emitted the
// escape sequence.
package hyperlink

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const (
	oscStart = "\x1b]8;;"
	oscEnd   = "\x1b\\"
)

// Token is the minimal shape hyperlink.Wrap needs from a styled token; it
// mirrors riff.StyledToken without importing the root package, to keep
// this collaborator free of a dependency on the CORE.
type Token struct {
	Text string
}

// Wrap finds the filename portion of row (everything before the first tab
// or multi-space-run token), resolves it against the current working
// directory, and - if the file actually exists - returns a copy of row
// with an OSC-8 hyperlink escape sequence wrapped around the filename
// tokens. If the file can't be resolved or doesn't exist, row is returned
// unchanged.
func Wrap(row []Token) []Token {
	split := splitFilename(row)
	if split == 0 {
		return row
	}

	var filename strings.Builder
	for _, tok := range row[:split] {
		filename.WriteString(tok.Text)
	}

	path := filename.String()
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return row
		}
		path = filepath.Join(cwd, path)
	}

	if _, err := os.Stat(path); err != nil {
		return row
	}

	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}

	out := make([]Token, len(row))
	copy(out, row)
	out[0].Text = oscStart + u.String() + oscEnd + out[0].Text
	out[split-1].Text = out[split-1].Text + oscStart + oscEnd
	return out
}

func splitFilename(row []Token) int {
	for i, tok := range row {
		if tok.Text == "\t" {
			return i
		}
		if isMultiSpace(tok.Text) {
			return i
		}
	}
	return len(row)
}

func isMultiSpace(s string) bool {
	if len(s) < 2 {
		return false
	}
	for _, r := range s {
		if r != ' ' {
			return false
		}
	}
	return true
}
