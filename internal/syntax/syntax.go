// Package syntax provides optional, best-effort syntax coloring of
// unchanged diff context lines, layered underneath the CORE's own diff
// styling. Disabled by default (opt-in via --syntax); the original riff
// Rust implementation has nothing like it.
package syntax

import (
	"path/filepath"
	"strings"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/lipgloss"
)

// Highlighter detects languages from file paths and colors single lines of
// source in that language.
type Highlighter struct{}

// New returns a ready-to-use Highlighter.
func New() *Highlighter { return &Highlighter{} }

// DetectLanguage returns chroma's language name for path, or "" if none of
// its lexers claim the extension. Diff-style "a/"/"b/" prefixes are
// stripped first.
func (h *Highlighter) DetectLanguage(path string) string {
	path = strings.TrimPrefix(path, "a/")
	path = strings.TrimPrefix(path, "b/")

	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}

// Highlight colors one line of source in the given language. It returns
// ok=false if the language isn't recognized, in which case the caller
// should render the line unstyled.
func (h *Highlighter) Highlight(language, line string) (string, bool) {
	lexer := lexers.Get(language)
	if lexer == nil {
		return "", false
	}
	lexer = chroma.Coalesce(lexer)

	iter, err := lexer.Tokenise(nil, line)
	if err != nil {
		return "", false
	}

	var b strings.Builder
	for tok := iter(); tok != chroma.EOF; tok = iter() {
		b.WriteString(styleFor(tok.Type).Render(tok.Value))
	}
	return b.String(), true
}

var (
	styleKeyword = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	styleString  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleComment = lipgloss.NewStyle().Faint(true)
	styleNumber  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleName    = lipgloss.NewStyle()
)

func styleFor(t chroma.TokenType) lipgloss.Style {
	switch t {
	case chroma.Keyword, chroma.KeywordConstant, chroma.KeywordDeclaration,
		chroma.KeywordNamespace, chroma.KeywordPseudo, chroma.KeywordReserved, chroma.KeywordType:
		return styleKeyword

	case chroma.String, chroma.StringAffix, chroma.StringBacktick, chroma.StringChar,
		chroma.StringDelimiter, chroma.StringDoc, chroma.StringDouble, chroma.StringEscape,
		chroma.StringHeredoc, chroma.StringInterpol, chroma.StringOther, chroma.StringRegex,
		chroma.StringSingle, chroma.StringSymbol:
		return styleString

	case chroma.Comment, chroma.CommentHashbang, chroma.CommentMultiline, chroma.CommentPreproc,
		chroma.CommentPreprocFile, chroma.CommentSingle, chroma.CommentSpecial:
		return styleComment

	case chroma.Number, chroma.NumberBin, chroma.NumberFloat, chroma.NumberHex,
		chroma.NumberInteger, chroma.NumberIntegerLong, chroma.NumberOct:
		return styleNumber

	default:
		return styleName
	}
}
