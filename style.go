package riff

import (
	"strings"
)

// Color is one of the four ANSI colors riff uses. It deliberately does not
// cover the full SGR color space: riff only ever needs default/red/green/
// yellow.
type Color int

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
)

// Weight is an SGR intensity: normal, bold, or faint. The two are mutually
// exclusive in SGR, so this is an enum rather than two booleans.
type Weight int

const (
	WeightNormal Weight = iota
	WeightBold
	WeightFaint
)

// AnsiStyle is a terminal text style: a color, a weight, and whether
// inverse video is on. It is a value type so transitions can be computed by
// plain comparison.
type AnsiStyle struct {
	Color   Color
	Weight  Weight
	Inverse bool
}

// StyleNormal is the default terminal style: default color, normal weight,
// no inverse video.
var StyleNormal = AnsiStyle{Color: ColorDefault, Weight: WeightNormal, Inverse: false}

// WithColor returns a copy of s with Color replaced.
func (s AnsiStyle) WithColor(c Color) AnsiStyle { s.Color = c; return s }

// WithWeight returns a copy of s with Weight replaced.
func (s AnsiStyle) WithWeight(w Weight) AnsiStyle { s.Weight = w; return s }

// WithInverse returns a copy of s with Inverse replaced.
func (s AnsiStyle) WithInverse(inverse bool) AnsiStyle { s.Inverse = inverse; return s }

const (
	sgrInverseOn    = "\x1b[7m"
	sgrInverseOff   = "\x1b[27m"
	sgrFaint        = "\x1b[2m"
	sgrBold         = "\x1b[1m"
	sgrNormalWeight = "\x1b[22m"
	sgrColorDefault = "\x1b[39m"
	sgrColorRed     = "\x1b[31m"
	sgrColorGreen   = "\x1b[32m"
	sgrColorYellow  = "\x1b[33m"
	sgrReset        = "\x1b[0m"
)

// TransitionFrom returns the shortest SGR escape sequence that moves a
// terminal currently in style `before` to style s. Equal styles need no
// escape at all; transitioning to StyleNormal always collapses to a single
// full reset regardless of where `before` was.
func (s AnsiStyle) TransitionFrom(before AnsiStyle) string {
	if s == before {
		return ""
	}
	if s == StyleNormal {
		return sgrReset
	}

	var b strings.Builder

	if s.Inverse && !before.Inverse {
		b.WriteString(sgrInverseOn)
	}
	if !s.Inverse && before.Inverse {
		b.WriteString(sgrInverseOff)
	}

	if s.Weight != before.Weight {
		if before.Weight != WeightNormal {
			b.WriteString(sgrNormalWeight)
		}
		switch s.Weight {
		case WeightFaint:
			b.WriteString(sgrFaint)
		case WeightBold:
			b.WriteString(sgrBold)
		}
	}

	if s.Color != before.Color {
		switch s.Color {
		case ColorDefault:
			b.WriteString(sgrColorDefault)
		case ColorRed:
			b.WriteString(sgrColorRed)
		case ColorGreen:
			b.WriteString(sgrColorGreen)
		case ColorYellow:
			b.WriteString(sgrColorYellow)
		}
	}

	return b.String()
}

// Style is the semantic role of a token within a styled line; it is mapped
// to a concrete AnsiStyle by a LineStyle at render time.
type Style int

const (
	// StyleContext renders at the terminal's default style.
	StyleContext Style = iota
	// StyleLowlighted renders faint (git a/ b/ prefixes, timestamps, /dev/null).
	StyleLowlighted
	// StyleBright renders bold (brightened filenames, NEW/DELETED markers).
	StyleBright
	// StyleDiffPartUnchanged is the unchanged-but-refined part of a body line.
	StyleDiffPartUnchanged
	// StyleDiffPartMidlighted is copied/equal tokens within a refined line.
	StyleDiffPartMidlighted
	// StyleDiffPartHighlighted is the inserted/removed tokens within a refined line.
	StyleDiffPartHighlighted
	// StyleError renders inverse red, for malformed-segment passthrough.
	StyleError
)

// StyledToken pairs a token's text with its semantic style.
type StyledToken struct {
	Text  string
	Style Style
}

// NewStyledToken builds a StyledToken, applying the control-picture
// substitution: a single control character below 0x20 other than TAB and LF
// is replaced by its Unicode control-pictures glyph (0x2400 + codepoint) so
// that it is visible instead of disrupting terminal layout.
func NewStyledToken(text string, style Style) StyledToken {
	runes := []rune(text)
	if len(runes) == 1 {
		c := runes[0]
		if c < 0x20 && c != '\t' && c != '\n' {
			return StyledToken{Text: string(rune(0x2400 + c)), Style: style}
		}
	}
	return StyledToken{Text: text, Style: style}
}

// LineStyle carries the four AnsiStyles used to render one role (old
// filename, new filename, conflict old/new/base, or a refined body side).
type LineStyle struct {
	PrefixStyle      AnsiStyle
	UnchangedStyle   AnsiStyle
	MidlightedStyle  AnsiStyle
	HighlightedStyle AnsiStyle
}

var (
	// LineStyleOld is the body style for removed (-) lines.
	LineStyleOld = LineStyle{
		PrefixStyle:      StyleNormal.WithColor(ColorRed),
		UnchangedStyle:   StyleNormal.WithColor(ColorYellow),
		MidlightedStyle:  StyleNormal.WithColor(ColorRed),
		HighlightedStyle: StyleNormal.WithColor(ColorRed).WithInverse(true),
	}
	// LineStyleNew is the body style for added (+) lines.
	LineStyleNew = LineStyle{
		PrefixStyle:      StyleNormal.WithColor(ColorGreen),
		UnchangedStyle:   StyleNormal.WithColor(ColorYellow),
		MidlightedStyle:  StyleNormal.WithColor(ColorGreen),
		HighlightedStyle: StyleNormal.WithColor(ColorGreen).WithInverse(true),
	}
	// LineStyleOldFilename is the "--- " file-header line style.
	LineStyleOldFilename = LineStyle{
		PrefixStyle:      StyleNormal.WithWeight(WeightBold),
		UnchangedStyle:   StyleNormal,
		MidlightedStyle:  StyleNormal.WithColor(ColorRed),
		HighlightedStyle: StyleNormal.WithColor(ColorRed).WithInverse(true),
	}
	// LineStyleNewFilename is the "+++ " file-header line style.
	LineStyleNewFilename = LineStyle{
		PrefixStyle:      StyleNormal.WithWeight(WeightBold),
		UnchangedStyle:   StyleNormal,
		MidlightedStyle:  StyleNormal.WithColor(ColorGreen),
		HighlightedStyle: StyleNormal.WithColor(ColorGreen).WithInverse(true),
	}
	// LineStyleConflictOld is the "<<<<<<<" section style.
	LineStyleConflictOld = LineStyle{
		PrefixStyle:      StyleNormal.WithInverse(true),
		UnchangedStyle:   StyleNormal,
		MidlightedStyle:  StyleNormal.WithColor(ColorRed),
		HighlightedStyle: StyleNormal.WithColor(ColorRed).WithInverse(true),
	}
	// LineStyleConflictNew is the ">>>>>>>" section style.
	LineStyleConflictNew = LineStyle{
		PrefixStyle:      StyleNormal.WithInverse(true),
		UnchangedStyle:   StyleNormal,
		MidlightedStyle:  StyleNormal.WithColor(ColorGreen),
		HighlightedStyle: StyleNormal.WithColor(ColorGreen).WithInverse(true),
	}
	// LineStyleConflictBase is the "|||||||" section style.
	LineStyleConflictBase = LineStyle{
		PrefixStyle:      StyleNormal.WithInverse(true),
		UnchangedStyle:   StyleNormal,
		MidlightedStyle:  StyleNormal.WithColor(ColorRed),
		HighlightedStyle: StyleNormal.WithColor(ColorRed).WithInverse(true),
	}
)

// styleToAnsi maps a token's semantic Style to a concrete AnsiStyle given
// the LineStyle in effect for its line.
func styleToAnsi(ls LineStyle, st Style) AnsiStyle {
	switch st {
	case StyleContext:
		return StyleNormal
	case StyleLowlighted:
		return StyleNormal.WithWeight(WeightFaint)
	case StyleBright:
		return StyleNormal.WithWeight(WeightBold)
	case StyleDiffPartUnchanged:
		return ls.UnchangedStyle
	case StyleDiffPartMidlighted:
		return ls.MidlightedStyle
	case StyleDiffPartHighlighted:
		return ls.HighlightedStyle
	case StyleError:
		return StyleNormal.WithColor(ColorRed).WithInverse(true)
	default:
		return StyleNormal
	}
}
