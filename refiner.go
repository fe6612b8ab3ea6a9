package riff

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/riff/worddiff"
)

// The refiner turns a block of consecutive removed lines and a block of
// consecutive added lines into ANSI-highlighted output, attempting
// intra-line refinement (highlighting exactly the parts of each line that
// changed) when that refinement would actually be useful.
const (
	// maxHighlightPercentage: if refining a change would highlight more
	// than this percentage of both sides' characters taken together, the
	// "refinement" is really just
	// a replacement, so don't bother - fall back to whole-line coloring.
	maxHighlightPercentage = 30

	largeCountChangePercent = 100
	smallCountChange        = 10
)

const noEOFNewlineMarker = `\ No newline at end of file`

var lineStyleNoEOFNewline = LineStyle{PrefixStyle: AnsiStyle{Weight: WeightFaint}}

// DiffTokens runs the same token-level diff Format uses internally, but
// returns the styled token sequences directly instead of rendering and
// line-splitting them, and without the 30%-highlight-ratio gate. It's used
// for refining short single-line values (file-header filenames) where
// "fall back to no refinement" would defeat the point.
func DiffTokens(oldText, newText string) (oldTokens, newTokens []StyledToken) {
	oldTokens, newTokens, _, _ = diffStyledTokens(oldText, newText)
	return oldTokens, newTokens
}

// diffStyledTokens tokenizes and diffs oldText against newText, returning
// styled token sequences for both sides plus the highlighted/total
// character (rune) counts format_split needs for its highlight-ratio gate.
func diffStyledTokens(oldText, newText string) (oldStyled, newStyled []StyledToken, highlightedCount, totalCount int) {
	oldTokens := Tokenize(oldText)
	newTokens := Tokenize(newText)
	edits := worddiff.Diff(oldTokens, newTokens)

	var oldTotal, newTotal, oldHighlighted, newHighlighted int
	for _, e := range edits {
		n := utf8.RuneCountInString(e.Token)
		switch e.Kind {
		case worddiff.EditCopy:
			oldStyled = append(oldStyled, StyledToken{Text: e.Token, Style: StyleDiffPartMidlighted})
			newStyled = append(newStyled, StyledToken{Text: e.Token, Style: StyleDiffPartMidlighted})
			oldTotal += n
			newTotal += n
		case worddiff.EditRemove:
			if e.Token == "\n" {
				// Make sure the highlighted linefeed is visible.
				oldStyled = append(oldStyled, StyledToken{Text: "⏎", Style: StyleDiffPartHighlighted})
			}
			oldStyled = append(oldStyled, StyledToken{Text: e.Token, Style: StyleDiffPartHighlighted})
			oldTotal += n
			oldHighlighted += n
		case worddiff.EditInsert:
			if e.Token == "\n" {
				newStyled = append(newStyled, StyledToken{Text: "⏎", Style: StyleDiffPartHighlighted})
			}
			newStyled = append(newStyled, StyledToken{Text: e.Token, Style: StyleDiffPartHighlighted})
			newTotal += n
			newHighlighted += n
		}
	}

	return oldStyled, newStyled, oldHighlighted + newHighlighted, oldTotal + newTotal
}

// Format returns the ANSI-highlighted lines for a removed block (oldText)
// followed by an added block (newText), in that order, one rendered line
// per slice element with no trailing newline. Either side may be empty,
// which happens for pure adds or pure removes.
func Format(oldText, newText string) []string {
	return FormatWithStyles(oldText, newText, LineStyleOld, LineStyleNew, "-", "+")
}

// FormatWithStyles is Format generalized over the line styles and prefixes
// to use for each side, so the same refinement logic can render a conflict
// block's old-vs-new, old-vs-base, or base-vs-new pairing with that
// pairing's own colors instead of the ordinary diff's red/green.
func FormatWithStyles(oldText, newText string, oldLS, newLS LineStyle, oldPrefix, newPrefix string) []string {
	if oldLines, newLines, ok := formatSplit(oldText, newText, oldLS, newLS, oldPrefix, newPrefix); ok {
		return append(oldLines, newLines...)
	}
	oldLines, newLines := partialFormat(oldText, newText, oldLS, newLS, oldPrefix, newPrefix)
	return append(oldLines, newLines...)
}

// simpleFormat renders old and new lines in their plain block colors, with
// no intra-line refinement.
func simpleFormat(oldText, newText string, oldLS, newLS LineStyle, oldPrefix, newPrefix string) (oldLines, newLines []string) {
	oldLines = simpleFormatSide(oldText, oldLS, oldPrefix)
	newLines = simpleFormatSide(newText, newLS, newPrefix)
	return oldLines, newLines
}

func simpleFormatSide(text string, ls LineStyle, prefix string) []string {
	if text == "" {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		tokens := []StyledToken{{Text: line, Style: StyleDiffPartMidlighted}}
		lines = append(lines, renderRow(ls, prefix, tokens, false))
	}
	if !strings.HasSuffix(text, "\n") {
		lines = append(lines, renderRow(lineStyleNoEOFNewline, noEOFNewlineMarker, nil, false))
	}
	return lines
}

// formatSplit attempts a full intra-line refinement of old vs new. The
// third return value is false when refinement was skipped or rejected, in
// which case the caller should fall back to partialFormat.
func formatSplit(oldText, newText string, oldLS, newLS LineStyle, oldPrefix, newPrefix string) (oldLines, newLines []string, ok bool) {
	if oldText == "" || newText == "" {
		oldLines, newLines = simpleFormat(oldText, newText, oldLS, newLS, oldPrefix, newPrefix)
		return oldLines, newLines, true
	}

	// These checks make us faster: a refinement of a wholesale rewrite is
	// both slow to compute and useless to read.
	if isLargeByteCountChange(oldText, newText) {
		return nil, nil, false
	}
	if isLargeNewlineCountChange(oldText, newText) {
		return nil, nil, false
	}

	oldStyled, newStyled, highlightedCount, totalCount := diffStyledTokens(oldText, newText)
	if totalCount > 0 && (100*highlightedCount)/totalCount > maxHighlightPercentage {
		return nil, nil, false
	}

	oldRendered := Render(oldLS, oldPrefix, oldStyled)
	newRendered := Render(newLS, newPrefix, newStyled)

	oldLines = splitRenderedLines(oldRendered)
	newLines = splitRenderedLines(newRendered)

	if !strings.HasSuffix(oldText, "\n") {
		oldLines = append(oldLines, renderRow(lineStyleNoEOFNewline, noEOFNewlineMarker, nil, false))
	}
	if !strings.HasSuffix(newText, "\n") {
		newLines = append(newLines, renderRow(lineStyleNoEOFNewline, noEOFNewlineMarker, nil, false))
	}

	return oldLines, newLines, true
}

// splitRenderedLines splits an already-rendered block at newlines, the way
// Rust's str::lines() does: a trailing newline does not produce a trailing
// empty element.
func splitRenderedLines(rendered string) []string {
	if rendered == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(rendered, "\n"), "\n")
}

// lastByteIndexOfNthLine returns the byte offset of the nth newline in
// text, panicking if text has fewer than n lines - mirroring the
// teacher-side assumption that callers only ask for lines that exist.
func lastByteIndexOfNthLine(text string, lineCount int) int {
	found := 0
	for i, c := range text {
		if c != '\n' {
			continue
		}
		found++
		if found == lineCount {
			return i
		}
	}
	panic("line not found in text")
}

func extractInitialLines(count int, text string) string {
	last := lastByteIndexOfNthLine(text, count)
	return text[:last+1]
}

func extractTrailingLines(count int, text string) string {
	newlineCount := strings.Count(text, "\n")
	countFromStart := newlineCount - count
	last := lastByteIndexOfNthLine(text, countFromStart)
	return text[last+1:]
}

// partialFormat handles a new block with more lines than the old block by
// matching the old block against the start or the end of the new one,
// using whichever alignment produces a usable refinement. When the old
// block is the longer one (or the line counts are equal), no alignment is
// attempted and both sides get whole-line coloring.
func partialFormat(oldText, newText string, oldLS, newLS LineStyle, oldPrefix, newPrefix string) (oldLines, newLines []string) {
	if !(strings.HasSuffix(oldText, "\n") && strings.HasSuffix(newText, "\n")) {
		// FIXME: handle mismatched trailing-newline blocks instead of just
		// falling back here.
		return simpleFormat(oldText, newText, oldLS, newLS, oldPrefix, newPrefix)
	}

	oldLineCount := strings.Count(oldText, "\n")
	newLineCount := strings.Count(newText, "\n")

	if newLineCount > oldLineCount {
		initialNewText := extractInitialLines(oldLineCount, newText)
		if formattedOld, formattedInitialNew, ok := formatSplit(oldText, initialNewText, oldLS, newLS, oldPrefix, newPrefix); ok {
			remainingNewText := newText[len(initialNewText):]
			_, formattedRemainingNew := simpleFormat("", remainingNewText, oldLS, newLS, oldPrefix, newPrefix)
			return formattedOld, append(formattedInitialNew, formattedRemainingNew...)
		}

		trailingNewText := extractTrailingLines(oldLineCount, newText)
		if formattedOld, formattedTrailingNew, ok := formatSplit(oldText, trailingNewText, oldLS, newLS, oldPrefix, newPrefix); ok {
			initialNewText := newText[:len(newText)-len(trailingNewText)]
			_, formattedInitialNew := simpleFormat("", initialNewText, oldLS, newLS, oldPrefix, newPrefix)
			return formattedOld, append(formattedInitialNew, formattedTrailingNew...)
		}
	}

	// The case where the old block is longer than the new block is left
	// unhandled upstream too; fall back to whole-line coloring.
	return simpleFormat(oldText, newText, oldLS, newLS, oldPrefix, newPrefix)
}

func isLargeCountChange(count1, count2 int) bool {
	high, low := count1, count2
	if low > high {
		high, low = low, high
	}

	if high-low <= smallCountChange {
		return false
	}

	// "+ 99" rounds the result up, so 0->0, 1->2.
	lowPlusPercentage := (low*(largeCountChangePercent+100) + 99) / 100
	return high >= lowPlusPercentage
}

func isLargeByteCountChange(oldText, newText string) bool {
	return isLargeCountChange(len(oldText), len(newText))
}

func isLargeNewlineCountChange(oldText, newText string) bool {
	return isLargeCountChange(strings.Count(oldText, "\n"), strings.Count(newText, "\n"))
}
