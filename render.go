package riff

import (
	"strings"
	"unicode/utf8"
)

// renderRow renders one already-split (no embedded "\n") row of tokens:
// the prefix in the line style's prefix style, then each token in its
// mapped style, finishing with a transition back to Normal. If forceFaint
// is set (used by RenderMultiPrefix for prefixes containing '-'), every
// token's weight is forced to faint regardless of its own style.
func renderRow(ls LineStyle, prefix string, tokens []StyledToken, forceFaint bool) string {
	var b strings.Builder

	current := StyleNormal
	b.WriteString(ls.PrefixStyle.TransitionFrom(current))
	current = ls.PrefixStyle
	b.WriteString(prefix)

	for _, tok := range tokens {
		next := styleToAnsi(ls, tok.Style)
		if forceFaint {
			next = next.WithWeight(WeightFaint)
		}
		b.WriteString(next.TransitionFrom(current))
		current = next
		b.WriteString(tok.Text)
	}

	b.WriteString(StyleNormal.TransitionFrom(current))
	return b.String()
}

// Render renders tokens, split at "\n" tokens into one output line per
// segment, each prefixed with `prefix`. A trailing partial line (the token
// slice does not end with "\n") is rendered without a trailing newline.
func Render(ls LineStyle, prefix string, tokens []StyledToken) string {
	var b strings.Builder

	rowStart := 0
	for i, tok := range tokens {
		if tok.Text != "\n" {
			continue
		}
		b.WriteString(renderRow(ls, prefix, tokens[rowStart:i], false))
		b.WriteByte('\n')
		rowStart = i + 1
	}
	if rowStart < len(tokens) {
		b.WriteString(renderRow(ls, prefix, tokens[rowStart:], false))
	}
	return b.String()
}

// RenderMultiPrefix is like Render, but the i-th output line uses
// prefixes[i] instead of a single shared prefix. Used for merge diffs,
// where each line carries its own per-parent +/-/space column. If any
// character of a line's prefix is '-', every token on that line is forced
// to faint weight.
func RenderMultiPrefix(ls LineStyle, prefixes []string, tokens []StyledToken) string {
	var b strings.Builder

	rowStart := 0
	lineNum := 0
	for i, tok := range tokens {
		if tok.Text != "\n" {
			continue
		}
		prefix := prefixes[lineNum]
		forceFaint := strings.ContainsRune(prefix, '-')
		b.WriteString(renderRow(ls, prefix, tokens[rowStart:i], forceFaint))
		b.WriteByte('\n')
		rowStart = i + 1
		lineNum++
	}
	if rowStart < len(tokens) {
		prefix := prefixes[lineNum]
		forceFaint := strings.ContainsRune(prefix, '-')
		b.WriteString(renderRow(ls, prefix, tokens[rowStart:], forceFaint))
	}
	return b.String()
}

// AlignTabs finds the first tab token in each array (if both have one) and
// replaces each with a run of spaces so that both tab positions land at
// column 2+max(oldCol, newCol), where columns are counted in Unicode
// scalars of the preceding tokens. Used to line up file-header timestamps.
func AlignTabs(oldRow, newRow []StyledToken) {
	oldIdx, oldCol := firstTabColumn(oldRow)
	if oldIdx < 0 {
		return
	}
	newIdx, newCol := firstTabColumn(newRow)
	if newIdx < 0 {
		return
	}

	maxCol := oldCol
	if newCol > maxCol {
		maxCol = newCol
	}

	oldRow[oldIdx].Text = strings.Repeat(" ", 2+maxCol-oldCol)
	newRow[newIdx].Text = strings.Repeat(" ", 2+maxCol-newCol)
}

func firstTabColumn(row []StyledToken) (index, column int) {
	col := 0
	for i, tok := range row {
		if tok.Text == "\t" {
			return i, col
		}
		col += utf8.RuneCountInString(tok.Text)
	}
	return -1, 0
}

// splitFilenameAndTimestamp splits row at the first tab token or the first
// multi-space token (length >= 2, all spaces); that separator token ends the
// filename half, and everything after it is the timestamp half. Either half
// may be empty.
func splitFilenameAndTimestamp(row []StyledToken) (filename, timestamp []StyledToken) {
	for i, tok := range row {
		if tok.Text == "\t" {
			return row[:i+1], row[i+1:]
		}
		if isMultiSpace(tok.Text) {
			return row[:i+1], row[i+1:]
		}
	}
	return row, nil
}

func isMultiSpace(s string) bool {
	if utf8.RuneCountInString(s) < 2 {
		return false
	}
	for _, r := range s {
		if r != ' ' {
			return false
		}
	}
	return true
}

// LowlightTimestamp marks the timestamp half of a file-header row (see
// splitFilenameAndTimestamp) as StyleLowlighted.
func LowlightTimestamp(row []StyledToken) {
	_, timestamp := splitFilenameAndTimestamp(row)
	for i := range timestamp {
		timestamp[i].Style = StyleLowlighted
	}
}

// LowlightGitPrefix marks a leading "a" or "b" followed by "/" as
// StyleLowlighted, since those are git's diffable-path placeholders, not
// user content.
func LowlightGitPrefix(row []StyledToken) {
	if len(row) < 2 {
		return
	}
	if (row[0].Text == "a" || row[0].Text == "b") && row[1].Text == "/" {
		row[0].Style = StyleLowlighted
		row[1].Style = StyleLowlighted
	}
}

// BrightenFilename marks the token(s) after the last "/" (or every token, if
// there is no "/") as StyleBright, skipping tokens already marked
// StyleDiffPartHighlighted so refinement highlights are not overridden.
func BrightenFilename(row []StyledToken) {
	lastSlash := -1
	for i, tok := range row {
		if tok.Text == "/" {
			lastSlash = i
		}
	}

	toBrighten := row[lastSlash+1:]
	for i := range toBrighten {
		if toBrighten[i].Style == StyleDiffPartHighlighted {
			continue
		}
		toBrighten[i].Style = StyleBright
	}
}

// LowlightDevNull marks an entire "/dev/null" token sequence as
// StyleLowlighted.
func LowlightDevNull(row []StyledToken) {
	if len(row) < 4 {
		return
	}
	if row[0].Text == "/" && row[1].Text == "dev" && row[2].Text == "/" && row[3].Text == "null" {
		for i := range row {
			row[i].Style = StyleLowlighted
		}
	}
}
