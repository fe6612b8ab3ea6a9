package riff

import (
	"fmt"
	"strings"
)

// plusMinusHandler accumulates a hunk body: a run of lines that each begin
// with a fixed-width prefix column made up of ' ', '-' and '+' characters.
// Consecutive lines sharing the same prefix are grouped into one bucket;
// a new prefix starts a new bucket, unless the previous bucket's prefix
// contained '+', in which case the whole block is done (there is never
// more than one trailing + section).
type plusMinusHandler struct {
	prefixLength int

	// texts[i] holds every line (newline-terminated) seen so far for
	// prefixes[i], in the order they appeared.
	texts    []string
	prefixes []string

	lastSeenPrefix    string
	hasLastSeenPrefix bool

	syntax   SyntaxHighlighter
	language string
}

func tryStartPlusMinus(line string, ctx *dispatchContext) (Handler, bool) {
	if line == "" {
		return nil, false
	}

	prefixLength := 1
	var syntax SyntaxHighlighter
	var language string
	if ctx != nil {
		if ctx.prefixLength > 0 {
			prefixLength = ctx.prefixLength
		}
		syntax = ctx.syntax
		language = ctx.language
	}
	if len(line) < prefixLength {
		return nil, false
	}

	prefix := line[:prefixLength]
	if !isPlusMinusPrefix(prefix) {
		return nil, false
	}

	h := &plusMinusHandler{prefixLength: prefixLength, syntax: syntax, language: language}
	h.prefixes = append(h.prefixes, prefix)
	h.texts = append(h.texts, line[prefixLength:]+"\n")
	h.lastSeenPrefix = prefix
	h.hasLastSeenPrefix = true
	return h, true
}

func isPlusMinusPrefix(prefix string) bool {
	for _, c := range prefix {
		if c != ' ' && c != '-' && c != '+' {
			return false
		}
	}
	return true
}

func (h *plusMinusHandler) currentPrefix() string {
	if len(h.prefixes) == 0 {
		return ""
	}
	return h.prefixes[len(h.prefixes)-1]
}

func (h *plusMinusHandler) ConsumeLine(line string, pool *Pool) (Response, error) {
	if strings.HasPrefix(line, "\\") {
		return h.consumeNoNewlineMarker(pool)
	}

	if line == "" {
		return Response{Acceptance: RejectedDone, Highlighted: h.drain(pool)}, nil
	}

	if len(line) < h.prefixLength {
		return Response{}, errMalformed(fmt.Sprintf("line too short, expected 0 or at least %d characters", h.prefixLength))
	}

	prefix, rest := line[:h.prefixLength], line[h.prefixLength:]
	if !isPlusMinusPrefix(prefix) {
		// Not a hunk body line (a new hunk header, "diff --git", ...): the
		// block is done and the driver re-dispatches this line.
		return Response{Acceptance: RejectedDone, Highlighted: h.drain(pool)}, nil
	}

	h.lastSeenPrefix = prefix
	h.hasLastSeenPrefix = true

	if prefix != h.currentPrefix() {
		if strings.Contains(h.currentPrefix(), "+") {
			// Always start anew after any + section: there is never more
			// than one of those.
			return Response{Acceptance: RejectedDone, Highlighted: h.drain(pool)}, nil
		}
		h.prefixes = append(h.prefixes, prefix)
		h.texts = append(h.texts, "")
	}

	last := len(h.texts) - 1
	h.texts[last] += rest + "\n"

	return Response{
		// Even if we don't expect more lines, a trailing
		// "\ No newline at end of file" line could still follow.
		Acceptance: AcceptedWantMore,
	}, nil
}

// consumeNoNewlineMarker handles a "\ No newline at end of file" line,
// which strips the trailing newline from whichever bucket(s) its column(s)
// point at, per last_seen_prefix.
func (h *plusMinusHandler) consumeNoNewlineMarker(pool *Pool) (Response, error) {
	if !h.hasLastSeenPrefix {
		return Response{}, errMalformed("got '\\ No newline at end of file' without being in a +/- section")
	}

	prefix := h.lastSeenPrefix

	if strings.Contains(prefix, "+") {
		last := len(h.texts) - 1
		trimmed, ok := strings.CutSuffix(h.texts[last], "\n")
		if !ok {
			return Response{}, errMalformed("got + '\\ No newline at end of file' without any newline to remove")
		}
		h.texts[last] = trimmed

		// This marker is always the last line of the + section, and the +
		// section always comes last, so the block is done.
		return Response{Acceptance: AcceptedDone, Highlighted: h.drain(pool)}, nil
	}

	for pos, c := range prefix {
		if c == ' ' {
			continue
		}
		trimmed, ok := strings.CutSuffix(h.texts[pos], "\n")
		if !ok {
			return Response{}, errMalformed("got - '\\ No newline at end of file' without any newline to remove")
		}
		h.texts[pos] = trimmed
	}

	return Response{Acceptance: AcceptedWantMore}, nil
}

func (h *plusMinusHandler) ConsumeEOF(pool *Pool) ([]*DeferredString, error) {
	if !h.hasLastSeenPrefix {
		return nil, errMalformed("got EOF without any lines")
	}
	return h.drain(pool), nil
}

// drain turns the accumulated buckets into deferred strings, in source
// order. Ordinary diffs (prefixLength == 1) pair up adjacent "-"/"+"
// buckets for full refinement, render standalone "-"-only or "+"-only
// buckets with the simple (unrefined) formatter, and pass context ("
// "-prefix) buckets through unchanged. Merge diffs (prefixLength > 1) skip
// pairing entirely: the whole block renders as one multi-prefix future
// with no intra-line refinement, since there's no single well-defined
// "old" and "new" side to diff against each other.
func (h *plusMinusHandler) drain(pool *Pool) []*DeferredString {
	if h.prefixLength > 1 {
		return []*DeferredString{FromValue(renderMergeBlock(h.prefixes, h.texts))}
	}

	var out []*DeferredString
	for i := 0; i < len(h.prefixes); i++ {
		prefix, text := h.prefixes[i], h.texts[i]

		switch prefix {
		case "-":
			if i+1 < len(h.prefixes) && h.prefixes[i+1] == "+" {
				out = append(out, FromPair(pool, text, h.texts[i+1]))
				i++
				continue
			}
			out = append(out, FromValue(joinFormattedLines(simpleFormatSide(text, LineStyleOld, "-"))))
		case "+":
			out = append(out, FromValue(joinFormattedLines(simpleFormatSide(text, LineStyleNew, "+"))))
		default:
			out = append(out, FromValue(h.renderContextLines(text, prefix)))
		}
	}
	return out
}

func (h *plusMinusHandler) renderContextLines(text, prefix string) string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		if h.syntax != nil && h.language != "" {
			if rendered, ok := h.syntax.Highlight(h.language, line); ok {
				lines = append(lines, renderRow(LineStyle{}, prefix, []StyledToken{{Text: rendered, Style: StyleContext}}, false))
				continue
			}
		}
		tokens := []StyledToken{{Text: line, Style: StyleContext}}
		lines = append(lines, renderRow(LineStyle{}, prefix, tokens, false))
	}
	return joinFormattedLines(lines)
}

// renderMergeBlock flattens every bucket's lines back into source order
// and renders them in one pass with each line's own prefix column, the way
// a merge diff's "plus-minus" columns need to stay aligned per line.
func renderMergeBlock(prefixes, texts []string) string {
	var allPrefixes []string
	var allTokens []StyledToken

	for i, text := range texts {
		for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
			allPrefixes = append(allPrefixes, prefixes[i])
			allTokens = append(allTokens, StyledToken{Text: line, Style: StyleContext})
			allTokens = append(allTokens, StyledToken{Text: "\n", Style: StyleContext})
		}
	}

	return RenderMultiPrefix(LineStyle{}, allPrefixes, allTokens)
}
