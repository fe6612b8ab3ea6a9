package riff

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// malformedSegmentError marks the two error kinds spec.md §7 calls
// malformed-segment and unexpected-EOF-in-segment: a sub-handler's
// consume_line/consume_eof rejected its own accumulated state. The driver
// recognizes it, logs a warning, and falls back to plain passthrough
// instead of propagating it up as a fatal error.
type malformedSegmentError struct {
	msg string
}

func (e *malformedSegmentError) Error() string { return e.msg }

func errMalformed(msg string) error {
	return &malformedSegmentError{msg: msg}
}

// HunkHeaderInfo is what the hunk-header collaborator reports back for an
// "@@ ... @@" line: its re-rendered, pre-colored form, and how many
// leading prefix columns the hunk body uses (1 for an ordinary
// single-parent diff, more for a merge diff).
type HunkHeaderInfo struct {
	Rendered    string
	ColumnCount int
}

// HunkHeaderParser is the external collaborator named in spec.md §6 that
// parses and re-renders "@@ -a,b +c,d @@ [title]" lines.
type HunkHeaderParser interface {
	Parse(line string) (HunkHeaderInfo, bool)
}

// CommitLineFormatter is the external collaborator that colorizes
// "commit <hex>[ (refs)]" lines, as produced by e.g. `git log --decorate`.
type CommitLineFormatter interface {
	Format(line string) (string, bool)
}

// Logger is how the driver reports recoverable anomalies (spec.md §7). It
// never blocks the stream and never panics.
type Logger interface {
	Warn(msg string)
}

// FilenameHyperlinker best-effort wraps a file-header's filename tokens in
// an OSC-8 hyperlink. A nil Hyperlinker is a no-op.
type FilenameHyperlinker interface {
	Hyperlink(tokens []StyledToken) []StyledToken
}

// SyntaxHighlighter is the optional --syntax collaborator: it detects a
// file's language from its path, then colors individual context lines
// within that file's hunks, underneath the CORE's own diff styling. A nil
// SyntaxHighlighter leaves context lines uncolored, as spec.md originally
// has them.
type SyntaxHighlighter interface {
	DetectLanguage(path string) string
	Highlight(language, line string) (rendered string, ok bool)
}

var commitLinePattern = regexp.MustCompile(`^commit [0-9a-f]+( \(.*\))?$`)

// Driver is the stream driver (C7): it owns the active sub-handler and the
// FIFO of in-flight deferred strings, and pumps stdin to stdout one line at
// a time.
type Driver struct {
	pool       *Pool
	logger     Logger
	hunkHeader HunkHeaderParser
	commitLine CommitLineFormatter
	hyperlink  FilenameHyperlinker
	syntax     SyntaxHighlighter

	active      Handler
	activeStart string
	dispatchCtx dispatchContext
	fifo        []*DeferredString
}

// NewDriver wires the CORE classifier/refiner to its external collaborators.
// hyperlink and syntax may be nil.
func NewDriver(pool *Pool, logger Logger, hunkHeader HunkHeaderParser, commitLine CommitLineFormatter, hyperlink FilenameHyperlinker, syntax SyntaxHighlighter) *Driver {
	return &Driver{
		pool:        pool,
		logger:      logger,
		hunkHeader:  hunkHeader,
		commitLine:  commitLine,
		hyperlink:   hyperlink,
		syntax:      syntax,
		dispatchCtx: dispatchContext{prefixLength: 1, hyperlink: hyperlink, syntax: syntax},
	}
}

// Run reads unified diff text line by line from r and writes ANSI-colored
// output to w, until r is exhausted. I/O errors are returned to the caller
// as process-terminating failures, per spec.md §7; malformed diff content
// never is.
func (d *Driver) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		d.dispatch(scanner.Text())
		if err := d.drainReady(w); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if d.active != nil {
		emissions, err := d.active.ConsumeEOF(d.pool)
		if err != nil {
			d.logger.Warn(err.Error())
			d.enqueue(FromValue(renderPlainLine(d.activeStart)))
		} else {
			d.enqueue(emissions...)
		}
		d.active = nil
	}

	return d.drainAll(w)
}

// dispatch routes one input line either to the active handler or, if none
// is active, through the try_start chain and finally plain passthrough.
func (d *Driver) dispatch(line string) {
	d.detectLanguage(line)

	if d.active == nil {
		d.dispatchNew(line)
		return
	}

	resp, err := d.active.ConsumeLine(line, d.pool)
	if err != nil {
		d.logger.Warn(err.Error())
		d.enqueue(FromValue(renderPlainLine(d.activeStart)), FromValue(renderPlainLine(line)))
		d.active = nil
		return
	}

	d.enqueue(resp.Highlighted...)

	switch resp.Acceptance {
	case AcceptedDone:
		d.active = nil
	case RejectedDone:
		d.active = nil
		d.dispatchNew(line)
	case AcceptedWantMore:
	}
}

// detectLanguage updates the dispatch context's language, which the
// plus-minus handler reads to decide whether to syntax-color its context
// lines, triggered by the new-file-name line of a file header.
func (d *Driver) detectLanguage(line string) {
	if d.syntax == nil {
		return
	}
	stripped := StripANSI(line)
	name, ok := strings.CutPrefix(stripped, "+++ ")
	if !ok {
		return
	}
	if path, _, ok := strings.Cut(name, "\t"); ok {
		name = path
	}
	if name == "/dev/null" {
		return
	}
	d.dispatchCtx.language = d.syntax.DetectLanguage(name)
}

func (d *Driver) dispatchNew(line string) {
	for _, try := range handlerTryStarts {
		if h, ok := try(line, &d.dispatchCtx); ok {
			d.active = h
			d.activeStart = line
			return
		}
	}
	d.enqueue(d.renderPlain(line))
}

// renderPlain implements spec.md §4.5's plain-passthrough rules for a line
// with no active sub-handler.
func (d *Driver) renderPlain(line string) *DeferredString {
	stripped := StripANSI(line)

	if rest, ok := strings.CutPrefix(stripped, "@@ "); ok {
		if info, ok := d.hunkHeader.Parse("@@ " + rest); ok {
			d.dispatchCtx.prefixLength = info.ColumnCount
			return FromValue(info.Rendered + "\n")
		}
	}

	if commitLinePattern.MatchString(stripped) {
		if rendered, ok := d.commitLine.Format(stripped); ok {
			return FromValue(rendered + "\n")
		}
	}

	return FromValue(renderPlainLine(stripped))
}

// renderPlainLine applies the remaining plain-passthrough rules that don't
// need a collaborator: bold for the structural prefixes, untouched
// otherwise.
func renderPlainLine(line string) string {
	for _, bold := range []string{"diff ", "index ", "--- ", "+++ "} {
		if strings.HasPrefix(line, bold) {
			style := StyleNormal.WithWeight(WeightBold)
			var b strings.Builder
			b.WriteString(style.TransitionFrom(StyleNormal))
			b.WriteString(line)
			b.WriteString(StyleNormal.TransitionFrom(style))
			b.WriteByte('\n')
			return b.String()
		}
	}
	return line + "\n"
}

func (d *Driver) enqueue(ds ...*DeferredString) {
	d.fifo = append(d.fifo, ds...)
}

// drainReady writes the FIFO head while it resolves without blocking,
// stopping as soon as the head isn't ready yet even if later entries are -
// drain order is mandatory, so a later-but-ready entry must still wait.
func (d *Driver) drainReady(w io.Writer) error {
	for len(d.fifo) > 0 && d.fifo[0].isReady() {
		if _, err := io.WriteString(w, d.fifo[0].Get()); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		d.fifo = d.fifo[1:]
	}
	return nil
}

// drainAll blocks on and writes every remaining FIFO entry in order, for
// the final flush at EOF.
func (d *Driver) drainAll(w io.Writer) error {
	for _, ds := range d.fifo {
		if _, err := io.WriteString(w, ds.Get()); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	d.fifo = nil
	return nil
}
