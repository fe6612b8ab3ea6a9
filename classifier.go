package riff

// Acceptance describes how a Handler responded to one input line.
type Acceptance int

const (
	// AcceptedWantMore means the line was consumed and the handler expects
	// more lines.
	AcceptedWantMore Acceptance = iota
	// AcceptedDone means the line was consumed and the handler is
	// finished; the driver should deactivate it.
	AcceptedDone
	// RejectedDone means the line was not consumed; the handler is
	// finished and the driver must re-dispatch the line from scratch.
	RejectedDone
)

// Response is a Handler's reaction to one input line.
type Response struct {
	Acceptance  Acceptance
	Highlighted []*DeferredString
}

// Handler consumes a run of related input lines - a file header, a rename
// pair, a conflict block, a plus-minus block - and emits one or more
// deferred strings once it has enough context to render them.
type Handler interface {
	ConsumeLine(line string, pool *Pool) (Response, error)
	ConsumeEOF(pool *Pool) ([]*DeferredString, error)
}

// dispatchContext carries state the driver tracks across lines that a
// handler's try_start needs but can't infer from a single line alone: the
// plus-minus prefix column count set by the most recently seen hunk
// header, and the optional hyperlink collaborator a file-header handler
// threads through to its render step.
type dispatchContext struct {
	prefixLength int
	hyperlink    FilenameHyperlinker
	syntax       SyntaxHighlighter
	language     string
}

// tryStart is implemented by each handler's constructor: given a line, it
// either starts a new Handler or reports that the line isn't one of its
// own.
type tryStart func(line string, ctx *dispatchContext) (Handler, bool)

// handlerTryStarts lists, in the fixed order the driver tries them, every
// sub-handler except plain passthrough: file-header, rename, conflict,
// plus-minus. Plain passthrough is the driver's fallback when none of
// these claim the line.
var handlerTryStarts = []tryStart{
	tryStartFileHeader,
	tryStartRename,
	tryStartConflict,
	tryStartPlusMinus,
}
