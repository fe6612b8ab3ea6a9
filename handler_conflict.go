package riff

import "strings"

// conflictHandler accumulates a merge-conflict block:
//
//	<<<<<<< ours
//	old lines...
//	||||||| base        (optional)
//	base lines...
//	=======
//	new lines...
//	>>>>>>> theirs
//
// Unlike the rest of the sub-handlers, there is no working reference
// implementation for this one to port: the upstream conflict highlighter
// was never finished. The section markers and LINE_STYLE_CONFLICT_* colors
// it would have used are real, so this builds the pairwise-refinement
// contract fresh on top of those: old is always refined against new, and
// when a base section is present, old-vs-base and base-vs-new are refined
// too, each pairing keeping its own conflict line styles.
type conflictPhase int

const (
	conflictPhaseOld conflictPhase = iota
	conflictPhaseBase
	conflictPhaseNew
)

type conflictHandler struct {
	phase    conflictPhase
	oldText  string
	baseText string
	newText  string
	hasBase  bool

	openLine  string
	baseLine  string
	sepLine   string
	closeLine string
}

func tryStartConflict(line string, _ *dispatchContext) (Handler, bool) {
	if !strings.HasPrefix(line, "<<<<<<< ") {
		return nil, false
	}
	return &conflictHandler{phase: conflictPhaseOld, openLine: line}, true
}

func (h *conflictHandler) ConsumeLine(line string, pool *Pool) (Response, error) {
	switch h.phase {
	case conflictPhaseOld:
		switch {
		case strings.HasPrefix(line, "||||||| "):
			h.hasBase = true
			h.baseLine = line
			h.phase = conflictPhaseBase
		case line == "=======":
			h.sepLine = line
			h.phase = conflictPhaseNew
		default:
			h.oldText += line + "\n"
		}
		return Response{Acceptance: AcceptedWantMore}, nil

	case conflictPhaseBase:
		if line == "=======" {
			h.sepLine = line
			h.phase = conflictPhaseNew
			return Response{Acceptance: AcceptedWantMore}, nil
		}
		h.baseText += line + "\n"
		return Response{Acceptance: AcceptedWantMore}, nil

	case conflictPhaseNew:
		if strings.HasPrefix(line, ">>>>>>> ") {
			h.closeLine = line
			return Response{Acceptance: AcceptedDone, Highlighted: h.emit(pool)}, nil
		}
		h.newText += line + "\n"
		return Response{Acceptance: AcceptedWantMore}, nil
	}

	return Response{}, errMalformed("conflict block in an unexpected state")
}

func (h *conflictHandler) ConsumeEOF(_ *Pool) ([]*DeferredString, error) {
	return nil, errMalformed("input ended early, conflict block was never closed with '>>>>>>> '")
}

// emit renders the marker lines verbatim alongside the refined pairings, so
// a conflict block round-trips every input line instead of only its
// refined content.
func (h *conflictHandler) emit(pool *Pool) []*DeferredString {
	out := []*DeferredString{
		FromValue(h.openLine + "\n"),
		FromPairWithStyles(pool, h.oldText, h.newText, LineStyleConflictOld, LineStyleConflictNew, "-", "+"),
	}
	if h.hasBase {
		out = append(out,
			FromValue(h.baseLine+"\n"),
			FromPairWithStyles(pool, h.oldText, h.baseText, LineStyleConflictOld, LineStyleConflictBase, "-", "|"),
			FromPairWithStyles(pool, h.baseText, h.newText, LineStyleConflictBase, LineStyleConflictNew, "|", "+"),
		)
	}
	out = append(out,
		FromValue(h.sepLine+"\n"),
		FromValue(h.closeLine+"\n"),
	)
	return out
}
