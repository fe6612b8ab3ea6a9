package riff

import "strings"

// fileHeaderHandler consumes a "--- old" / "+++ new" file-header pair and
// emits both lines, refined against each other, as a single ready future.
type fileHeaderHandler struct {
	oldName   string
	hyperlink FilenameHyperlinker
}

func tryStartFileHeader(line string, ctx *dispatchContext) (Handler, bool) {
	oldName, ok := strings.CutPrefix(line, "--- ")
	if !ok {
		return nil, false
	}
	var hl FilenameHyperlinker
	if ctx != nil {
		hl = ctx.hyperlink
	}
	return &fileHeaderHandler{oldName: oldName, hyperlink: hl}, true
}

func (h *fileHeaderHandler) ConsumeLine(line string, _ *Pool) (Response, error) {
	newName, ok := strings.CutPrefix(line, "+++ ")
	if !ok {
		return Response{}, errMalformed("--- was not followed by +++")
	}

	rendered := renderFileHeaderPair(h.oldName, newName, h.hyperlink)
	return Response{
		Acceptance:  AcceptedDone,
		Highlighted: []*DeferredString{FromValue(rendered)},
	}, nil
}

func (h *fileHeaderHandler) ConsumeEOF(_ *Pool) ([]*DeferredString, error) {
	return nil, errMalformed("input ended early, --- should have been followed by +++")
}

func renderFileHeaderPair(oldName, newName string, hyperlink FilenameHyperlinker) string {
	oldTokens, newTokens := DiffTokens(oldName, newName)

	var newPrefix, oldPrefix *StyledToken
	if oldName == "/dev/null" {
		// This is a new file: don't diff-highlight the name against
		// "/dev/null", there's nothing meaningful to compare it to.
		for i := range newTokens {
			newTokens[i].Style = StyleContext
		}
		newPrefix = &StyledToken{Text: "NEW ", Style: StyleBright}
	}
	if newName == "/dev/null" {
		for i := range oldTokens {
			oldTokens[i].Style = StyleContext
		}
		oldPrefix = &StyledToken{Text: "DELETED ", Style: StyleBright}
	}

	BrightenFilename(oldTokens)
	BrightenFilename(newTokens)

	LowlightDevNull(oldTokens)
	LowlightDevNull(newTokens)

	LowlightTimestamp(oldTokens)
	LowlightTimestamp(newTokens)

	AlignTabs(oldTokens, newTokens)

	LowlightGitPrefix(oldTokens)
	LowlightGitPrefix(newTokens)

	if hyperlink != nil {
		if oldName != "/dev/null" {
			oldTokens = hyperlink.Hyperlink(oldTokens)
		}
		if newName != "/dev/null" {
			newTokens = hyperlink.Hyperlink(newTokens)
		}
	}

	if newPrefix != nil {
		newTokens = append([]StyledToken{*newPrefix}, newTokens...)
	}
	if oldPrefix != nil {
		oldTokens = append([]StyledToken{*oldPrefix}, oldTokens...)
	}

	oldRendered := Render(LineStyleOldFilename, "--- ", oldTokens)
	newRendered := Render(LineStyleNewFilename, "+++ ", newTokens)

	var b strings.Builder
	b.WriteString(oldRendered)
	b.WriteByte('\n')
	b.WriteString(newRendered)
	b.WriteByte('\n')
	return b.String()
}
