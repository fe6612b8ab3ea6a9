package riff

import "strings"

// renameHandler consumes a "rename from X" / "rename to Y" pair and emits
// both lines with the names highlighted bold-red/bold-green.
type renameHandler struct {
	oldName string
}

func tryStartRename(line string, _ *dispatchContext) (Handler, bool) {
	oldName, ok := strings.CutPrefix(line, "rename from ")
	if !ok {
		return nil, false
	}
	return &renameHandler{oldName: strings.TrimSpace(oldName)}, true
}

func (h *renameHandler) ConsumeLine(line string, _ *Pool) (Response, error) {
	rest, ok := strings.CutPrefix(line, "rename to ")
	if !ok {
		return Response{}, errMalformed("expected 'rename to <new_name>' after 'rename from <old_name>'")
	}
	newName := strings.TrimSpace(rest)

	rendered := renameLine("rename from ", h.oldName, ColorRed) + "\n" + renameLine("rename to ", newName, ColorGreen) + "\n"
	return Response{
		Acceptance:  AcceptedDone,
		Highlighted: []*DeferredString{FromValue(rendered)},
	}, nil
}

func (h *renameHandler) ConsumeEOF(_ *Pool) ([]*DeferredString, error) {
	return nil, errMalformed("input ended early, rename from should have been followed by rename to")
}

func renameLine(prefix, name string, color Color) string {
	style := StyleNormal.WithWeight(WeightBold).WithColor(color)
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(style.TransitionFrom(StyleNormal))
	b.WriteString(name)
	b.WriteString(StyleNormal.TransitionFrom(style))
	return b.String()
}
