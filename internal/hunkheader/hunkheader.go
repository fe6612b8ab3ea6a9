// Package hunkheader parses and re-renders unified-diff hunk headers:
// "@@ -a,b +c,d @@ [title]" for ordinary diffs, "@@@ -a,b -c,d +e,f @@@ ..."
// for merge diffs with more parents.
package hunkheader

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // cyan
	countStyle  = headerStyle.Bold(true)
	titleStyle  = lipgloss.NewStyle().Faint(true)
)

// Header is a parsed hunk header. Groups holds one count-group per parent
// (old side) plus one for the new side, in header order - length 2 for an
// ordinary single-parent diff, length N+1 for an N-parent merge diff.
type Header struct {
	Groups []Group
	Title  string
}

// Group is one "-start,count" or "+start,count" field of the header.
type Group struct {
	Sign  byte // '-' or '+'
	Start int
	Count int
}

// ColumnCount reports how many prefix columns a hunk body line carries:
// one per parent. Defaults to 1 if Groups is somehow empty.
func (h Header) ColumnCount() int {
	if len(h.Groups) <= 1 {
		return 1
	}
	return len(h.Groups) - 1
}

// Parse parses a hunk header line. It returns false if line is not one.
func Parse(line string) (Header, bool) {
	fields := strings.Split(line, " ")
	if len(fields) < 3 {
		return Header{}, false
	}

	atRun := fields[0]
	if !isAtRun(atRun) {
		return Header{}, false
	}

	var groups []Group
	i := 1
	for i < len(fields) && len(fields[i]) > 0 && (fields[i][0] == '-' || fields[i][0] == '+') {
		g, ok := parseGroup(fields[i])
		if !ok {
			return Header{}, false
		}
		groups = append(groups, g)
		i++
	}
	if len(groups) < 2 {
		return Header{}, false
	}
	if i >= len(fields) || fields[i] != atRun {
		return Header{}, false
	}
	i++

	title := ""
	if i < len(fields) {
		title = strings.Join(fields[i:], " ")
	}

	return Header{Groups: groups, Title: title}, true
}

func isAtRun(s string) bool {
	if len(s) < 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '@' {
			return false
		}
	}
	return true
}

func parseGroup(field string) (Group, bool) {
	sign := field[0]
	rest := field[1:]
	parts := strings.SplitN(rest, ",", 2)
	if len(parts) == 0 || len(parts) > 2 {
		return Group{}, false
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return Group{}, false
	}
	count := 1
	if len(parts) == 2 {
		count, err = strconv.Atoi(parts[1])
		if err != nil {
			return Group{}, false
		}
	}
	return Group{Sign: sign, Start: start, Count: count}, true
}

// Render re-renders the header with bold counts and a faint title.
func (h Header) Render() string {
	atRun := strings.Repeat("@", h.ColumnCount()+1)

	var parts []string
	for _, g := range h.Groups {
		parts = append(parts, groupText(g))
	}

	body := atRun + " " + strings.Join(parts, " ") + " " + atRun

	if h.Title == "" {
		return countStyle.Render(body)
	}
	return countStyle.Render(body) + " " + titleStyle.Render(h.Title)
}

func groupText(g Group) string {
	if g.Count == 1 {
		return string(g.Sign) + strconv.Itoa(g.Start)
	}
	return string(g.Sign) + strconv.Itoa(g.Start) + "," + strconv.Itoa(g.Count)
}
