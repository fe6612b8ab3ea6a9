// Package commitline colorizes "commit <hex>[ (refs)]" lines as produced by
// `git log --decorate` (or equivalent), highlighting the current branch,
// other branches, and tags differently.
package commitline

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	yellowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	tagStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	headStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	branchStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	otherStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

// Format colorizes one commit line. It returns false if line doesn't look
// like a commit line at all (the caller should then fall back to plain
// passthrough, though in practice the driver only calls this after its own
// regexp match already confirmed the shape).
func Format(line string) (string, bool) {
	if !strings.HasPrefix(line, "commit ") {
		return "", false
	}

	parts := strings.SplitN(line, "(", 2)
	if len(parts) == 1 {
		return yellowStyle.Render(line), true
	}

	commitPart := strings.TrimSpace(parts[0])
	refsPart, ok := strings.CutSuffix(parts[1], ")")
	if !ok {
		return yellowStyle.Render(line), true
	}

	refs := strings.Split(refsPart, ", ")
	currentBranch := currentBranchOf(refs)

	var rendered []string
	for _, ref := range refs {
		rendered = append(rendered, formatRef(ref, currentBranch))
	}

	return yellowStyle.Render(commitPart+" (") + strings.Join(rendered, yellowStyle.Render(", ")) + yellowStyle.Render(")"), true
}

func formatRef(ref string, currentBranch string) string {
	if strings.HasPrefix(ref, "tag: ") {
		return tagStyle.Render(ref)
	}
	if currentBranch != "" && ref == currentBranch {
		return branchStyle.Render(ref)
	}
	if rest, ok := strings.CutPrefix(ref, "HEAD -> "); ok {
		return headStyle.Render("HEAD -> ") + branchStyle.Render(rest)
	}
	return otherStyle.Render(ref)
}

// currentBranchOf picks the checked-out branch name out of a ref list, the
// way `git log --decorate` presents it: a "HEAD -> x" entry names it
// directly; otherwise, among candidates that aren't tags, the one with the
// fewest slashes wins if it's unique.
func currentBranchOf(refs []string) string {
	var fewestSlashes []string
	lowestSlashCount := -1

	for _, ref := range refs {
		if strings.HasPrefix(ref, "tag: ") {
			continue
		}
		if rest, ok := strings.CutPrefix(ref, "HEAD -> "); ok {
			return rest
		}

		slashCount := strings.Count(ref, "/")
		switch {
		case lowestSlashCount < 0 || slashCount < lowestSlashCount:
			lowestSlashCount = slashCount
			fewestSlashes = []string{ref}
		case slashCount == lowestSlashCount:
			fewestSlashes = append(fewestSlashes, ref)
		}
	}

	if len(fewestSlashes) == 1 {
		return fewestSlashes[0]
	}
	return ""
}
