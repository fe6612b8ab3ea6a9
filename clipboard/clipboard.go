// Package clipboard copies riff's rendered output to the system clipboard
// for the --copy flag, one-shot "grab this diff for a chat message"
// workflows.
package clipboard

import (
	"github.com/atotto/clipboard"
)

// Clipboard copies ANSI-stripped text to the system clipboard using
// atotto/clipboard, which covers macOS/Linux/Windows instead of shelling
// out to a single platform's copy command.
type Clipboard struct{}

// New returns a ready-to-use Clipboard.
func New() *Clipboard {
	return &Clipboard{}
}

// Copy writes content to the system clipboard.
func (c *Clipboard) Copy(content string) error {
	return clipboard.WriteAll(content)
}
