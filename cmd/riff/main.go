package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/fwojciec/riff"
	"github.com/fwojciec/riff/clipboard"
	"github.com/fwojciec/riff/internal/pager"
	"github.com/fwojciec/riff/internal/rifflog"
	"github.com/fwojciec/riff/internal/syntax"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// App encapsulates the application logic for testing, following the same
// shape as diffview's cmd/diffview.App.
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Color    string // "always", "never", or "auto"
	NoPager  bool
	PagerEnv string
	Syntax   bool
	Copy     bool

	stdoutIsTerminal bool
}

func (a *App) useColor() bool {
	switch a.Color {
	case "always":
		return true
	case "never":
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !a.stdoutIsTerminal {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

func (a *App) Run() error {
	pool := riff.NewPool(runtime.NumCPU())
	defer pool.Close()

	logger := rifflog.New(a.Stderr)

	var syn riff.SyntaxHighlighter
	if a.Syntax {
		syn = syntaxAdapter{h: syntax.New()}
	}

	driver := riff.NewDriver(pool, logger, hunkHeaderAdapter{}, commitLineAdapter{}, hyperlinkAdapter{}, syn)

	out := a.Stdout
	if !a.useColor() {
		out = &stripWriter{w: out}
	}

	var copyBuf *bytes.Buffer
	if a.Copy {
		copyBuf = &bytes.Buffer{}
		out = io.MultiWriter(out, copyBuf)
	}

	var pg *pager.Pager
	if a.stdoutIsTerminal && !a.NoPager {
		p, err := pager.Launch(a.PagerEnv)
		if err != nil {
			return err
		}
		if p != nil {
			pg = p
			out = pg.Stdin()
			if !a.useColor() {
				out = &stripWriter{w: out}
			}
			if copyBuf != nil {
				out = io.MultiWriter(out, copyBuf)
			}
		}
	}

	runErr := driver.Run(a.Stdin, out)

	if pg != nil {
		if closeErr := pg.Close(); runErr == nil {
			runErr = closeErr
		}
	}
	if runErr != nil {
		return runErr
	}

	if copyBuf != nil {
		return clipboard.New().Copy(riff.StripANSI(copyBuf.String()))
	}
	return nil
}

// stripWriter strips ANSI escape sequences from everything written through
// it, for --color=never and non-terminal/NO_COLOR output.
type stripWriter struct {
	w io.Writer
}

func (s *stripWriter) Write(p []byte) (int, error) {
	stripped := riff.StripANSI(string(p))
	if _, err := io.WriteString(s.w, stripped); err != nil {
		return 0, err
	}
	return len(p), nil
}

var errNoInput = errors.New("riff: refusing to read diff input from a terminal, pipe one in instead")

func newRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:   "riff",
		Short: "Colorize and refine a unified diff streamed on stdin",
		Long: `riff reads a unified diff on stdin and writes an ANSI-colored,
intra-line-refined version to stdout.

Usage: git diff | riff`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			stat, err := os.Stdin.Stat()
			if err != nil {
				return fmt.Errorf("checking stdin: %w", err)
			}
			if (stat.Mode() & os.ModeCharDevice) != 0 {
				return errNoInput
			}

			outStat, err := os.Stdout.Stat()
			if err != nil {
				return fmt.Errorf("checking stdout: %w", err)
			}

			app.Stdin = os.Stdin
			app.Stdout = os.Stdout
			app.Stderr = os.Stderr
			app.stdoutIsTerminal = (outStat.Mode() & os.ModeCharDevice) != 0

			return app.Run()
		},
	}

	cmd.Flags().StringVar(&app.Color, "color", "auto", `colorize output: "always", "never", or "auto"`)
	cmd.Flags().BoolVar(&app.NoPager, "no-pager", false, "don't pipe output through a pager")
	cmd.Flags().StringVar(&app.PagerEnv, "pager-env", "", "environment variable naming a custom pager to prefer over $PAGER")
	cmd.Flags().BoolVar(&app.Syntax, "syntax", false, "best-effort syntax-highlight unchanged context lines")
	cmd.Flags().BoolVar(&app.Copy, "copy", false, "also copy the rendered (ANSI-stripped) output to the system clipboard")

	cmd.Version = "0.1.0"

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "riff:", err)
		os.Exit(1)
	}
}
