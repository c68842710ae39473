package controller

import (
	"io"
	"os"

	"github.com/mouse-blink/parcel/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewUI picks the renderer for an output mode: the lipgloss/Bubble Tea TUI
// or plain text. In auto mode the TUI is used only on a terminal.
func NewUI(cmd *cobra.Command, output string) UI {
	if UseTUI(cmd.OutOrStdout(), output) {
		return NewTUI(cmd.OutOrStdout(), cmd.ErrOrStderr())
	}

	return NewSimpleUI(cmd)
}

// UseTUI resolves an output mode against the writer commands print to.
func UseTUI(w io.Writer, output string) bool {
	switch output {
	case config.OutputTUI:
		return true
	case config.OutputSimple:
		return false
	default:
		return IsTTY(w)
	}
}

// IsTTY reports whether w is an interactive terminal. Pipes, regular files
// and in-memory buffers are not.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}
