package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mouse-blink/parcel/internal/controller"
	"github.com/spf13/cobra"
)

const shellPrompt = "parcel> "

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands interactively against one session",
		Long: `Starts an interactive prompt. Every line is a parcel command without the
leading "parcel", e.g. "draw lote.geojson" or "subdivide --lots 4".
Type "help" for the command list and "exit" to leave.`,
		Args: cobra.NoArgs,
		RunE: runShell,
	}
}

func runShell(cmd *cobra.Command, _ []string) error {
	app := appFrom(cmd)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          shellPrompt,
		HistoryFile:     filepath.Join(filepath.Dir(app.cfg.StatePath), "shell_history"),
		AutoComplete:    newShellCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize shell: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), `Parcel shell. Type "help" for commands, "exit" to leave.`)

	if err := app.binder.Refresh(); err != nil {
		return err
	}

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return err
		}

		if done := runShellLine(cmd, line); done {
			break
		}

		if err := cmd.Context().Err(); err != nil {
			return err
		}
	}

	return nil
}

// runShellLine executes one line and reports whether the shell should stop.
func runShellLine(cmd *cobra.Command, line string) bool {
	args, err := splitArgs(line)
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return false
	}

	if len(args) == 0 {
		return false
	}

	switch args[0] {
	case "exit", "quit":
		return true
	case "shell":
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Error: already in the shell")
		return false
	}

	sub := newRootCmd()
	sub.SetArgs(args)
	sub.SetIn(cmd.InOrStdin())
	sub.SetOut(cmd.OutOrStdout())
	sub.SetErr(cmd.ErrOrStderr())

	if err := sub.ExecuteContext(cmd.Context()); err != nil && !errors.Is(err, controller.ErrReported) {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}

	return false
}

func newShellCompleter() *readline.PrefixCompleter {
	root := newRootCmd()

	items := make([]readline.PrefixCompleterInterface, 0, len(root.Commands())+2)
	for _, c := range root.Commands() {
		if c.Name() == "shell" || c.Hidden {
			continue
		}

		items = append(items, readline.PcItem(c.Name()))
	}

	items = append(items, readline.PcItem("help"), readline.PcItem("exit"))

	return readline.NewPrefixCompleter(items...)
}

// splitArgs splits a shell line into words. Single and double quotes group
// words and a backslash escapes the next character outside single quotes.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		inWord  bool
		quote   rune
		escaped bool
	)

	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)

			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
			inWord = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				args = append(args, current.String())
				current.Reset()

				inWord = false
			}
		default:
			current.WriteRune(r)

			inWord = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unterminated %c quote", quote)
	}

	if escaped {
		return nil, errors.New("line ends with a backslash")
	}

	if inWord {
		args = append(args, current.String())
	}

	return args, nil
}
