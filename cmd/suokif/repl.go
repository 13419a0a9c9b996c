package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/xiam/suokif"
	"github.com/xiam/suokif/parser"
)

const (
	historyFile = ".suokif_history"
	promptMain  = "kif> "
	promptCont  = "...> "
)

const replHelp = `Enter KIF expressions to compile them. Unbalanced input continues on the next line.

Commands:
  :symbols     list the symbols of the last compile
  :find NAME   list the expressions NAME is used in
  :help        show this help
  :quit        leave
`

// prompter reads one line of input. *liner.State implements it.
type prompter interface {
	Prompt(prompt string) (string, error)
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Compile expressions interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ln := liner.NewLiner()
			defer ln.Close()
			ln.SetCtrlCAborts(true)

			home, _ := os.UserHomeDir()
			histPath := filepath.Join(home, historyFile)
			if f, err := os.Open(histPath); err == nil {
				_, _ = ln.ReadHistory(f)
				_ = f.Close()
			}
			defer func() {
				if f, err := os.Create(histPath); err == nil {
					_, _ = ln.WriteHistory(f)
					_ = f.Close()
				}
			}()

			fmt.Fprint(cmd.OutOrStdout(), replHelp)
			return repl(ln, cmd.OutOrStdout(), func(entry string) {
				ln.AppendHistory(strings.ReplaceAll(entry, "\n", " "))
			})
		},
	}
}

// repl reads entries from in until EOF or :quit. remember is called with
// every entry worth keeping in history.
func repl(in prompter, out io.Writer, remember func(string)) error {
	c := suokif.New()

	for {
		entry, ok, err := readEntry(in)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out)
			return nil
		}

		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		remember(entry)

		if strings.HasPrefix(entry, ":") {
			if quit := replCommand(c, out, entry); quit {
				return nil
			}
			continue
		}

		if _, err := c.Compile(entry); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(out, c.String())
	}
}

// readEntry reads lines until they form input that is not just missing a
// closing parenthesis. ok is false at end of input.
func readEntry(in prompter) (string, bool, error) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}

		line, err := in.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			if b.Len() > 0 {
				return b.String(), true, nil
			}
			return "", false, nil
		}
		if err != nil {
			return "", false, errors.Wrap(err, "read input")
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true, nil
		}
		if _, err := parser.Parse(src); errors.Is(err, parser.ErrUnclosedOpenParen) {
			continue
		}
		return src, true, nil
	}
}

func replCommand(c *suokif.Compiler, out io.Writer, entry string) bool {
	fields := strings.Fields(entry)

	switch fields[0] {
	case ":quit", ":q":
		return true

	case ":help":
		fmt.Fprint(out, replHelp)

	case ":symbols":
		st := c.Symbols()
		for _, name := range st.Names() {
			fmt.Fprintf(out, "%s\t%d\n", name, len(st.Lookup(name)))
		}

	case ":find":
		if len(fields) != 2 {
			fmt.Fprintln(out, "usage: :find NAME")
			return false
		}
		usages := c.Usages(fields[1])
		if len(usages) == 0 {
			fmt.Fprintf(out, "no usages of %q\n", fields[1])
			if suggestions := c.Symbols().Suggest(fields[1], maxSuggestions); len(suggestions) > 0 {
				fmt.Fprintf(out, "did you mean: %s?\n", strings.Join(suggestions, ", "))
			}
			return false
		}
		for _, n := range usages {
			fmt.Fprintln(out, oneLine(n.Text(c.Source())))
		}

	default:
		fmt.Fprintf(out, "unknown command %s, type :help\n", fields[0])
	}
	return false
}
