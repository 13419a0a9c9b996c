package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

const maxSuggestions = 5

func newFindCmd() *cobra.Command {
	var lines rangeFlags

	cmd := &cobra.Command{
		Use:     "find FILE SYMBOL",
		Aliases: []string{"find-symbol-usages"},
		Short:   "List every expression a symbol is used in",
		Long: `List every expression referencing SYMBOL, with its position in FILE.

A symbol used at the top level, outside of any list, is listed by itself.

Examples:
  suokif find Merge.kif Human
  suokif find Merge.kif instance --start-line 1 --end-line 500`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, name := args[0], args[1]
			r := lines.lineRange()

			c, err := compileFile(path, r)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			usages := c.Usages(name)
			if len(usages) == 0 {
				fmt.Fprintf(out, "no usages of %q\n", name)
				if suggestions := c.Symbols().Suggest(name, maxSuggestions); len(suggestions) > 0 {
					fmt.Fprintf(out, "did you mean: %s?\n", strings.Join(suggestions, ", "))
				}
				return nil
			}

			for _, n := range usages {
				line, col := nodePosition(c, r, n)
				fmt.Fprintf(out, "%s:%d:%d\t%s\n", path, line, col, oneLine(n.Text(c.Source())))
			}
			return nil
		},
	}

	lines.register(cmd)
	return cmd
}

func newSymbolsCmd() *cobra.Command {
	var lines rangeFlags

	cmd := &cobra.Command{
		Use:   "symbols FILE",
		Short: "List the symbols of a file and how often they are referenced",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := compileFile(args[0], lines.lineRange())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			st := c.Symbols()
			for _, name := range st.Names() {
				fmt.Fprintf(tw, "%s\t%d\n", name, len(st.Lookup(name)))
			}
			return tw.Flush()
		},
	}

	lines.register(cmd)
	return cmd
}
