package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xiam/suokif/internal/watch"
)

func newWatchCmd() *cobra.Command {
	var lines rangeFlags

	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Recompile a file every time it changes",
		Long: `Compile FILE, then compile it again after every change until interrupted.

The number of nodes and symbols of each compile is logged. Syntax errors are
logged and do not stop watching.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			r := lines.lineRange()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w, err := watch.New(watch.Config{Path: path, Debounce: cfg.Watch.Debounce}, logger)
			if err != nil {
				return err
			}

			recompile := func() error {
				c, err := compileFile(path, r)
				if err != nil {
					return err
				}
				logger.Info("compiled",
					"path", path,
					"nodes", len(c.AST()),
					"symbols", c.Symbols().Len(),
				)
				return nil
			}

			if err := recompile(); err != nil {
				logger.Error("compile failed", "path", path, "error", err)
			}
			return w.Watch(ctx, recompile)
		},
	}

	lines.register(cmd)
	return cmd
}
