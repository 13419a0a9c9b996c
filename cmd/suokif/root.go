package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/xiam/suokif/internal/config"
)

var (
	// Global flags
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suokif",
		Short: "Compile SUO-KIF knowledge bases",
		Long: `suokif parses SUO-KIF text into a syntax tree that keeps the source location
of every node, and indexes every symbol to the expressions it appears in.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", ".suokif.yaml", "config file path")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(
		newCompileCmd(),
		newFindCmd(),
		newSymbolsCmd(),
		newReplCmd(),
		newWatchCmd(),
	)
	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if verbose {
			fmt.Fprintf(os.Stderr, "%+v\n", err)
		}
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger before any command
// runs. A config file given explicitly must exist.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadOptional(cfgFile)
	}
	if err != nil {
		return err
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}

	logger = newLogger(cmd.ErrOrStderr(), level)
	slog.SetDefault(logger)

	logger.Debug("configuration loaded", "path", cfgFile, "format", cfg.Output.Format)
	return nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
