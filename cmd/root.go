// Package cmd implements the CLI commands for tohtml5 using Cobra.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/tohtml5/core/config"
)

var (
	flagVerbose bool
	flagConfig  string
)

// Set by PersistentPreRunE before any subcommand runs.
var (
	logger = slog.New(slog.DiscardHandler)
	cfg    = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "tohtml5",
	Short: "Restructure any HTML into outlined HTML5",
	Long: `tohtml5 takes HTML (or Markdown) and rewrites its heading structure into
HTML5: adjacent headings are grouped in <hgroup>, headings and the content
under them are wrapped in nested <section> elements, and heading ranks are
normalized.

Usage:
  tohtml5 convert [infile [outfile]] [flags]
  tohtml5 serve [flags]`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger = newLogger(cmd.ErrOrStderr(), flagVerbose)

		loaded, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "TOML config file (default ./"+config.DefaultFile+" if present)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func valueOr(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
