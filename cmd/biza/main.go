package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// errDiagnostics signals that diagnostics were printed and the exit status
// must be non-zero
var errDiagnostics = errors.New("source has diagnostics")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "biza",
		Short:         "biza lexes, parses, binds and evaluates expressions",
		Long:          `biza runs integer and boolean expressions through the lexer, parser, binder and evaluator and prints each stage.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			w := io.Discard
			if verbose {
				w = cmd.ErrOrStderr()
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(newLexCmd())
	rootCmd.AddCommand(newTreeCmd())
	rootCmd.AddCommand(newBindCmd())
	rootCmd.AddCommand(newEvalCmd())

	return rootCmd
}
