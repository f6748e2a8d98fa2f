// Package cli defines the agg-files command surface. It owns argument
// parsing and invocation validation; the selection pipeline only ever
// sees the parsed options record.
package cli

import (
	"errors"
	"os"

	"github.com/SethHorsley/agg-files/internal/app"
	"github.com/SethHorsley/agg-files/internal/config"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the agg-files command.
func NewRootCmd() *cobra.Command {
	opts := &config.Options{}

	cmd := &cobra.Command{
		Use:   "agg-files [flags] [patterns...]",
		Short: "Aggregate and dump files matching glob patterns",
		Long: `agg-files selects files beneath the working directory using glob
patterns, filters them through .gitignore rules and the project's
.agg-files ignore list, and prints their contents (or just their paths)
to standard output.

A pattern naming an existing file or directory is used literally; an
explicitly named file is always printed, ignore rules notwithstanding.`,
		Example: `  agg-files --url 'https://github.com/org/repo/tree/main/path' -r
  agg-files -r '*.go'
  agg-files src --sort-size
  agg-files --version`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Patterns = args
			if !opts.Valid() {
				return errors.New("nothing to do: supply at least one pattern, --url, or --version")
			}

			// Validation is done; failures past this point are the
			// pipeline's to report, not a usage problem.
			cmd.SilenceUsage = true

			opts.UseColors = !opts.NoColor && isatty.IsTerminal(os.Stdout.Fd())

			return app.New(opts, cmd.OutOrStdout()).Run()
		},
	}

	cmd.Flags().BoolVarP(&opts.Recursive, "recursive", "r", false, "Search recursively")
	cmd.Flags().BoolVarP(&opts.NoGitignore, "no-gitignore", "i", false, "Ignore .gitignore rules (include all files)")
	cmd.Flags().BoolVar(&opts.FilesOnly, "files-only", false, "Only show file paths without content")
	cmd.Flags().BoolVar(&opts.SortBySize, "sort-size", false, "Sort files by content size (largest first)")
	cmd.Flags().StringVar(&opts.URL, "url", "", "GitHub repository URL")
	cmd.Flags().BoolVarP(&opts.ShowVersion, "version", "v", false, "Show version information")
	cmd.Flags().BoolVar(&opts.Verbose, "verbose", false, "Enable verbose logging")
	cmd.Flags().BoolVar(&opts.Quiet, "quiet", false, "Suppress info messages (only show warnings and errors)")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable color output")

	return cmd
}

// Execute runs the root command and exits nonzero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
