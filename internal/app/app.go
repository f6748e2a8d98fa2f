// Package app wires the selection pipeline together for one invocation.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/SethHorsley/agg-files/internal/config"
	"github.com/SethHorsley/agg-files/internal/ignore"
	"github.com/SethHorsley/agg-files/internal/logger"
	"github.com/SethHorsley/agg-files/internal/printer"
	"github.com/SethHorsley/agg-files/internal/resolver"
	"github.com/fatih/color"
)

// App encapsulates the main application functionality
type App struct {
	opts *config.Options
	log  *logger.Logger
	out  io.Writer
}

// New creates a new App instance writing results to out. Diagnostics go
// to stderr through the logger.
func New(opts *config.Options, out io.Writer) *App {
	// Configure color globally
	color.NoColor = !opts.UseColors

	log := logger.New(os.Stderr, opts.Verbose, opts.UseColors)
	if opts.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	return &App{
		opts: opts,
		log:  log,
		out:  out,
	}
}

// Run executes the selection pipeline. Per-pattern, per-entry and
// per-file failures are reported and skipped inside the pipeline; an
// error is returned only for failures before the pipeline starts.
func (a *App) Run() error {
	if a.opts.ShowVersion {
		fmt.Fprintf(a.out, "agg-files version %s\n", config.Version)
		return nil
	}

	a.opts.ApplyDefaults()

	workingDir, err := filepath.Abs(a.opts.WorkingDir)
	if err != nil {
		return fmt.Errorf("app: resolving working directory %q: %w", a.opts.WorkingDir, err)
	}

	a.log.Debug("working directory: %s", workingDir)
	a.log.Debug("patterns: %v, recursive: %v, gitignore disabled: %v",
		a.opts.Patterns, a.opts.Recursive, a.opts.NoGitignore)

	project := config.LoadProject(workingDir, a.log)
	if len(project.Ignore) > 0 {
		a.log.Debug("project ignore patterns: %v", project.Ignore)
	}

	matcher := ignore.New(workingDir,
		ignore.WithConfigGlobs(project.Ignore),
		ignore.WithGitignoreDisabled(a.opts.NoGitignore),
		ignore.WithLogger(a.log),
	)

	p := printer.New().
		WithOutput(a.out).
		WithColors(a.opts.UseColors).
		WithFilesOnly(a.opts.FilesOnly).
		WithWorkingDir(workingDir)

	res := resolver.New(workingDir, matcher,
		resolver.WithRecursive(a.opts.Recursive),
		resolver.WithLogger(a.log),
	)

	if a.opts.SortBySize {
		res.Resolve(a.opts.Patterns, p.AddSized)
		p.FlushSized()
	} else {
		res.Resolve(a.opts.Patterns, p.PrintFile)
	}

	a.log.Debug("emitted %d files", p.Count())
	return nil
}
