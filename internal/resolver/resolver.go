// Package resolver turns the ordered list of user patterns into the
// stream of files to emit.
//
// Each pattern is tried as a literal path first. A literal directory is
// walked with ignore rules applied; a literal file is emitted directly,
// bypassing every ignore source including the .git metadata rule — an
// explicitly named file is always wanted. Anything else is treated as a
// glob over a walk of the working directory. Results are not
// deduplicated: a file reachable through two patterns is emitted twice.
package resolver

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/SethHorsley/agg-files/internal/ignore"
	"github.com/SethHorsley/agg-files/internal/pattern"
	"github.com/SethHorsley/agg-files/internal/utils"
	"github.com/SethHorsley/agg-files/internal/walker"
)

// EmitFunc receives each resolved file. display is the path to show in
// output; path is the absolute location on disk.
type EmitFunc func(display, path string)

// Resolver resolves patterns against an explicit working directory.
type Resolver struct {
	workingDir string
	recursive  bool
	matcher    *ignore.Matcher
	logger     utils.Logger
}

// Option is a functional option for configuring the Resolver
type Option func(*Resolver)

// WithRecursive controls traversal depth for glob and directory
// resolution.
func WithRecursive(recursive bool) Option {
	return func(r *Resolver) {
		r.recursive = recursive
	}
}

// WithLogger sets a custom logger for the resolver.
func WithLogger(logger utils.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Resolver rooted at workingDir.
func New(workingDir string, matcher *ignore.Matcher, opts ...Option) *Resolver {
	r := &Resolver{
		workingDir: workingDir,
		matcher:    matcher,
		logger:     utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve processes each pattern in input order, emitting every
// resolved file. A pattern that fails to compile as a glob is reported
// and skipped; no failure here ends the run.
func (r *Resolver) Resolve(patterns []string, emit EmitFunc) {
	for _, pat := range patterns {
		target := pat
		if !filepath.IsAbs(target) {
			target = filepath.Join(r.workingDir, target)
		}

		info, err := os.Stat(target)
		switch {
		case err == nil && info.IsDir():
			r.resolveDirectory(pat, target, emit)
		case err == nil:
			// Literal file: emitted unconditionally, no ignore checks.
			emit(pat, target)
		default:
			r.resolveGlob(pat, emit)
		}
	}
}

// resolveDirectory walks a literal directory pattern with ignore rules
// applied. Paths are relativized against the working directory so that
// gitignore rules rooted there still line up.
func (r *Resolver) resolveDirectory(pat, dir string, emit EmitFunc) {
	err := walker.Walk(dir, r.matcher, func(path, rel string) {
		display := rel
		if strings.HasPrefix(rel, "..") {
			display = path
		}
		emit(display, path)
	},
		walker.WithBase(r.workingDir),
		walker.WithRecursive(r.recursive),
		walker.WithLogger(r.logger),
	)
	if err != nil {
		r.logger.Warn("resolver: error walking %q: %v", pat, err)
	}
}

// resolveGlob walks the working directory and emits files whose
// relative path matches the compiled pattern.
func (r *Resolver) resolveGlob(pat string, emit EmitFunc) {
	m, err := pattern.Compile(pat)
	if err != nil {
		r.logger.Error("resolver: skipping pattern %q: %v", pat, err)
		return
	}

	err = walker.Walk(r.workingDir, r.matcher, func(path, rel string) {
		if m.Match(rel) {
			emit(rel, path)
		}
	},
		walker.WithRecursive(r.recursive),
		walker.WithLogger(r.logger),
	)
	if err != nil {
		r.logger.Warn("resolver: error walking for pattern %q: %v", pat, err)
	}
}
