package walker

import "github.com/SethHorsley/agg-files/internal/utils"

// WalkOptions configures the behavior of the Walk function
type WalkOptions struct {
	Logger    utils.Logger
	Recursive bool
	Base      string
}

// defaultOptions returns the default walk options
func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger:    utils.NoopLogger{},
		Recursive: true,
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

// WithRecursive controls traversal depth. When disabled the walk is
// limited to the root's immediate children.
func WithRecursive(recursive bool) Option {
	return func(opts *WalkOptions) {
		opts.Recursive = recursive
	}
}

// WithBase sets the directory that yielded paths are made relative to.
// Defaults to the walk root; set it to the working directory when
// walking a subdirectory so ignore rules see working-dir-relative
// paths.
func WithBase(base string) Option {
	return func(opts *WalkOptions) {
		opts.Base = base
	}
}
