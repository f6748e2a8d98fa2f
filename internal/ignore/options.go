package ignore

import "github.com/SethHorsley/agg-files/internal/utils"

// Option functions for configuration
type Option func(*Matcher)

// WithConfigGlobs adds the project-config ignore globs.
func WithConfigGlobs(globs []string) Option {
	return func(m *Matcher) {
		m.configGlobs = globs
	}
}

// WithGitignoreDisabled drops the .gitignore rule source. The .git
// metadata rule is unaffected.
func WithGitignoreDisabled(disabled bool) Option {
	return func(m *Matcher) {
		m.disabled = disabled
	}
}

// WithLogger sets a custom logger for the matcher.
func WithLogger(logger utils.Logger) Option {
	return func(m *Matcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}
