// Package ignore decides which walked entries are excluded from
// selection. Exclusions come from three independent rule sources,
// evaluated in a fixed order with the first exclusion winning:
//
//  1. the project-config glob list (.agg-files `ignore` key),
//  2. the hardcoded .git metadata rule,
//  3. hierarchical .gitignore rules for the working directory.
//
// The .git rule cannot be disabled; the .gitignore source is dropped
// entirely when the matcher is built with WithGitignoreDisabled(true).
package ignore

import (
	"github.com/SethHorsley/agg-files/internal/utils"
)

// A source contributes exclusions from one rule provider. Sources are
// independently testable and know nothing about each other.
type source interface {
	// Excluded reports whether this source rules the path out. Paths
	// are slash-separated and relative to the matcher root.
	Excluded(path string, isDir bool) bool

	// Name identifies the source in debug output.
	Name() string
}

// Matcher reports whether a file or directory is excluded from
// selection. Excluding a directory prunes its whole subtree: the walker
// never descends into it, so no other source gets a say on its
// children.
type Matcher struct {
	rootDir     string
	configGlobs []string
	disabled    bool
	logger      utils.Logger

	sources []source
}
