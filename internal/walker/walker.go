// Package walker handles directory traversal with subtree pruning.
package walker

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/SethHorsley/agg-files/internal/ignore"
)

// WalkFunc receives each selected regular file. path is the absolute
// location on disk; rel is the slash-separated path relative to the
// walk base (by default the walk root).
type WalkFunc func(path, rel string)

// Walk traverses the tree rooted at root, applying the ignore matcher
// to every entry before yielding or descending. Excluded directories
// are pruned: their subtrees are never enumerated. Only regular files
// are handed to fn; directories are traversal waypoints.
//
// Entry-level filesystem errors (permission denied, broken symlinks)
// skip the entry and keep the walk going. Traversal order is WalkDir's
// lexical order, so a walk is reproducible for a given tree. Each call
// is a fresh, single-use traversal.
func Walk(root string, matcher *ignore.Matcher, fn WalkFunc, opts ...Option) error {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("walker: failed to get absolute path for %q: %w", root, err)
	}

	absBase := absRoot
	if options.Base != "" {
		absBase, err = filepath.Abs(options.Base)
		if err != nil {
			return fmt.Errorf("walker: failed to get absolute path for base %q: %w", options.Base, err)
		}
	}

	return filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			options.Logger.Warn("walker: skipping %q: %v", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(absBase, path)
		if relErr != nil {
			options.Logger.Warn("walker: skipping %q, cannot relativize: %v", path, relErr)
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		rel = filepath.ToSlash(rel)

		isDir := d.IsDir()
		if matcher.Excluded(rel, isDir) {
			options.Logger.Debug("walker: pruned %q", rel)
			if isDir {
				return fs.SkipDir
			}
			return nil
		}

		if isDir {
			// Depth-limited walks yield the root's immediate children
			// and stop there.
			if !options.Recursive && path != absRoot {
				return fs.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			options.Logger.Debug("walker: skipping %q, not a regular file", rel)
			return nil
		}

		fn(path, rel)
		return nil
	})
}
