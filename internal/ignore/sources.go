package ignore

import (
	"path/filepath"
	"strings"

	"github.com/SethHorsley/agg-files/internal/pattern"
	"github.com/SethHorsley/agg-files/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// gitDirName is the reserved VCS metadata directory.
const gitDirName = ".git"

// configSource excludes paths matching the project-config glob list.
type configSource struct {
	matchers []*pattern.Matcher
}

// newConfigSource compiles the config globs. Globs that fail to compile
// are reported and dropped; the rest still apply. Returns nil when no
// glob survives.
func newConfigSource(globs []string, log utils.Logger) *configSource {
	src := &configSource{}
	for _, glob := range globs {
		m, err := pattern.Compile(glob)
		if err != nil {
			log.Warn("ignore: skipping config pattern %q: %v", glob, err)
			continue
		}
		src.matchers = append(src.matchers, m)
	}
	if len(src.matchers) == 0 {
		return nil
	}
	return src
}

func (s *configSource) Excluded(path string, isDir bool) bool {
	for _, m := range s.matchers {
		if m.Match(path) {
			return true
		}
	}
	return false
}

func (s *configSource) Name() string { return "config" }

// gitDirSource excludes anything with a .git path component. This rule
// is unconditional so that repository metadata never leaks into output,
// even when gitignore processing is disabled.
type gitDirSource struct{}

func (gitDirSource) Excluded(path string, isDir bool) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == gitDirName {
			return true
		}
	}
	return false
}

func (gitDirSource) Name() string { return "git-metadata" }

// repoSource excludes paths matched by the hierarchical .gitignore
// rules discovered beneath root.
type repoSource struct {
	root   string
	repo   gitignore.GitIgnore
	logger utils.Logger
}

func (s *repoSource) Excluded(path string, isDir bool) bool {
	// The library resolves relative paths against the process working
	// directory, so hand it the absolute path under our root.
	absPath := filepath.Join(s.root, filepath.FromSlash(path))

	ignored := false
	included := false
	func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("ignore: gitignore matcher panicked on %q, treating as not ignored: %v", path, r)
				ignored = false
			}
		}()
		ignored = s.repo.Ignore(absPath)
		if ignored {
			included = s.repo.Include(absPath)
		}
	}()

	// A negated rule re-includes the path.
	return ignored && !included
}

func (s *repoSource) Name() string { return "gitignore" }
