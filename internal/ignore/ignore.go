package ignore

import (
	"path/filepath"

	"github.com/SethHorsley/agg-files/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// New creates a Matcher rooted at rootDir. Construction never fails:
// unreadable or malformed ignore files degrade to "no additional
// exclusions" so that a broken .gitignore cannot abort a run.
func New(rootDir string, opts ...Option) *Matcher {
	absRootDir, err := filepath.Abs(rootDir)

	m := &Matcher{
		rootDir: absRootDir,
		logger:  utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(m)
	}

	if err != nil {
		m.logger.Warn("ignore: cannot resolve root %q, continuing without gitignore rules: %v", rootDir, err)
		m.rootDir = rootDir
		m.disabled = true
	}

	m.build()
	return m
}

// build assembles the rule sources in evaluation order.
func (m *Matcher) build() {
	if len(m.configGlobs) > 0 {
		if src := newConfigSource(m.configGlobs, m.logger); src != nil {
			m.sources = append(m.sources, src)
		}
	}

	m.sources = append(m.sources, gitDirSource{})

	if m.disabled {
		m.logger.Debug("ignore: gitignore rules disabled")
		return
	}

	repo, err := gitignore.NewRepository(m.rootDir)
	if err != nil {
		m.logger.Warn("ignore: cannot load gitignore rules from %q, continuing without them: %v", m.rootDir, err)
		return
	}
	if repo == nil {
		m.logger.Debug("ignore: no gitignore rules found under %q", m.rootDir)
		return
	}

	m.sources = append(m.sources, &repoSource{root: m.rootDir, repo: repo, logger: m.logger})
}

// Excluded reports whether the entry at path should be excluded. The
// matcher root itself is never excluded. A nil matcher excludes
// nothing.
func (m *Matcher) Excluded(path string, isDir bool) bool {
	if m == nil {
		return false
	}
	if path == "" || path == "." {
		return false
	}

	for _, src := range m.sources {
		if src.Excluded(path, isDir) {
			m.logger.Debug("ignore: %q excluded by %s rules", path, src.Name())
			return true
		}
	}
	return false
}
