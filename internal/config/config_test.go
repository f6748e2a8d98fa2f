package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SethHorsley/agg-files/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestOptionsValid(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want bool
	}{
		{"nothing", Options{}, false},
		{"patterns", Options{Patterns: []string{"*.go"}}, true},
		{"url only", Options{URL: "https://github.com/org/repo"}, true},
		{"version only", Options{ShowVersion: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.Valid())
		})
	}
}

func TestApplyDefaultsURLSelectsEverything(t *testing.T) {
	opts := Options{URL: "https://github.com/org/repo"}
	opts.ApplyDefaults()

	assert.Equal(t, []string{"*"}, opts.Patterns)
	assert.Equal(t, ".", opts.WorkingDir)
}

func TestApplyDefaultsKeepsExplicitPatterns(t *testing.T) {
	opts := Options{URL: "https://github.com/org/repo", Patterns: []string{"src"}}
	opts.ApplyDefaults()

	assert.Equal(t, []string{"src"}, opts.Patterns)
}

func TestLoadProject(t *testing.T) {
	dir := t.TempDir()
	content := "ignore:\n  - '*.log'\n  - node_modules\n"
	writeFile(t, filepath.Join(dir, ProjectFileName), content)

	project := LoadProject(dir, utils.NoopLogger{})
	assert.Equal(t, []string{"*.log", "node_modules"}, project.Ignore)
}

func TestLoadProjectMissingFile(t *testing.T) {
	project := LoadProject(t.TempDir(), utils.NoopLogger{})
	assert.Empty(t, project.Ignore)
}

func TestLoadProjectMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ProjectFileName), "ignore: [unclosed\n")

	// A broken config degrades to no exclusions, never an error.
	project := LoadProject(dir, utils.NoopLogger{})
	assert.Empty(t, project.Ignore)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
