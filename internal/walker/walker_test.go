package walker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SethHorsley/agg-files/internal/ignore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func collect(t *testing.T, root string, matcher *ignore.Matcher, opts ...Option) []string {
	t.Helper()
	var got []string
	err := Walk(root, matcher, func(path, rel string) {
		got = append(got, rel)
	}, opts...)
	require.NoError(t, err)
	return got
}

func TestWalkRecursive(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.txt":          "a",
		"sub/b.txt":      "b",
		"sub/deep/c.txt": "c",
	})

	got := collect(t, dir, ignore.New(dir))

	assert.Equal(t, []string{"a.txt", "sub/b.txt", "sub/deep/c.txt"}, got)
}

func TestWalkDepthLimited(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.txt":     "a",
		"sub/b.txt": "b",
	})

	got := collect(t, dir, ignore.New(dir), WithRecursive(false))

	assert.Equal(t, []string{"a.txt"}, got)
}

func TestWalkPrunesGitMetadata(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		".git/HEAD":    "ref: refs/heads/main",
		".git/objects": "o",
		"a.txt":        "a",
	})

	got := collect(t, dir, ignore.New(dir))

	assert.Equal(t, []string{"a.txt"}, got)
}

func TestWalkPruningCoversWholeSubtree(t *testing.T) {
	// Once a directory is excluded nothing beneath it may surface, even
	// entries that no rule would match on their own.
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"sub/keep.go":      "k",
		"sub/deep/more.go": "m",
		"a.go":             "a",
	})

	matcher := ignore.New(dir, ignore.WithConfigGlobs([]string{"sub"}))
	got := collect(t, dir, matcher)

	assert.Equal(t, []string{"a.go"}, got)
}

func TestWalkGitignorePruning(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		".gitignore":     "build/\n*.log\n",
		"build/out.bin":  "b",
		"build/nested/x": "x",
		"debug.log":      "d",
		"main.go":        "m",
	})

	got := collect(t, dir, ignore.New(dir))

	assert.Equal(t, []string{".gitignore", "main.go"}, got)
}

func TestWalkWithBase(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"src/main.rs": "fn main() {}",
		"src/lib.rs":  "pub fn lib() {}",
	})

	got := collect(t, filepath.Join(dir, "src"), ignore.New(dir), WithBase(dir))

	assert.Equal(t, []string{"src/lib.rs", "src/main.rs"}, got)
}

func TestWalkStableOrder(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"b.txt":     "b",
		"a.txt":     "a",
		"sub/z.txt": "z",
	})

	first := collect(t, dir, ignore.New(dir))
	second := collect(t, dir, ignore.New(dir))

	assert.Equal(t, first, second)
}

func TestWalkExcludedRootYieldsNothing(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"sub/a.txt": "a",
	})

	matcher := ignore.New(dir, ignore.WithConfigGlobs([]string{"sub"}))
	got := collect(t, filepath.Join(dir, "sub"), matcher, WithBase(dir))

	assert.Empty(t, got)
}
