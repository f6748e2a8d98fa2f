// Package pattern compiles the simplified glob syntax accepted on the
// command line and in the .agg-files ignore list into matchers over
// path strings.
//
// The translation is deliberately minimal and must stay compatible with
// the existing pattern format: `*` matches any run of characters,
// including path separators, and a match succeeds when the pattern
// occurs anywhere within the path, not only when it covers the whole
// path. So "foo" matches "foobar.txt" and "*.txt" matches
// "a/b/c.txt.bak".
package pattern

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher reports whether path strings match a compiled glob.
type Matcher struct {
	re *regexp.Regexp
}

// Compile translates a glob into a substring-anchored Matcher.
//
// A leading "./" on the pattern is stripped before translation. Both ""
// and "*" compile to match-everything. Patterns carrying stray regexp
// metacharacters (for example an unclosed "[") fail to compile; callers
// are expected to report the pattern and carry on without it.
func Compile(glob string) (*Matcher, error) {
	cleaned := strings.TrimPrefix(glob, "./")
	cleaned = strings.ReplaceAll(cleaned, ".", `\.`)
	cleaned = strings.ReplaceAll(cleaned, "*", ".*")
	cleaned = strings.ReplaceAll(cleaned, "/", `\/`)

	re, err := regexp.Compile("^.*" + cleaned + ".*$")
	if err != nil {
		return nil, fmt.Errorf("pattern: cannot compile glob %q: %w", glob, err)
	}

	return &Matcher{re: re}, nil
}

// Match reports whether the path matches the compiled glob.
func (m *Matcher) Match(path string) bool {
	return m.re.MatchString(path)
}
