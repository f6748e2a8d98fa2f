// Package config holds the parsed invocation options and the optional
// project-local configuration file.
package config

// Version is the released tool version.
const Version = "1.0.0"

// Options is the parsed command-line invocation. The selection pipeline
// consumes this record and never touches argv itself.
type Options struct {
	// Selection settings
	Recursive   bool
	NoGitignore bool // -i: skip .gitignore rules (the .git metadata rule stays on)
	Patterns    []string
	URL         string
	WorkingDir  string

	// Output settings
	FilesOnly  bool
	SortBySize bool
	UseColors  bool
	NoColor    bool

	// Logging settings
	Verbose bool
	Quiet   bool

	// Version info
	ShowVersion bool
}

// Valid reports whether the invocation can run at all. An invocation
// needs at least one pattern, a remote URL, or the version flag.
func (o *Options) Valid() bool {
	return o.ShowVersion || len(o.Patterns) > 0 || o.URL != ""
}

// ApplyDefaults fills derived option values. A remote URL with no
// patterns selects everything.
func (o *Options) ApplyDefaults() {
	if len(o.Patterns) == 0 && o.URL != "" {
		o.Patterns = []string{"*"}
	}
	if o.WorkingDir == "" {
		o.WorkingDir = "."
	}
}
