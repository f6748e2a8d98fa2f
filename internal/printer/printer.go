// Package printer handles output formatting and display
package printer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// separator closes each file's contents in streaming mode.
const separator = "====================="

// Printer writes the resolved files to the configured output in one of
// two modes: streaming (header plus contents per file, emitted as files
// arrive) or size-sorted (buffer everything, sort by size descending,
// print size-annotated headers only).
type Printer struct {
	output     io.Writer
	useColors  bool
	filesOnly  bool
	workingDir string
	count      int

	sized []sizedFile
}

type sizedFile struct {
	display string
	path    string
	size    int64
}

// New creates a new Printer with default settings
func New() *Printer {
	return &Printer{
		output:    os.Stdout,
		useColors: true,
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithColors enables or disables colored headers
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	return p
}

// WithFilesOnly suppresses file contents in streaming mode
func (p *Printer) WithFilesOnly(enabled bool) *Printer {
	p.filesOnly = enabled
	return p
}

// WithWorkingDir sets the directory that size-sorted headers are
// relativized against
func (p *Printer) WithWorkingDir(dir string) *Printer {
	p.workingDir = dir
	return p
}

// PrintFile emits the streaming-mode record for one file: a header
// line, then (unless files-only) the contents and the separator. A file
// that cannot be read gets a diagnostic line in place of contents; the
// run continues.
func (p *Printer) PrintFile(display, path string) {
	p.count++
	p.printHeader(fmt.Sprintf("# File: %s", display))

	if p.filesOnly {
		return
	}

	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(p.output, "Error reading file: %s\n", display)
		return
	}

	fmt.Fprintf(p.output, "%s\n", content)
	fmt.Fprintf(p.output, "\n%s\n\n", separator)
}

// AddSized buffers one candidate for size-sorted output. A candidate
// that cannot be stat'ed is dropped silently.
func (p *Printer) AddSized(display, path string) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return
	}
	p.sized = append(p.sized, sizedFile{display: display, path: path, size: info.Size()})
}

// FlushSized prints the buffered candidates largest first. The sort is
// stable, so files of equal size keep their resolution order. Contents
// are never printed in this mode.
func (p *Printer) FlushSized() {
	sort.SliceStable(p.sized, func(i, j int) bool {
		return p.sized[i].size > p.sized[j].size
	})

	for _, f := range p.sized {
		p.count++
		p.printHeader(fmt.Sprintf("# File: %s (%d bytes)", p.sizedDisplay(f), f.size))
	}
}

// sizedDisplay renders a path relative to the working directory, or
// falls back to the path as resolved when it lives outside it.
func (p *Printer) sizedDisplay(f sizedFile) string {
	if p.workingDir != "" {
		rel, err := filepath.Rel(p.workingDir, f.path)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, "../") {
			return "./" + filepath.ToSlash(rel)
		}
	}
	return f.display
}

func (p *Printer) printHeader(line string) {
	if p.useColors {
		fmt.Fprintln(p.output, color.CyanString(line))
	} else {
		fmt.Fprintln(p.output, line)
	}
}

// Count returns the number of files printed
func (p *Printer) Count() int {
	return p.count
}
