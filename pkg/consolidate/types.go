package consolidate

import (
	"fmt"
	"time"
)

// Arguments holds the raw command-line values before resolution.
type Arguments struct {
	Directory   string   // Root of the tree to scan
	Output      string   // Output path as given with -o
	LineNumbers bool     // Number every line of every file
	Extensions  string   // Comma-separated extension filter
	Exclude     []string // Exclude patterns from repeated -x flags
	IgnoreFile  string   // File of exclude patterns
	Tree        string   // Optional tree listing output path
	Verbose     bool     // Debug logging
}

// Config is the resolved, read-only configuration for one run.
type Config struct {
	SourceDirectory    string
	OutputPath         string
	IncludeLineNumbers bool
	Extensions         ExtensionSet
	ExcludePatterns    []string
	IgnoreFile         string
	TreePath           string
}

// FileEntry is one collected source file.
type FileEntry struct {
	Path    string // Path on disk, joined from the source directory as given
	RelPath string // Slash-separated path relative to the source directory
}

// Outcome classifies how reading a source file went.
type Outcome int

const (
	OutcomeContent Outcome = iota
	OutcomeUndecodable
	OutcomeReadError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContent:
		return "content"
	case OutcomeUndecodable:
		return "undecodable"
	case OutcomeReadError:
		return "read-error"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// FileResult is the outcome of reading one entry.
type FileResult struct {
	Entry   FileEntry
	Outcome Outcome
	Content []byte // Set for OutcomeContent
	Err     error  // Set for OutcomeReadError
}

// Summary reports what a run produced.
type Summary struct {
	Files       int // Every entry written, including placeholders
	Undecodable int
	ReadErrors  int
	OutputPath  string
	Elapsed     time.Duration
}

// String is the operator-facing summary line.
func (s Summary) String() string {
	return fmt.Sprintf("Consolidated %d files into '%s'", s.Files, s.OutputPath)
}
