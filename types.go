package csscheck

import "io"

// Defaults applied by the CLI when the corresponding options are not given.
var (
	// DefaultAllowedPatterns accepts the conventional CSS module naming.
	DefaultAllowedPatterns = []string{"app.module.css"}

	// DefaultSourceSuffixes selects plain and JSX TypeScript sources.
	DefaultSourceSuffixes = []string{".ts", ".tsx"}
)

// Config describes one scan. It is read once by New and never mutated.
type Config struct {
	// Directory is the root of the tree to scan. Required.
	Directory string

	// ExcludeFiles lists individual files to skip. Entries are normalized
	// to absolute paths and matched exactly.
	ExcludeFiles []string

	// ExcludeDirs lists directories whose whole subtree is skipped.
	// Entries are normalized to absolute paths and matched per path
	// segment, so excluding /foo/bar does not exclude /foo/barbaz.
	ExcludeDirs []string

	// ExcludeGlobs lists doublestar patterns matched against the
	// slash-separated path relative to Directory. Matching directories
	// are skipped as subtrees, matching files individually.
	ExcludeGlobs []string

	// AllowedPatterns is the suffix allow-list a referenced stylesheet
	// must satisfy to count as compliant. An empty list rejects every
	// resolvable import; callers wanting the stock behavior pass
	// DefaultAllowedPatterns.
	AllowedPatterns []string

	// SourceSuffixes selects which files are analyzed. Empty means
	// DefaultSourceSuffixes.
	SourceSuffixes []string

	// UseGitignore additionally skips paths matched by the scan root's
	// .gitignore, when that file exists.
	UseGitignore bool

	// Diagnostics receives read-failure notices during the scan.
	// Defaults to os.Stderr.
	Diagnostics io.Writer
}

// Reason classifies why a stylesheet import was rejected.
type Reason int

const (
	// ReasonFileNotFound means neither resolution candidate exists on disk.
	ReasonFileNotFound Reason = iota
	// ReasonDisallowedPattern means the file exists but its reference
	// matches no allowed suffix.
	ReasonDisallowedPattern
)

// String returns the report wording for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonFileNotFound:
		return "File not found"
	case ReasonDisallowedPattern:
		return "Invalid import"
	}
	return "unknown"
}

// ImportViolation is a stylesheet import that failed classification.
type ImportViolation struct {
	File   string // source file, as walked
	Ref    string // referenced stylesheet path, as written in the import
	Reason Reason
}

// CompliantImport is a stylesheet import that resolved on disk and matched
// the allow-list.
type CompliantImport struct {
	File string
	Ref  string
}

// EmbeddedViolation records every inline color literal found in one file.
// A file appears at most once, carrying all its tokens in order of
// appearance; duplicates are preserved.
type EmbeddedViolation struct {
	File   string
	Tokens []string // hex digits as written, without the leading #
}

// ScanStats counts file selection outcomes within visited directories.
type ScanStats struct {
	FilesScanned int // candidate files read and analyzed
	FilesSkipped int // candidate files rejected by exclusion filters
}

// Result aggregates everything one scan produced.
type Result struct {
	ImportViolations   []ImportViolation
	CompliantImports   []CompliantImport
	EmbeddedViolations []EmbeddedViolation
	Stats              ScanStats
}

// HasViolations reports whether anything build-failing was found.
// Compliant imports never count.
func (r *Result) HasViolations() bool {
	return len(r.ImportViolations) > 0 || len(r.EmbeddedViolations) > 0
}

// ExitCode returns the process status a CI run should end with: 1 when any
// violation was found, 0 otherwise.
func (r *Result) ExitCode() int {
	if r.HasViolations() {
		return 1
	}
	return 0
}
