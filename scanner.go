package csscheck

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

var (
	// importPattern captures the quoted path of a stylesheet import.
	// One match per textual occurrence; paths may be single or double quoted.
	importPattern = regexp.MustCompile(`import\s+.*?["'](.+?\.css)["']`)

	// colorPattern matches inline hex color literals. The six-digit
	// alternative comes first so full-length colors are captured whole.
	colorPattern = regexp.MustCompile(`#([0-9a-fA-F]{6}|[0-9a-fA-F]{3})`)
)

// testDirMarker excludes anything living under a test directory. Matched as
// a substring of the directory path, so "contest" counts too.
const testDirMarker = "test"

// Scanner walks a source tree and collects style-hygiene findings.
// Construct with New; a Scanner may run any number of scans.
type Scanner struct {
	cfg          Config
	diag         io.Writer
	root         string // absolute scan root, second resolution candidate
	suffixes     []string
	excludeFiles map[string]struct{}
	excludeDirs  []string
	ignorer      *ignore.GitIgnore
}

// New validates cfg, normalizes its path lists, and prepares a Scanner.
func New(cfg Config) (*Scanner, error) {
	if cfg.Directory == "" {
		return nil, fmt.Errorf("scan directory is required")
	}

	root, err := filepath.Abs(cfg.Directory)
	if err != nil {
		return nil, fmt.Errorf("resolving scan root: %w", err)
	}

	for _, pattern := range cfg.ExcludeGlobs {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude glob %q", pattern)
		}
	}

	s := &Scanner{
		cfg:          cfg,
		diag:         cfg.Diagnostics,
		root:         root,
		suffixes:     cfg.SourceSuffixes,
		excludeFiles: make(map[string]struct{}, len(cfg.ExcludeFiles)),
		excludeDirs:  make([]string, 0, len(cfg.ExcludeDirs)),
	}
	if s.diag == nil {
		s.diag = os.Stderr
	}
	if len(s.suffixes) == 0 {
		s.suffixes = DefaultSourceSuffixes
	}

	for _, f := range cfg.ExcludeFiles {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("normalizing excluded file %q: %w", f, err)
		}
		s.excludeFiles[abs] = struct{}{}
	}
	for _, d := range cfg.ExcludeDirs {
		abs, err := filepath.Abs(d)
		if err != nil {
			return nil, fmt.Errorf("normalizing excluded directory %q: %w", d, err)
		}
		s.excludeDirs = append(s.excludeDirs, abs)
	}

	if cfg.UseGitignore {
		// Missing or unreadable .gitignore just disables the layer.
		if gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore")); err == nil {
			s.ignorer = gi
		}
	}

	return s, nil
}

// Scan walks the configured tree and returns everything it found. Per-file
// read failures go to the diagnostics writer and the file is skipped; an
// unreadable scan root aborts the scan with an error.
func (s *Scanner) Scan() (*Result, error) {
	info, err := os.Stat(s.cfg.Directory)
	if err != nil {
		return nil, fmt.Errorf("scan root %s: %w", s.cfg.Directory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root %s is not a directory", s.cfg.Directory)
	}

	result := &Result{}
	err = filepath.WalkDir(s.cfg.Directory, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == s.cfg.Directory {
				return err
			}
			fmt.Fprintf(s.diag, "Error reading directory %s: %v\n", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if s.skipDir(path) {
				return fs.SkipDir
			}
			return nil
		}

		s.checkFile(path, result)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", s.cfg.Directory, err)
	}

	return result, nil
}

// skipDir decides whether a whole subtree is excluded from the scan.
func (s *Scanner) skipDir(path string) bool {
	if strings.Contains(path, testDirMarker) {
		return true
	}

	abs := absPath(path)
	for _, prefix := range s.excludeDirs {
		if pathHasPrefix(abs, prefix) {
			return true
		}
	}

	if s.matchesExcludeGlob(path) {
		return true
	}
	if s.matchesGitignore(path) {
		return true
	}

	return false
}

// checkFile analyzes one walked file and appends its findings to result.
func (s *Scanner) checkFile(path string, result *Result) {
	if !s.isCandidate(path) {
		return
	}

	if s.skipFile(path) {
		result.Stats.FilesSkipped++
		return
	}

	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(s.diag, "Error reading file %s: %v\n", path, err)
		return
	}
	if !utf8.Valid(content) {
		fmt.Fprintf(s.diag, "Error reading file %s: invalid UTF-8\n", path)
		return
	}
	result.Stats.FilesScanned++

	text := string(content)
	dir := filepath.Dir(path)
	for _, ref := range extractImports(text) {
		s.classifyImport(path, dir, ref, result)
	}
	if tokens := extractColorTokens(text); len(tokens) > 0 {
		result.EmbeddedViolations = append(result.EmbeddedViolations, EmbeddedViolation{
			File:   path,
			Tokens: tokens,
		})
	}
}

// isCandidate reports whether the file name carries an analyzed suffix.
func (s *Scanner) isCandidate(path string) bool {
	for _, suffix := range s.suffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

// skipFile applies the per-file exclusion layers to a candidate.
func (s *Scanner) skipFile(path string) bool {
	if _, ok := s.excludeFiles[absPath(path)]; ok {
		return true
	}
	if s.matchesExcludeGlob(path) {
		return true
	}
	return s.matchesGitignore(path)
}

// classifyImport resolves ref against the file's directory, then against the
// scan root, and files the outcome. Existence always wins over the pattern
// check, so a missing file is never reported as a pattern violation.
func (s *Scanner) classifyImport(file, dir, ref string, result *Result) {
	candidate := filepath.Join(dir, ref)
	if !pathExists(candidate) {
		candidate = filepath.Join(s.root, ref)
	}

	switch {
	case !pathExists(candidate):
		result.ImportViolations = append(result.ImportViolations, ImportViolation{
			File:   file,
			Ref:    ref,
			Reason: ReasonFileNotFound,
		})
	case s.isAllowed(ref):
		result.CompliantImports = append(result.CompliantImports, CompliantImport{
			File: file,
			Ref:  ref,
		})
	default:
		result.ImportViolations = append(result.ImportViolations, ImportViolation{
			File:   file,
			Ref:    ref,
			Reason: ReasonDisallowedPattern,
		})
	}
}

// isAllowed matches the reference as written against the suffix allow-list.
func (s *Scanner) isAllowed(ref string) bool {
	for _, pattern := range s.cfg.AllowedPatterns {
		if strings.HasSuffix(ref, pattern) {
			return true
		}
	}
	return false
}

// matchesExcludeGlob matches the path, relative to the scan root and
// slash-separated, against the configured doublestar patterns.
func (s *Scanner) matchesExcludeGlob(path string) bool {
	if len(s.cfg.ExcludeGlobs) == 0 {
		return false
	}
	rel, err := filepath.Rel(s.cfg.Directory, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range s.cfg.ExcludeGlobs {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// matchesGitignore checks the root-relative path against the compiled
// .gitignore, when the layer is enabled.
func (s *Scanner) matchesGitignore(path string) bool {
	if s.ignorer == nil {
		return false
	}
	rel, err := filepath.Rel(s.cfg.Directory, path)
	if err != nil || rel == "." {
		return false
	}
	return s.ignorer.MatchesPath(rel)
}

// extractImports returns every stylesheet reference in content, one entry
// per textual import occurrence. Duplicates are preserved.
func extractImports(content string) []string {
	matches := importPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, m[1])
	}
	return refs
}

// extractColorTokens returns the digits of every hex color literal in
// content, in order of appearance and without the leading #. Matches are
// non-overlapping and leftmost; case is preserved.
func extractColorTokens(content string) []string {
	matches := colorPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, m[1])
	}
	return tokens
}

// pathHasPrefix reports whether path equals prefix or lives inside it.
// Comparison is segment aware: /foo/bar covers /foo/bar/baz but never
// /foo/barbaz.
func pathHasPrefix(path, prefix string) bool {
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, prefix+string(filepath.Separator))
}

// absPath normalizes a path, falling back to the input when the working
// directory is unavailable.
func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// pathExists reports whether a stat on the path succeeds.
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
