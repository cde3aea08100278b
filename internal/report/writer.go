package report

import (
	"fmt"
	"io"

	"github.com/yacobolo/csscheck"
)

// Format selects how a scan result is rendered.
type Format int

const (
	// FormatText is the classic report consumed by existing CI jobs.
	FormatText Format = iota
	// FormatJSON is a versioned machine-readable export.
	FormatJSON
	// FormatMarkdown is a shareable report for PRs and issues.
	FormatMarkdown
)

// ParseFormat maps a user-supplied format name to a Format. The empty string
// means text.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return FormatText, fmt.Errorf("unknown output format %q (want text, json or markdown)", name)
}

// Options carries rendering knobs shared by all formats.
type Options struct {
	// ShowSuccess also lists compliant imports.
	ShowSuccess bool
	// Color enables styled text output. Callers decide via DetectColor;
	// machine formats ignore it.
	Color bool
	// Directory is the scan root, echoed into machine-readable reports.
	Directory string
}

// Write renders result to w in the given format.
func Write(w io.Writer, result *csscheck.Result, format Format, opts Options) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result, opts)
	case FormatMarkdown:
		return writeMarkdown(w, result, opts)
	default:
		return writeText(w, result, opts)
	}
}
