package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/yacobolo/csscheck"
)

// remediationMessage follows any violation section. Existing CI jobs grep
// this text; reword only together with the pipelines that consume it.
const remediationMessage = `Please address the above CSS violations:
1. For invalid CSS imports, ensure you're using the correct import syntax and file paths.
2. For embedded CSS, move the CSS to appropriate stylesheet files and import them correctly.
3. Make sure to use only the allowed CSS patterns as specified in the script arguments.
4. Check that all imported CSS files exist in the specified locations.`

// writeText renders the classic violation report. With colors disabled the
// output is byte-identical to the legacy check, sections appearing only when
// non-empty and compliant imports only on request.
func writeText(w io.Writer, result *csscheck.Result, opts Options) error {
	var sections []string

	if len(result.ImportViolations) > 0 {
		var b strings.Builder
		b.WriteString(RenderStyle(StyleViolation, "CSS Import Violations:", opts.Color))
		for _, v := range result.ImportViolations {
			fmt.Fprintf(&b, "\n- %s: %s (%s)", v.File, v.Ref, v.Reason)
		}
		sections = append(sections, b.String())
	}

	if len(result.EmbeddedViolations) > 0 {
		var b strings.Builder
		b.WriteString(RenderStyle(StyleViolation, "Embedded CSS Violations:", opts.Color))
		for _, v := range result.EmbeddedViolations {
			fmt.Fprintf(&b, "\n- %s: %s", v.File, strings.Join(v.Tokens, ", "))
		}
		sections = append(sections, b.String())
	}

	if len(sections) > 0 {
		if _, err := fmt.Fprintln(w, strings.Join(sections, "\n\n")); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "\n%s\n\n", RenderStyle(StyleNotice, remediationMessage, opts.Color)); err != nil {
			return err
		}
	}

	if opts.ShowSuccess && len(result.CompliantImports) > 0 {
		if _, err := fmt.Fprintf(w, "\n%s\n", RenderStyle(StyleSuccess, "Correct CSS Imports:", opts.Color)); err != nil {
			return err
		}
		for _, c := range result.CompliantImports {
			if _, err := fmt.Fprintf(w, "- %s: %s\n", c.File, c.Ref); err != nil {
				return err
			}
		}
	}

	return nil
}
