package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/yacobolo/csscheck"
)

// writeMarkdown renders a shareable report, suitable for pasting into a PR
// or tracking issue.
func writeMarkdown(w io.Writer, result *csscheck.Result, opts Options) error {
	md := markdown.NewMarkdown(w)

	md.H1("CSS Check Report")
	md.PlainText("")
	writeMarkdownSummary(md, result, opts)

	if len(result.ImportViolations) > 0 {
		md.H2("CSS Import Violations")
		items := make([]string, len(result.ImportViolations))
		for i, v := range result.ImportViolations {
			items[i] = fmt.Sprintf("`%s`: `%s` (%s)", v.File, v.Ref, v.Reason)
		}
		md.BulletList(items...)
		md.PlainText("")
	}

	if len(result.EmbeddedViolations) > 0 {
		md.H2("Embedded CSS Violations")
		items := make([]string, len(result.EmbeddedViolations))
		for i, v := range result.EmbeddedViolations {
			items[i] = fmt.Sprintf("`%s`: %s", v.File, strings.Join(v.Tokens, ", "))
		}
		md.BulletList(items...)
		md.PlainText("")
	}

	if result.HasViolations() {
		md.H2("Remediation")
		md.BulletList(
			"For invalid CSS imports, ensure you're using the correct import syntax and file paths.",
			"For embedded CSS, move the CSS to appropriate stylesheet files and import them correctly.",
			"Make sure to use only the allowed CSS patterns as specified in the script arguments.",
			"Check that all imported CSS files exist in the specified locations.",
		)
		md.PlainText("")
	}

	if opts.ShowSuccess && len(result.CompliantImports) > 0 {
		md.H2("Correct CSS Imports")
		items := make([]string, len(result.CompliantImports))
		for i, c := range result.CompliantImports {
			items[i] = fmt.Sprintf("`%s`: `%s`", c.File, c.Ref)
		}
		md.BulletList(items...)
		md.PlainText("")
	}

	return md.Build()
}

// writeMarkdownSummary writes the scan overview table and the verdict alert.
func writeMarkdownSummary(md *markdown.Markdown, result *csscheck.Result, opts Options) {
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Count"},
		Rows: [][]string{
			{"Directory", "`" + opts.Directory + "`"},
			{"Files scanned", strconv.Itoa(result.Stats.FilesScanned)},
			{"Files skipped", strconv.Itoa(result.Stats.FilesSkipped)},
			{"Import violations", strconv.Itoa(len(result.ImportViolations))},
			{"Embedded violations", strconv.Itoa(len(result.EmbeddedViolations))},
			{"Compliant imports", strconv.Itoa(len(result.CompliantImports))},
		},
	})
	md.PlainText("")

	if result.HasViolations() {
		md.Cautionf("%d CSS violation(s) found. The build should fail.",
			len(result.ImportViolations)+len(result.EmbeddedViolations))
	} else {
		md.Tip("No CSS violations detected.")
	}
	md.PlainText("")
}
