package main

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yacobolo/csscheck"
	"github.com/yacobolo/csscheck/internal/report"
)

// errViolationsFound signals a completed scan that should fail the build.
// The report is already written by then; main only maps it to exit status 1
// without printing anything further.
var errViolationsFound = errors.New("violations found")

var rootCmd = &cobra.Command{
	Use:   "csscheck",
	Short: "Scan web UI sources for CSS style-hygiene violations",
	Long: `csscheck walks a source tree and reports stylesheet imports that are
missing or off-convention, plus hex color literals embedded in code
instead of stylesheets. Exit status is 1 when violations are found.`,
	RunE:          runCheck,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.Flags()

	// Legacy flag names; existing pipelines invoke these verbatim.
	flags.String("directory", "", "Root directory to scan (required)")
	flags.StringSlice("exclude_files", nil, "File paths to skip")
	flags.StringSlice("exclude_directories", nil, "Directory subtrees to skip")
	flags.StringSlice("allowed_css_patterns", csscheck.DefaultAllowedPatterns, "Suffixes an imported stylesheet may match")
	flags.Bool("show_success", false, "Also list compliant imports")

	flags.StringSlice("exclude_globs", nil, "Glob patterns to skip, relative to the scan root")
	flags.Bool("gitignore", false, "Also skip paths ignored by the scan root's .gitignore")
	flags.String("format", "text", "Report format: text, json or markdown")
	flags.Bool("quiet", false, "Suppress the report (exit code only)")
	flags.BoolP("verbose", "v", false, "Print scan statistics to stderr")
	flags.Bool("color", false, "Force color output")
	flags.String("config", "", "Config file path (default .csscheck.yaml, then user config dir)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}

	cfg, opts, err := buildConfig()
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(k.String("format"))
	if err != nil {
		return err
	}

	scanner, err := csscheck.New(cfg)
	if err != nil {
		return err
	}

	result, err := scanner.Scan()
	if err != nil {
		return err
	}

	if k.Bool("verbose") {
		color.New(color.FgYellow).Fprintf(os.Stderr, "scanned %d files, skipped %d\n",
			result.Stats.FilesScanned, result.Stats.FilesSkipped)
	}

	if !k.Bool("quiet") {
		if err := report.Write(os.Stdout, result, format, opts); err != nil {
			return err
		}
	}

	if result.HasViolations() {
		return errViolationsFound
	}
	return nil
}
