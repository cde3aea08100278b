// Package csscheck scans web UI source trees for CSS style-hygiene violations.
//
// Two categories of findings are reported: stylesheet imports that are
// missing or that break an allow-listed naming convention, and hex color
// literals embedded directly in source files instead of living in a
// stylesheet. The scan is read-only and collects findings as plain data;
// rendering and exit-code selection belong to the caller.
//
// # Scanning
//
// Build a Scanner from a Config and run it:
//
//	scanner, err := csscheck.New(csscheck.Config{
//		Directory:       "web/src",
//		AllowedPatterns: csscheck.DefaultAllowedPatterns,
//	})
//	if err != nil {
//		return err
//	}
//	result, err := scanner.Scan()
//	if err != nil {
//		return err
//	}
//	os.Exit(result.ExitCode())
//
// Findings are never errors: a scan over a tree full of violations returns
// a nil error and a populated Result. Only an unusable scan root or an
// invalid Config fail the operation itself.
//
// # CLI Tool
//
// csscheck also ships a CLI intended for CI pipelines. Install with:
//
//	go install github.com/yacobolo/csscheck/cmd/csscheck@latest
package csscheck
