package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/yacobolo/csscheck"
)

// jsonSchemaVersion bumps when the export layout changes shape.
const jsonSchemaVersion = "1.0"

// jsonReport is the machine-readable export schema. Consumers diff these
// between runs, so lists are always present even when empty.
type jsonReport struct {
	Version            string                  `json:"version"`
	GeneratedAt        string                  `json:"generated_at"`
	RunID              string                  `json:"run_id"`
	Directory          string                  `json:"directory"`
	Summary            jsonSummary             `json:"summary"`
	ImportViolations   []jsonImportViolation   `json:"import_violations"`
	EmbeddedViolations []jsonEmbeddedViolation `json:"embedded_violations"`
	CompliantImports   []jsonCompliantImport   `json:"compliant_imports"`
}

// jsonSummary carries the counters CI dashboards chart.
type jsonSummary struct {
	FilesScanned       int `json:"files_scanned"`
	FilesSkipped       int `json:"files_skipped"`
	ImportViolations   int `json:"import_violations"`
	EmbeddedViolations int `json:"embedded_violations"`
	CompliantImports   int `json:"compliant_imports"`
}

type jsonImportViolation struct {
	File   string `json:"file"`
	Ref    string `json:"ref"`
	Reason string `json:"reason"`
}

type jsonEmbeddedViolation struct {
	File   string   `json:"file"`
	Tokens []string `json:"tokens"`
}

type jsonCompliantImport struct {
	File string `json:"file"`
	Ref  string `json:"ref"`
}

// writeJSON exports the full result regardless of Options.ShowSuccess;
// machine consumers filter for themselves.
func writeJSON(w io.Writer, result *csscheck.Result, opts Options) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONReport(result, opts))
}

// buildJSONReport converts a Result into the export schema.
func buildJSONReport(result *csscheck.Result, opts Options) jsonReport {
	importViolations := make([]jsonImportViolation, len(result.ImportViolations))
	for i, v := range result.ImportViolations {
		importViolations[i] = jsonImportViolation{
			File:   v.File,
			Ref:    v.Ref,
			Reason: v.Reason.String(),
		}
	}

	embeddedViolations := make([]jsonEmbeddedViolation, len(result.EmbeddedViolations))
	for i, v := range result.EmbeddedViolations {
		tokens := make([]string, len(v.Tokens))
		copy(tokens, v.Tokens)
		embeddedViolations[i] = jsonEmbeddedViolation{
			File:   v.File,
			Tokens: tokens,
		}
	}

	compliantImports := make([]jsonCompliantImport, len(result.CompliantImports))
	for i, c := range result.CompliantImports {
		compliantImports[i] = jsonCompliantImport{
			File: c.File,
			Ref:  c.Ref,
		}
	}

	return jsonReport{
		Version:     jsonSchemaVersion,
		GeneratedAt: time.Now().Format(time.RFC3339),
		RunID:       uuid.NewString(),
		Directory:   opts.Directory,
		Summary: jsonSummary{
			FilesScanned:       result.Stats.FilesScanned,
			FilesSkipped:       result.Stats.FilesSkipped,
			ImportViolations:   len(result.ImportViolations),
			EmbeddedViolations: len(result.EmbeddedViolations),
			CompliantImports:   len(result.CompliantImports),
		},
		ImportViolations:   importViolations,
		EmbeddedViolations: embeddedViolations,
		CompliantImports:   compliantImports,
	}
}
