package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/csscheck"
)

// sampleResult returns a result exercising every section of a report.
func sampleResult() *csscheck.Result {
	return &csscheck.Result{
		ImportViolations: []csscheck.ImportViolation{
			{File: "src/a.tsx", Ref: "./missing.css", Reason: csscheck.ReasonFileNotFound},
			{File: "src/b.tsx", Ref: "./theme.css", Reason: csscheck.ReasonDisallowedPattern},
		},
		EmbeddedViolations: []csscheck.EmbeddedViolation{
			{File: "src/c.tsx", Tokens: []string{"fff", "1A2b3C"}},
		},
		CompliantImports: []csscheck.CompliantImport{
			{File: "src/d.tsx", Ref: "./styles/app.module.css"},
		},
		Stats: csscheck.ScanStats{FilesScanned: 4, FilesSkipped: 1},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: FormatText},
		{name: "text", input: "text", want: FormatText},
		{name: "json", input: "json", want: FormatJSON},
		{name: "markdown", input: "markdown", want: FormatMarkdown},
		{name: "md alias", input: "md", want: FormatMarkdown},
		{name: "unknown", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown output format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteHandlesEveryFormat(t *testing.T) {
	for _, format := range []Format{FormatText, FormatJSON, FormatMarkdown} {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, &csscheck.Result{}, format, Options{}))
	}
}
