package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(src, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "logic.ts"),
		[]byte("export const n = 1;\n"), 0644))

	t.Run("clean tree passes", func(t *testing.T) {
		resetKoanf()
		rootCmd.SetArgs([]string{"--directory", dir, "--quiet"})
		require.NoError(t, rootCmd.Execute())
	})

	t.Run("violations fail the run", func(t *testing.T) {
		resetKoanf()
		require.NoError(t, os.WriteFile(filepath.Join(src, "styled.ts"),
			[]byte("const c = \"#fff\";\n"), 0644))

		rootCmd.SetArgs([]string{"--directory", dir, "--quiet"})
		require.ErrorIs(t, rootCmd.Execute(), errViolationsFound)
	})

	t.Run("unknown format is rejected", func(t *testing.T) {
		resetKoanf()
		rootCmd.SetArgs([]string{"--directory", dir, "--quiet", "--format", "bogus"})
		err := rootCmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown output format")
	})
}
