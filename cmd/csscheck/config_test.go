package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".csscheck.yaml")
	configContent := `
directory: web/ui/src
show_success: true
format: json

exclude_directories:
  - web/ui/src/generated
exclude_globs:
  - "**/*.stories.tsx"
allowed_css_patterns:
  - app.module.css
  - theme.module.css
source_suffixes:
  - .ts
  - .tsx
  - .jsx
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigSources(configPath, true))

	assert.Equal(t, "web/ui/src", k.String("directory"))
	assert.True(t, k.Bool("show_success"))
	assert.Equal(t, "json", k.String("format"))
	assert.Equal(t, []string{"web/ui/src/generated"}, k.Strings("exclude_directories"))
	assert.Equal(t, []string{"**/*.stories.tsx"}, k.Strings("exclude_globs"))
	assert.Equal(t, []string{"app.module.css", "theme.module.css"}, k.Strings("allowed_css_patterns"))
	assert.Equal(t, []string{".ts", ".tsx", ".jsx"}, k.Strings("source_suffixes"))
}

func TestConfigFileNotFound_NotExplicit(t *testing.T) {
	resetKoanf()

	// A discovered path that vanished is not an error.
	require.NoError(t, loadConfigSources("/nonexistent/.csscheck.yaml", false))
	assert.Equal(t, "", k.String("directory"))
}

func TestConfigFileNotFound_Explicit(t *testing.T) {
	resetKoanf()

	// A path the user asked for must exist.
	err := loadConfigSources("/nonexistent/.csscheck.yaml", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/nonexistent/.csscheck.yaml")
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".csscheck.yaml")
	configContent := `
directory: from-file
format: json
show_success: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	t.Setenv("CSSCHECK_DIRECTORY", "from-env")
	t.Setenv("CSSCHECK_FORMAT", "markdown")
	t.Setenv("CSSCHECK_SHOW_SUCCESS", "true")

	require.NoError(t, loadConfigSources(configPath, true))

	assert.Equal(t, "from-env", k.String("directory"))
	assert.Equal(t, "markdown", k.String("format"))
	assert.True(t, k.Bool("show_success"))
}

func TestBuildConfig_RequiresDirectory(t *testing.T) {
	resetKoanf()

	_, _, err := buildConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--directory is required")
}

func TestBuildConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".csscheck.yaml")
	configContent := `
directory: web/ui/src
show_success: true
gitignore: true

exclude_files:
  - web/ui/src/vendor.ts
exclude_directories:
  - web/ui/src/generated
exclude_globs:
  - "**/fixtures"
allowed_css_patterns:
  - theme.module.css
source_suffixes:
  - .tsx
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigSources(configPath, true))

	cfg, opts, err := buildConfig()
	require.NoError(t, err)

	assert.Equal(t, "web/ui/src", cfg.Directory)
	assert.Equal(t, []string{"web/ui/src/vendor.ts"}, cfg.ExcludeFiles)
	assert.Equal(t, []string{"web/ui/src/generated"}, cfg.ExcludeDirs)
	assert.Equal(t, []string{"**/fixtures"}, cfg.ExcludeGlobs)
	assert.Equal(t, []string{"theme.module.css"}, cfg.AllowedPatterns)
	assert.Equal(t, []string{".tsx"}, cfg.SourceSuffixes)
	assert.True(t, cfg.UseGitignore)

	assert.True(t, opts.ShowSuccess)
	assert.Equal(t, "web/ui/src", opts.Directory)
}

func TestFindConfigFile_CurrentDir(t *testing.T) {
	dir := t.TempDir()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	require.NoError(t, os.WriteFile(defaultConfigName, []byte("directory: src\n"), 0644))
	assert.Equal(t, defaultConfigName, findConfigFile())
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(defaultConfigName)
	require.NoError(t, err)
	assert.Contains(t, string(data), "allowed_css_patterns")
	assert.Contains(t, string(data), "app.module.css")
	assert.Contains(t, string(data), "source_suffixes")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	require.NoError(t, os.WriteFile(defaultConfigName, []byte("# existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	err = cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	require.NoError(t, os.WriteFile(defaultConfigName, []byte("# existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(defaultConfigName)
	require.NoError(t, err)
	assert.Contains(t, string(data), "allowed_css_patterns")
}

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
}
