package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/csscheck"
	"github.com/yacobolo/csscheck/internal/report"
)

const envPrefix = "CSSCHECK_"

// defaultConfigName is looked up in the working directory before falling
// back to the user config dir.
const defaultConfigName = ".csscheck.yaml"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	explicit := configPath != ""
	if !explicit {
		configPath = findConfigFile()
	}

	if err := loadConfigSources(configPath, explicit); err != nil {
		return err
	}

	// CLI flags win; unchanged flags contribute their defaults only for
	// keys no other provider has set.
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigSources loads the config file and environment variables. It is
// separated from loadConfig so tests can run it without a cobra command.
func loadConfigSources(configPath string, explicit bool) error {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return fmt.Errorf("loading config file %s: %w", configPath, err)
			}
		} else if explicit {
			return fmt.Errorf("config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		// CSSCHECK_DIRECTORY -> directory, CSSCHECK_SHOW_SUCCESS -> show_success.
		// Keys are flat; underscores are spelling, not nesting.
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// findConfigFile returns the first config file present: working directory
// first, then the user config dir.
func findConfigFile() string {
	if _, err := os.Stat(defaultConfigName); err == nil {
		return defaultConfigName
	}
	userPath := filepath.Join(xdg.ConfigHome, "csscheck", "config.yaml")
	if _, err := os.Stat(userPath); err == nil {
		return userPath
	}
	return ""
}

// buildConfig constructs the scan config and render options from koanf
// state. Flag and config keys are spelled identically, so no per-key
// fallback juggling is needed.
func buildConfig() (csscheck.Config, report.Options, error) {
	directory := k.String("directory")
	if directory == "" {
		return csscheck.Config{}, report.Options{},
			fmt.Errorf("--directory is required (flag, %sDIRECTORY, or config file)", envPrefix)
	}

	cfg := csscheck.Config{
		Directory:       directory,
		ExcludeFiles:    k.Strings("exclude_files"),
		ExcludeDirs:     k.Strings("exclude_directories"),
		ExcludeGlobs:    k.Strings("exclude_globs"),
		AllowedPatterns: k.Strings("allowed_css_patterns"),
		SourceSuffixes:  k.Strings("source_suffixes"),
		UseGitignore:    k.Bool("gitignore"),
	}

	opts := report.Options{
		ShowSuccess: k.Bool("show_success"),
		Color:       report.DetectColor(k.Bool("color")),
		Directory:   directory,
	}

	return cfg, opts, nil
}
