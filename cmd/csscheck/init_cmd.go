package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .csscheck.yaml config file",
	Long:  `Create a .csscheck.yaml configuration file in the current directory with the stock defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigName); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigName)
		}

		if err := os.WriteFile(defaultConfigName, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created " + defaultConfigName)
		return nil
	},
}

const defaultConfig = `# csscheck configuration
# Precedence: flags > CSSCHECK_* environment variables > this file.

# Root directory to scan. Usually passed as --directory per invocation;
# uncomment to pin it for this project.
# directory: src

exclude_files: []
exclude_directories: []
exclude_globs: []

allowed_css_patterns:
  - app.module.css

source_suffixes:
  - .ts
  - .tsx

show_success: false
format: text        # text | json | markdown
gitignore: false
quiet: false
verbose: false
color: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
