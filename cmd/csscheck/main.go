// Package main provides the csscheck CLI, a CI-side scanner for stylesheet
// import hygiene and embedded CSS in web UI sources.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// Local overrides may live in a .env file; absence is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		if err != errViolationsFound {
			color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
