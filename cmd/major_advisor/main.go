// Package main provides the entry point for the major advisor service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "major_advisor",
	Short: "Skill-to-major recommendation service",
	Long:  "major_advisor matches free-text skills to the canonical skill vocabulary, predicts probable occupations and aggregates them into ranked academic-major recommendations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
