// Package main provides the entry point for the site-sync publishing CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "site_sync",
	Short: "Publish local assistant state to the static website",
	Long:  "site_sync regenerates the status, tasks and log pages of the personal website from local state files. Each subcommand is a standalone one-shot transform meant to run from a scheduler.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
