package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "words7000",
	Short: "LINE vocabulary quiz bot",
	// running without a subcommand starts the server
	RunE: serveCmd.RunE,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, catalogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
