// Package cli implements the mariposa-assist command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// GlobalFlags holds flags shared across all commands.
type GlobalFlags struct {
	ServiceURL string
	Verbose    bool
}

var globalFlags GlobalFlags

var rootCmd = &cobra.Command{
	Use:   "mariposa-assist",
	Short: "Chat adapters and tools for a Mariposa notes service",
	Long: "mariposa-assist connects chat assistants to a Mariposa notes service: " +
		"an HTTP bridge for the filter and pipe adapters, an MCP tool server, " +
		"an interactive console, and one-shot note commands.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalFlags.ServiceURL, "service-url", "", "Mariposa base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Verbose, "verbose", false, "verbose logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command and returns an error; exit code is set by RunE.
func Execute() error {
	return rootCmd.Execute()
}
