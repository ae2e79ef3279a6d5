package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eddiman/mariposa/internal/mariposa"
	"github.com/eddiman/mariposa/internal/mcptools"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP tool server (stdio transport)",
	Long: "Exposes the notes service as MCP tools on stdin/stdout. Add it to an " +
		"assistant's MCP config with command \"mariposa-assist\" and args [\"mcp\"].",
	RunE: runMCP,
}

func runMCP(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := mariposa.NewClient(cfg.Mariposa.URL)

	// Diagnostics go to stderr so stdout stays clean for the transport.
	fmt.Fprintf(os.Stderr, "mariposa-assist mcp: serving tools for %s\n", cfg.Mariposa.URL)
	return mcptools.ServeStdio(client)
}
