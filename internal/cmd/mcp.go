package cmd

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/capwrap/capwrap/internal/mcp/tools"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMcpCommand() *cobra.Command {
	mcpCmd := &cobra.Command{
		Use:   "mcp",
		Short: "Manage the Model Context Protocol (MCP) server",
	}

	mcpCmd.AddCommand(newMcpStartCommand())

	return mcpCmd
}

func newMcpStartCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the MCP server",
		Long: heredoc.Doc(`
			Starts an MCP server on stdio exposing the detection and generation
			tools: detect_project, generate_migration_spec and
			generate_capacitor_config. All tools are read-only and idempotent.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMcpServer()
		},
	}
}

func runMcpServer() error {
	s := server.NewMCPServer(
		"capwrap", version,
		server.WithToolCapabilities(true),
	)

	s.AddTools(
		tools.NewDetectProjectTool(),
		tools.NewGenerateSpecTool(),
		tools.NewGenerateConfigTool(),
	)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "MCP server error: %v\n", err)
		return err
	}

	return nil
}
