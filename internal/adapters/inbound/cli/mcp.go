package cli

import (
	mcpadapter "github.com/fontcheck/fontcheck/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the fontcheck MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var familyDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start fontcheck MCP server (stdio)",
		Long:  "Start the fontcheck MCP server using stdio transport. This allows AI coding assistants to run the check catalog and inspect family metadata.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if familyDir == "" {
				familyDir = "."
			}
			s := mcpadapter.NewFontcheckMCPServer(familyDir)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&familyDir, "path", "", "Family folder (defaults to current working directory)")

	return cmd
}
