package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewFontcheckMCPServer creates a new MCP server with all fontcheck tools
// and resources registered. familyDir is the font family folder to check.
func NewFontcheckMCPServer(familyDir string) *server.MCPServer {
	s := server.NewMCPServer(
		"fontcheck",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, familyDir)
	registerResources(s, familyDir)

	return s
}
