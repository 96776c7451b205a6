package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fontcheck/fontcheck/internal/adapters/outbound/metastore"
)

// registerResources registers all fontcheck MCP resources on the given server.
func registerResources(s *server.MCPServer, familyDir string) {
	// fontcheck://metadata - the family metadata record
	s.AddResource(
		mcplib.NewResource(
			"fontcheck://metadata",
			"Family Metadata",
			mcplib.WithResourceDescription("The METADATA.json family record of the folder being checked"),
			mcplib.WithMIMEType("application/json"),
		),
		handleMetadataResource(familyDir),
	)
}

func handleMetadataResource(familyDir string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		fam, err := metastore.New().Load(familyDir)
		if err != nil {
			return nil, fmt.Errorf("loading metadata: %w", err)
		}

		data, err := json.MarshalIndent(fam, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling metadata: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "fontcheck://metadata",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
