package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fontcheck/fontcheck/internal/adapters/outbound/config"
	"github.com/fontcheck/fontcheck/internal/adapters/outbound/fontaine"
	"github.com/fontcheck/fontcheck/internal/adapters/outbound/fontdump"
	"github.com/fontcheck/fontcheck/internal/adapters/outbound/gitinfo"
	"github.com/fontcheck/fontcheck/internal/adapters/outbound/gwf"
	"github.com/fontcheck/fontcheck/internal/adapters/outbound/history"
	"github.com/fontcheck/fontcheck/internal/adapters/outbound/metastore"
	"github.com/fontcheck/fontcheck/internal/application"
	"github.com/fontcheck/fontcheck/internal/domain/checks"
)

// registerTools registers all fontcheck MCP tools on the given server.
func registerTools(s *server.MCPServer, familyDir string) {
	// 1. fontcheck_run
	s.AddTool(
		mcplib.NewTool("fontcheck_run",
			mcplib.WithDescription("Run the full conformance check catalog against the family folder and return the report as JSON"),
			mcplib.WithString("before", mcplib.Description("Previous release folder for the regression checks")),
			mcplib.WithBoolean("autofix", mcplib.Description("Repair autofixable findings in place")),
		),
		handleRun(familyDir),
	)

	// 2. fontcheck_list_checks
	s.AddTool(
		mcplib.NewTool("fontcheck_list_checks",
			mcplib.WithDescription("List the glyph-coverage check catalog entries with their IDs and glyph sets"),
		),
		handleListChecks(),
	)

	// 3. fontcheck_history
	s.AddTool(
		mcplib.NewTool("fontcheck_history",
			mcplib.WithDescription("Return past run summaries for the family folder"),
		),
		handleHistory(familyDir),
	)
}

// newService creates the standard set of outbound adapters and the driver.
func newService() *application.CheckService {
	return application.NewCheckService(
		fontdump.New(),
		metastore.New(),
		fontaine.New(),
		gwf.New(),
		gitinfo.New(),
		history.New(),
	)
}

func handleRun(familyDir string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := config.New().Load(familyDir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		args := request.GetArguments()
		beforeDir, _ := args["before"].(string)
		if autofix, ok := args["autofix"].(bool); ok && autofix {
			cfg.Autofix = true
		}

		report, err := newService().CheckFamily(ctx, familyDir, beforeDir, cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("check failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleListChecks() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(checks.GlyphSetChecks)
	}
}

func handleHistory(familyDir string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		entries, err := history.New().Load(familyDir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading history: %v", err)), nil
		}
		return jsonResult(entries)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
