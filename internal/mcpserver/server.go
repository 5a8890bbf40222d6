// Package mcpserver exposes the dispatch catalog as MCP tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"pptmcp/server/internal/dispatch"
	"pptmcp/server/internal/logging"
)

const ServerName = "pptmcp"

// New registers one tool per catalog operation.
func New(dispatcher *dispatch.Dispatcher, version string, logger *slog.Logger) (*server.MCPServer, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	s := server.NewMCPServer(ServerName, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	for _, op := range dispatcher.Operations() {
		tool, err := toolFor(op)
		if err != nil {
			return nil, err
		}
		s.AddTool(tool, handler(dispatcher, op.Name, logger))
	}
	return s, nil
}

func toolFor(op dispatch.Operation) (mcp.Tool, error) {
	schema, err := op.RawInputSchema()
	if err != nil {
		return mcp.Tool{}, fmt.Errorf("schema for %s: %w", op.Name, err)
	}
	tool := mcp.NewToolWithRawSchema(op.Name, op.Description, schema)
	tool.Annotations = mcp.ToolAnnotation{
		Title:           op.Title,
		ReadOnlyHint:    mcp.ToBoolPtr(op.ReadOnly),
		DestructiveHint: mcp.ToBoolPtr(strings.HasPrefix(op.Name, "delete_")),
		OpenWorldHint:   mcp.ToBoolPtr(false),
	}
	return tool, nil
}

func handler(dispatcher *dispatch.Dispatcher, name string, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		resp, err := dispatcher.Call(ctx, name, req.GetArguments())
		if err != nil {
			return nil, err
		}
		return render(resp, logger)
	}
}

// render turns a dispatch response into a tool result. Soft failures are
// plain text so the caller reads the message the same way as a success.
func render(resp dispatch.Response, logger *slog.Logger) (*mcp.CallToolResult, error) {
	if resp.Soft() {
		return &mcp.CallToolResult{Content: []mcp.Content{mcp.NewTextContent(resp.Message)}}, nil
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		logger.Error("mcp.encode_failed", "error", err.Error())
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return &mcp.CallToolResult{
		Content:           []mcp.Content{mcp.NewTextContent(string(payload))},
		StructuredContent: resp,
	}, nil
}
