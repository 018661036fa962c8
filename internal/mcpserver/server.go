// Package mcpserver exposes the console operations as MCP tools over a
// stdio transport, so agents can inspect the board without a terminal.
package mcpserver

import (
	"context"
	"log"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

type ToolFunc func(input *ToolInput) (*ToolOutput, error)

type ToolRegistry struct {
	tools map[string]ToolFunc
}

func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]ToolFunc),
	}
}

func (r *ToolRegistry) Register(name string, fn ToolFunc) {
	r.tools[name] = fn
}

func RunServer(registry *ToolRegistry) error {
	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    "picomon",
		Version: "1.0.0",
	}, nil)

	for name, tool := range registry.tools {
		addTool(server, name, tool)
	}

	if err := server.Run(context.Background(), &mcpsdk.StdioTransport{}); err != nil {
		log.Printf("MCP server failed: %v", err)
		return err
	}

	return nil
}

func addTool(server *mcpsdk.Server, name string, fn ToolFunc) {
	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        name,
		Description: getDescription(name),
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, input ToolInput) (*mcpsdk.CallToolResult, ToolOutput, error) {
		output, err := fn(&input)
		if err != nil {
			return nil, ToolOutput{}, err
		}

		return &mcpsdk.CallToolResult{
			Content: []mcpsdk.Content{
				&mcpsdk.TextContent{Text: output.Report},
			},
		}, *output, nil
	})
}

func getDescription(name string) string {
	descriptions := map[string]string{
		"list_ports":   "List serial ports with USB vendor/product details",
		"find_pico":    "Locate the Pico's USB-serial console device",
		"read_console": "Capture decoded text lines from the Pico console",
	}

	if desc, ok := descriptions[name]; ok {
		return desc
	}
	return name
}
