// Command mcp is a reference MCP server that exposes tinyagent tools over stdio.
//
// This server demonstrates how to expose a tool.Registry as an MCP server,
// allowing MCP clients (like Claude Desktop or other AI assistants) to
// discover and use the tools.
//
// Usage:
//
//	go run ./cmd/mcp
//
// Configuration for Claude Desktop (~/Library/Application Support/Claude/claude_desktop_config.json):
//
//	{
//	    "mcpServers": {
//	        "tinyagent-tools": {
//	            "command": "go",
//	            "args": ["run", "./cmd/mcp"],
//	            "cwd": "/path/to/tinyagent"
//	        }
//	    }
//	}
package main

import (
	"context"
	"log"

	"github.com/y-lan/tinyagent/mcp"
	"github.com/y-lan/tinyagent/tool"
)

func main() {
	// Built-in tools plus a typed example handler
	registry := tool.NewRegistry().Add(
		tool.WithTool(tool.NewCalculatorTool()),
		tool.WithTool(tool.NewCurrentTimeTool()),
		tool.Func("echo", "Echo back the input text", echoHandler),
	)

	if err := mcp.ServeStdio(registry,
		mcp.WithName("tinyagent-mcp-example"),
		mcp.WithVersion("1.0.0"),
	); err != nil {
		log.Fatal(err)
	}
}

// EchoArgs are the arguments for the echo tool.
type EchoArgs struct {
	Text string `json:"text" desc:"The text to echo back" required:"true"`
}

func echoHandler(ctx context.Context, args EchoArgs) (string, error) {
	return args.Text, nil
}
