// Package mcp bridges the tool registry to the Model Context Protocol.
//
// MCP lets assistants discover and call tools served by external
// processes. The bridge runs in both directions:
//
//   - Consume: connect to an MCP server with [NewRemoteRegistry] and use
//     its tools as canonical Tool values, directly or through an agent.
//   - Expose: publish a tool.Registry as an MCP server with [ServeStdio]
//     so MCP clients can discover and call your tools.
//
// # Consuming an MCP Server
//
// Connect to a server and hand its tools to an agent:
//
//	remote, err := mcp.NewRemoteRegistry(ctx, "./my-mcp-server", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer remote.Close()
//
//	registry := tool.NewRegistry().Add(remote.Registrations()...)
//	a, err := agent.New(provider, agent.WithTools(registry))
//
// Remote execution failures surface as error tool results, so a broken
// server degrades a conversation instead of aborting it.
//
// # Exposing Tools
//
// Serve a registry over stdio, the standard transport for MCP servers
// launched as subprocesses:
//
//	registry := tool.NewRegistry().Add(
//	    tool.WithTool(tool.NewCalculatorTool()),
//	    tool.WithTool(tool.NewCurrentTimeTool()),
//	)
//
//	if err := mcp.ServeStdio(registry); err != nil {
//	    log.Fatal(err)
//	}
package mcp
