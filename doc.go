// Package tinyagent provides a minimalistic, unified interface for LLM
// chat completion across multiple providers.
//
// The library abstracts away provider-specific APIs so the same code can
// talk to Anthropic (Claude), OpenAI (GPT), and Google (Gemini), with
// optional tool invocation, streaming, conversation history, and image
// input.
//
// # Core Interface
//
// Every provider implements [ChatProvider]: a complete-response Chat
// call and a channel-based ChatStream call. Use the
// [github.com/y-lan/tinyagent/client] package to construct providers
// from API keys, and the [github.com/y-lan/tinyagent/model] package for
// model selection.
//
// # Basic Usage
//
//	c, err := client.NewFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	provider, err := c.ChatProvider(ctx, tinyagent.ProviderAnthropic)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	messages := []tinyagent.Message{
//	    {Role: tinyagent.RoleUser, Content: "What is the capital of France?"},
//	}
//	resp, err := provider.Chat(ctx, messages)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.Content)
//
// # Streaming Responses
//
// For real-time output, use ChatStream:
//
//	stream, err := provider.ChatStream(ctx, messages)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for event := range stream {
//	    if event.Err != nil {
//	        log.Fatal(event.Err)
//	    }
//	    fmt.Print(event.Delta)
//	}
//
// # Configuration Options
//
// Customize requests with functional options:
//
//	resp, err := provider.Chat(ctx, messages,
//	    tinyagent.WithModel(model.DefaultClaudeModel.String()),
//	    tinyagent.WithMaxTokens(1024),
//	    tinyagent.WithTemperature(0),
//	)
//
// # Tool Calling
//
// Tools are JSON-schema function definitions the model may ask to
// invoke. Generate schemas from argument structs with [SchemaFor], or
// build them with the [github.com/y-lan/tinyagent/schema] package:
//
//	type WeatherArgs struct {
//	    Location string `json:"location" desc:"City name"`
//	}
//
//	tools := []tinyagent.Tool{{
//	    Name:        "get_weather",
//	    Description: "Get current weather for a location",
//	    Parameters:  tinyagent.MustSchemaFor[WeatherArgs](),
//	}}
//
//	resp, err := provider.Chat(ctx, messages, tinyagent.WithTools(tools...))
//	for _, call := range resp.ToolCalls {
//	    fmt.Printf("Tool: %s, Args: %s\n", call.Name, call.Arguments)
//	}
//
// # Multimodal Messages
//
// Send images alongside text:
//
//	messages := []tinyagent.Message{
//	    {
//	        Role: tinyagent.RoleUser,
//	        Parts: []tinyagent.ContentPart{
//	            tinyagent.NewTextPart("What's in this image?"),
//	            tinyagent.NewImageURLPart("https://example.com/image.jpg"),
//	        },
//	    },
//	}
//
// # Higher-Level Abstractions
//
// The [github.com/y-lan/tinyagent/agent] package wraps a ChatProvider
// with tool execution, history, token accounting, and lifecycle events;
// [github.com/y-lan/tinyagent/tool] provides the registry and bundled
// tools; [github.com/y-lan/tinyagent/event] carries the observer
// surface.
package tinyagent
