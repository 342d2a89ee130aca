// Package agent orchestrates chat exchanges with optional tool execution.
//
// An agent wraps a ChatProvider with conversation assembly: a configurable
// system prompt (with magic placeholder expansion), optional history, and
// the user turn with optional images. When the model requests tool calls,
// the agent executes them through its tool registry and feeds the results
// back for one follow-up round.
//
// # Basic Usage
//
// Build a provider through the client package, then create an agent:
//
//	c, err := client.NewFromEnv()
//	provider, err := c.ChatProvider(tinyagent.ProviderAnthropic)
//
//	a, err := agent.New(provider)
//	reply, err := a.Chat(ctx, "What is the capital of France?")
//
// Use ChatResponse to receive the full response with usage and any
// unexecuted tool calls:
//
//	resp, err := a.ChatResponse(ctx, "What is the capital of France?")
//
// # Configuration
//
// Behavior is controlled by a validated, closed-key Config. Unknown keys
// are rejected at parse time:
//
//	cfg, err := agent.ParseConfig(map[string]any{
//	    "model":          "claude-sonnet-4-5",
//	    "enable_history": true,
//	    "stream":         true,
//	})
//	a, err := agent.New(provider, agent.WithConfig(cfg))
//
// Programmatic construction starts from DefaultConfig:
//
//	cfg := agent.DefaultConfig()
//	cfg.SystemPrompt = "Today is __DATE__. You are a terse assistant."
//	cfg.JSONOutput = true
//
// # Tools
//
// Register tools on a registry and hand it to the agent. Requested calls
// run synchronously in order; a failing handler becomes an "Error: ..."
// result the model can react to in the follow-up round:
//
//	registry := tool.NewRegistry().Add(
//	    tool.WithTool(tool.NewCalculatorTool()),
//	    tool.Func("get_weather", "Get current weather", getWeather),
//	)
//	a, err := agent.New(provider, agent.WithTools(registry))
//
// # Events
//
// Observers attach to the agent's dispatcher and run synchronously on the
// calling goroutine:
//
//	a.OnNewChatToken(func(token string) { fmt.Print(token) })
//	a.OnToolCall(func(call tinyagent.ToolCall) { log.Println("tool:", call.Name) })
//	a.OnFinishChat(func(resp *tinyagent.Response) { log.Println(resp.Usage) })
//
// Token events require streaming (Config.Stream or agent.WithStream).
//
// # History
//
// With EnableHistory set, each completed exchange appends the input and
// output messages together, and subsequent requests carry the prior
// exchanges in order. History is off by default; sequential calls are
// then fully isolated.
package agent
