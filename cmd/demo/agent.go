package main

import (
	"context"
	"fmt"
	"os"

	ai "github.com/y-lan/tinyagent"
	"github.com/y-lan/tinyagent/agent"
	"github.com/y-lan/tinyagent/tool"
)

// demoRegistry bundles the built-in tools every agent demo shares.
func demoRegistry() *tool.Registry {
	return tool.NewRegistry().Add(
		tool.WithTool(tool.NewCalculatorTool()),
		tool.WithTool(tool.NewCurrentTimeTool()),
	)
}

func demoAgent(ctx context.Context, s *session) {
	fmt.Println("┌─────────────────────────────────────────┐")
	fmt.Println("│        Agent Tool Execution Demo        │")
	fmt.Println("└─────────────────────────────────────────┘")

	cfg := agent.DefaultConfig()
	cfg.Model = s.model

	a, err := agent.New(s.chat, agent.WithConfig(cfg), agent.WithTools(demoRegistry()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	a.OnToolCall(func(call ai.ToolCall) {
		fmt.Printf("  -> tool: %s(%s)\n", call.Name, call.Arguments)
	})

	input := "What is (17 + 3) * 4.5? And what time is it right now?"
	fmt.Printf("\nUser: %s\n", input)
	fmt.Println("Tools available: calculator, current_time")
	fmt.Println()

	answer, err := a.Chat(ctx, input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	fmt.Printf("\nAssistant: %s\n", answer)
	usage := a.Usage()
	fmt.Printf("[Tokens: %d in, %d out]\n", usage.InputTokens, usage.OutputTokens)
}

func demoAgentStream(ctx context.Context, s *session) {
	fmt.Println("┌─────────────────────────────────────────┐")
	fmt.Println("│       Agent Streaming Observers         │")
	fmt.Println("└─────────────────────────────────────────┘")

	cfg := agent.DefaultConfig()
	cfg.Model = s.model
	cfg.Stream = true

	a, err := agent.New(s.chat, agent.WithConfig(cfg), agent.WithTools(demoRegistry()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	a.OnNewChatToken(func(token string) {
		fmt.Print(token)
	})
	a.OnToolCall(func(call ai.ToolCall) {
		fmt.Printf("\n  -> tool: %s(%s)\n", call.Name, call.Arguments)
	})
	a.OnFinishChat(func(resp *ai.Response) {
		fmt.Printf("\n[Tokens: %d in, %d out]\n",
			resp.Usage.InputTokens, resp.Usage.OutputTokens)
	})

	input := "What is 21 * 2? Explain the result in one sentence."
	fmt.Printf("\nUser: %s\n", input)
	fmt.Print("\nAssistant: ")

	if _, err := a.Chat(ctx, input); err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
	}
}

func demoHistory(ctx context.Context, s *session) {
	fmt.Println("┌─────────────────────────────────────────┐")
	fmt.Println("│      Conversation History Demo          │")
	fmt.Println("└─────────────────────────────────────────┘")

	cfg := agent.DefaultConfig()
	cfg.Model = s.model
	cfg.EnableHistory = true

	a, err := agent.New(s.chat, agent.WithConfig(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	turns := []string{
		"My name is Ada and I live in Lisbon. Just say hi.",
		"What is my name, and where do I live?",
	}

	for _, input := range turns {
		fmt.Printf("\nUser: %s\n", input)

		answer, err := a.Chat(ctx, input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		fmt.Printf("Assistant: %s\n", answer)
	}

	fmt.Printf("\n[History: %d messages | Tokens: %d in, %d out]\n",
		len(a.History()), a.Usage().InputTokens, a.Usage().OutputTokens)
}
