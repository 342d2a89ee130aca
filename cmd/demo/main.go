package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	ai "github.com/y-lan/tinyagent"
	"github.com/y-lan/tinyagent/client"
)

// session carries the provider selection shared by every demo.
type session struct {
	provider ai.Provider
	chat     ai.ChatProvider
	model    string // empty means provider default
}

// opts prepends the session's model override to per-call options.
func (s *session) opts(extra ...ai.Option) []ai.Option {
	if s.model == "" {
		return extra
	}
	return append([]ai.Option{ai.WithModel(s.model)}, extra...)
}

func main() {
	godotenv.Load()
	ctx := context.Background()

	fmt.Println("╔════════════════════════════════════════╗")
	fmt.Println("║      tinyagent - LLM Library Demo      ║")
	fmt.Println("╚════════════════════════════════════════╝")
	fmt.Println()

	// Check available providers
	providers := []struct {
		name   ai.Provider
		envKey string
		label  string
	}{
		{ai.ProviderAnthropic, client.EnvAnthropicAPIKey, "Anthropic (Claude)"},
		{ai.ProviderOpenAI, client.EnvOpenAIAPIKey, "OpenAI (GPT)"},
		{ai.ProviderGemini, client.EnvGeminiAPIKey, "Google (Gemini)"},
	}

	var available []struct {
		name  ai.Provider
		label string
	}

	fmt.Println("Available providers:")
	for _, p := range providers {
		if os.Getenv(p.envKey) != "" {
			fmt.Printf("  [%d] %s\n", len(available)+1, p.label)
			available = append(available, struct {
				name  ai.Provider
				label string
			}{p.name, p.label})
		}
	}

	if len(available) == 0 {
		fmt.Println("  ✗ No API keys found. Set ANTHROPIC_API_KEY, OPENAI_API_KEY, or GEMINI_API_KEY.")
		return
	}
	fmt.Println()

	// Let user select provider
	var selected int
	if len(available) == 1 {
		selected = 0
		fmt.Printf("Using %s (only available provider)\n", available[0].label)
	} else {
		fmt.Printf("Select provider [1-%d]: ", len(available))
		answer, _ := reader.ReadString('\n')
		fmt.Sscanf(answer, "%d", &selected)
		selected-- // Convert to 0-indexed
		if selected < 0 || selected >= len(available) {
			selected = 0
		}
		fmt.Printf("Using %s\n", available[selected].label)
	}
	fmt.Println()

	c, err := client.NewFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create client: %v\n", err)
		return
	}

	chat, err := c.ChatProvider(ctx, available[selected].name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create provider: %v\n", err)
		return
	}

	s := &session{provider: available[selected].name, chat: chat}

	if askYesNo("Pick a specific model? (default uses the provider's default)") {
		s.model = pickModel(s.provider)
	}

	for {
		indices := showMenu()
		if indices == nil {
			break
		}
		runDemos(ctx, s, indices)
		fmt.Println()
	}

	fmt.Println("\n✨ Demo complete!")
}
