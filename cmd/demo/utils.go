package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	ai "github.com/y-lan/tinyagent"
	"github.com/y-lan/tinyagent/model"
)

var reader = bufio.NewReader(os.Stdin)

func askYesNo(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}

type modelOption struct {
	model model.ChatModel
	label string
}

func modelsFor(provider ai.Provider) []modelOption {
	switch provider {
	case ai.ProviderAnthropic:
		return []modelOption{
			{model.ClaudeSonnet45, "Claude Sonnet 4.5 (recommended)"},
			{model.ClaudeOpus45, "Claude Opus 4.5 (most capable)"},
			{model.ClaudeHaiku45, "Claude Haiku 4.5 (fastest)"},
		}
	case ai.ProviderOpenAI:
		return []modelOption{
			{model.GPT52, "GPT-5.2 (recommended)"},
			{model.GPT52Pro, "GPT-5.2 Pro (most capable)"},
			{model.GPT51, "GPT-5.1"},
			{model.GPT51Mini, "GPT-5.1 Mini (fastest)"},
			{model.O3, "O3 (reasoning)"},
			{model.O3Mini, "O3 Mini (fast reasoning)"},
		}
	case ai.ProviderGemini:
		return []modelOption{
			{model.Gemini25Flash, "Gemini 2.5 Flash (recommended)"},
			{model.Gemini25Pro, "Gemini 2.5 Pro (most capable)"},
			{model.Gemini25FlashLite, "Gemini 2.5 Flash Lite (fastest)"},
			{model.Gemini3Pro, "Gemini 3.0 Pro"},
			{model.Gemini3DeepThink, "Gemini 3.0 Deep Think (reasoning)"},
		}
	default:
		return nil
	}
}

// pickModel prompts for a model choice. An out-of-range or empty answer
// falls back to the provider default (empty string).
func pickModel(provider ai.Provider) string {
	options := modelsFor(provider)
	if len(options) == 0 {
		return ""
	}

	fmt.Println("\nAvailable models:")
	for i, opt := range options {
		fmt.Printf("  [%d] %-24s %s\n", i+1, opt.model, opt.label)
	}
	fmt.Printf("Select model [1-%d, Enter for default]: ", len(options))

	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return ""
	}

	var selected int
	fmt.Sscanf(answer, "%d", &selected)
	if selected < 1 || selected > len(options) {
		fmt.Println("Using provider default")
		return ""
	}

	chosen := options[selected-1].model
	fmt.Printf("Using %s\n", chosen)
	return chosen.String()
}
