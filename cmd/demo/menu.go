package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Category groups related demos together.
type Category string

const (
	CategoryChat   Category = "Chat"
	CategoryAgent  Category = "Agents & Tools"
	CategoryOutput Category = "Structured Output"
)

// categoryOrder defines the display order of categories.
var categoryOrder = []Category{
	CategoryChat,
	CategoryAgent,
	CategoryOutput,
}

// Demo represents a single demo with its metadata.
type Demo struct {
	Name        string
	Description string
	Category    Category
	Run         func(ctx context.Context, s *session)
}

// demos is the registry of all available demos.
var demos = []Demo{
	// Chat
	{Name: "chat", Description: "Basic chat with token counting", Category: CategoryChat, Run: demoChat},
	{Name: "stream", Description: "Streaming chat responses", Category: CategoryChat, Run: demoChatStream},
	{Name: "vision", Description: "Vision/image input analysis", Category: CategoryChat, Run: demoVision},

	// Agents & Tools
	{Name: "agent", Description: "Agent with tool execution", Category: CategoryAgent, Run: demoAgent},
	{Name: "agent-stream", Description: "Agent with streaming observers", Category: CategoryAgent, Run: demoAgentStream},
	{Name: "history", Description: "Multi-turn conversation history", Category: CategoryAgent, Run: demoHistory},

	// Structured Output
	{Name: "json", Description: "JSON mode via agent config", Category: CategoryOutput, Run: demoJSONMode},
	{Name: "typed", Description: "Typed responses with ChatTyped", Category: CategoryOutput, Run: demoChatTyped},
}

// showMenu displays the numbered menu with category headers and returns
// the indices of the selected demos, or nil if the user quits.
func showMenu() []int {
	byCategory := make(map[Category][]int)
	for i, d := range demos {
		byCategory[d.Category] = append(byCategory[d.Category], i)
	}

	fmt.Println("┌────────────────────────────────────────┐")
	fmt.Println("│             Select Demos               │")
	fmt.Println("└────────────────────────────────────────┘")
	fmt.Println()

	for _, cat := range categoryOrder {
		indices := byCategory[cat]
		if len(indices) == 0 {
			continue
		}

		fmt.Printf("─── %s ───\n", cat)
		for _, i := range indices {
			d := demos[i]
			fmt.Printf("  [%2d] %-14s %s\n", i+1, d.Name, d.Description)
		}
		fmt.Println()
	}

	fmt.Println("─── Options ───")
	fmt.Println("  [a]  Run all demos")
	fmt.Println("  [q]  Quit")
	fmt.Println()

	return promptSelection(len(demos))
}

// promptSelection handles user input and returns selected demo indices.
func promptSelection(total int) []int {
	for {
		fmt.Print("Enter selection (number, range like 1-3, comma-separated, 'a' for all, 'q' to quit): ")
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(strings.ToLower(input))

		if input == "q" || input == "quit" {
			return nil
		}

		if input == "a" || input == "all" {
			result := make([]int, total)
			for i := range result {
				result[i] = i
			}
			return result
		}

		selected, err := parseSelection(input, total)
		if err != nil {
			fmt.Printf("Invalid selection: %v\n", err)
			continue
		}

		if len(selected) == 0 {
			fmt.Println("No demos selected. Try again.")
			continue
		}

		return selected
	}
}

// parseSelection parses input like "1", "1-3", "1,3,5", or "1-3,7" into
// zero-based demo indices, deduplicated in input order.
func parseSelection(input string, total int) ([]int, error) {
	seen := make(map[int]bool)
	var result []int

	add := func(n int) error {
		if n < 1 || n > total {
			return fmt.Errorf("number out of range: %d (must be 1-%d)", n, total)
		}
		if idx := n - 1; !seen[idx] {
			seen[idx] = true
			result = append(result, idx)
		}
		return nil
	}

	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if start, end, ok := strings.Cut(part, "-"); ok {
			lo, err := strconv.Atoi(strings.TrimSpace(start))
			if err != nil {
				return nil, fmt.Errorf("invalid number: %s", start)
			}
			hi, err := strconv.Atoi(strings.TrimSpace(end))
			if err != nil {
				return nil, fmt.Errorf("invalid number: %s", end)
			}
			if lo > hi {
				lo, hi = hi, lo
			}
			for n := lo; n <= hi; n++ {
				if err := add(n); err != nil {
					return nil, err
				}
			}
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid number: %s", part)
		}
		if err := add(n); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// runDemos executes the selected demos in order.
func runDemos(ctx context.Context, s *session, indices []int) {
	for i, idx := range indices {
		d := demos[idx]

		fmt.Println()
		fmt.Printf("━━━ [%d/%d] %s: %s ━━━\n", i+1, len(indices), d.Name, d.Description)
		fmt.Println()

		d.Run(ctx, s)

		if i < len(indices)-1 {
			fmt.Println()
			fmt.Print("Press Enter to continue...")
			reader.ReadString('\n')
		}
	}
}
