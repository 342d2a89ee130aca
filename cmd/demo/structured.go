package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	ai "github.com/y-lan/tinyagent"
	"github.com/y-lan/tinyagent/agent"
	"github.com/y-lan/tinyagent/client"
)

func demoJSONMode(ctx context.Context, s *session) {
	fmt.Println("┌─────────────────────────────────────────┐")
	fmt.Println("│            JSON Mode Demo               │")
	fmt.Println("└─────────────────────────────────────────┘")

	cfg := agent.DefaultConfig()
	cfg.Model = s.model
	cfg.JSONOutput = true
	cfg.SystemPrompt = "Answer with a JSON object. No prose outside the JSON."

	a, err := agent.New(s.chat, agent.WithConfig(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	input := `List the three primary colors as {"colors": [...]}.`
	fmt.Printf("\nUser: %s\n\n", input)

	answer, err := a.Chat(ctx, input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	fmt.Println("Raw JSON response:")
	fmt.Println(answer)

	var parsed struct {
		Colors []string `json:"colors"`
	}
	if err := json.Unmarshal([]byte(answer), &parsed); err != nil {
		fmt.Fprintf(os.Stderr, "Parse error: %v\n", err)
		return
	}
	fmt.Printf("\nParsed colors: %v\n", parsed.Colors)
}

// BookInfo is the target shape for the typed response demo.
type BookInfo struct {
	Title  string   `json:"title" desc:"The book title"`
	Author string   `json:"author" desc:"The author's name"`
	Year   int      `json:"year" desc:"Publication year"`
	Genres []string `json:"genres" desc:"List of genres"`
}

func demoChatTyped(ctx context.Context, s *session) {
	fmt.Println("┌─────────────────────────────────────────┐")
	fmt.Println("│         Typed Response Demo             │")
	fmt.Println("└─────────────────────────────────────────┘")

	schema := ai.MustSchemaFor[BookInfo]()
	fmt.Println("Schema generated from BookInfo:")
	fmt.Println(string(schema))

	messages := []ai.Message{
		ai.NewUserMessage("Give me information about the book '1984' by George Orwell."),
	}

	fmt.Printf("\nUser: %s\n\n", messages[0].Content)

	book, err := client.ChatTyped[BookInfo](ctx, s.chat, messages, s.opts()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	fmt.Println("Parsed data:")
	fmt.Printf("  Title:  %s\n", book.Title)
	fmt.Printf("  Author: %s\n", book.Author)
	fmt.Printf("  Year:   %d\n", book.Year)
	fmt.Printf("  Genres: %v\n", book.Genres)
}
