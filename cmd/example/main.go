package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	ai "github.com/y-lan/tinyagent"
	"github.com/y-lan/tinyagent/client"
)

func main() {
	godotenv.Load()
	ctx := context.Background()

	c, err := client.NewFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
		os.Exit(1)
	}

	prompt := []ai.Message{
		ai.NewUserMessage("Say hello in 3 different languages, one per line."),
	}

	for _, p := range ai.Providers() {
		chat, err := c.ChatProvider(ctx, p)
		if err != nil {
			// Skip providers without a configured API key
			continue
		}

		fmt.Printf("=== %s ===\n", p)
		streamReply(ctx, chat, prompt)
		fmt.Println()
	}
}

func streamReply(ctx context.Context, chat ai.ChatProvider, messages []ai.Message) {
	stream, err := chat.ChatStream(ctx, messages)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	for ev := range stream {
		if ev.Err != nil {
			fmt.Fprintf(os.Stderr, "Stream error: %v\n", ev.Err)
			return
		}
		fmt.Print(ev.Delta)
		if ev.Done {
			fmt.Printf("\n[Tokens: %d in, %d out]\n",
				ev.Response.Usage.InputTokens,
				ev.Response.Usage.OutputTokens)
		}
	}
}
