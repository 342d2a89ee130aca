package main

import (
	"context"
	"fmt"
	"os"

	ai "github.com/y-lan/tinyagent"
)

func demoChat(ctx context.Context, s *session) {
	fmt.Println("┌─────────────────────────────────────────┐")
	fmt.Println("│              Chat Demo                  │")
	fmt.Println("└─────────────────────────────────────────┘")

	messages := []ai.Message{
		ai.NewUserMessage("What is the capital of France? Reply in one sentence."),
	}

	fmt.Printf("\nUser: %s\n", messages[0].Content)
	fmt.Print("\nAssistant: ")

	resp, err := s.chat.Chat(ctx, messages, s.opts()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	fmt.Println(resp.Content)
	fmt.Printf("[Model: %s | Tokens: %d in, %d out]\n",
		resp.Model, resp.Usage.InputTokens, resp.Usage.OutputTokens)
}

func demoChatStream(ctx context.Context, s *session) {
	fmt.Println("┌─────────────────────────────────────────┐")
	fmt.Println("│          Chat Stream Demo               │")
	fmt.Println("└─────────────────────────────────────────┘")

	messages := []ai.Message{
		ai.NewUserMessage("Say hello in 3 different languages, one per line."),
	}

	stream, err := s.chat.ChatStream(ctx, messages, s.opts()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	fmt.Print("\nAssistant:\n")
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

func demoVision(ctx context.Context, s *session) {
	fmt.Println("┌─────────────────────────────────────────┐")
	fmt.Println("│         Vision/Image Input Demo         │")
	fmt.Println("└─────────────────────────────────────────┘")

	// Use a public domain image URL
	imageURL := "https://upload.wikimedia.org/wikipedia/commons/thumb/4/47/PNG_transparency_demonstration_1.png/300px-PNG_transparency_demonstration_1.png"

	messages := []ai.Message{
		{
			Role: ai.RoleUser,
			Parts: []ai.ContentPart{
				ai.NewTextPart("Describe this image in one sentence. What do you see?"),
				ai.NewImageURLPart(imageURL),
			},
		},
	}

	fmt.Printf("Image URL: %s\n", imageURL)
	fmt.Println("Question: Describe this image in one sentence. What do you see?")
	fmt.Println()

	resp, err := s.chat.Chat(ctx, messages, s.opts()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	fmt.Printf("Response: %s\n", resp.Content)
	fmt.Printf("[Tokens: %d in, %d out]\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
}
