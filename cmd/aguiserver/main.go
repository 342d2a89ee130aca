// Package main provides a reference AG-UI HTTP server that exposes a
// tinyagent agent via the AG-UI protocol over Server-Sent Events (SSE).
//
// This server demonstrates how to integrate tinyagent with AG-UI
// compatible frontends like CopilotKit. It uses only the Go standard
// library for HTTP.
//
// Configuration is via environment variables:
//
//	AGUI_PORT             - Server port (default: 8080)
//	TINYAGENT_PROVIDER    - Provider: anthropic, openai, or gemini (required)
//	TINYAGENT_MODEL       - Model override (optional, uses provider default)
//	TINYAGENT_MAX_RETRY   - Retry attempts per provider call (default: 3)
//	TINYAGENT_TIMEOUT     - Per-run timeout (default: 2m)
//	TINYAGENT_DEMO_TOOLS  - Enable demo tools (default: true)
//	ANTHROPIC_API_KEY     - Anthropic API key
//	OPENAI_API_KEY        - OpenAI API key
//	GEMINI_API_KEY        - Gemini API key
//	TAVILY_API_KEY        - Enables the web_search demo tool when set
//
// Usage:
//
//	TINYAGENT_PROVIDER=anthropic go run ./cmd/aguiserver
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	ai "github.com/y-lan/tinyagent"
	"github.com/y-lan/tinyagent/client"
	"github.com/y-lan/tinyagent/tool"
)

func main() {
	godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	chat, err := createProvider(cfg)
	if err != nil {
		slog.Error("failed to create provider", "error", err)
		os.Exit(1)
	}

	registry := tool.NewRegistry()
	if cfg.EnableDemoTools {
		setupDemoTools(registry)
		slog.Info("registered demo tools", "count", registry.Len(), "names", registry.Names())
	}

	handler := NewAgentHandler(chat, registry, cfg)

	mux := http.NewServeMux()
	mux.Handle("/api/agent", corsMiddleware(handler))
	mux.HandleFunc("/health", healthHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // SSE needs no write timeout
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("AG-UI server starting",
		"port", cfg.Port,
		"provider", cfg.Provider,
		"endpoint", "POST http://localhost:"+cfg.Port+"/api/agent",
	)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// createProvider builds the retry-wrapped chat provider the server
// fronts, feeding the configured retry budget into the client.
func createProvider(cfg *Config) (ai.ChatProvider, error) {
	clientCfg := client.ConfigFromEnv()
	retryCfg := ai.DefaultRetryConfig()
	retryCfg.MaxAttempts = cfg.MaxRetry
	clientCfg.Retry = retryCfg

	c, err := client.New(clientCfg)
	if err != nil {
		return nil, err
	}
	return c.ChatProvider(context.Background(), cfg.Provider)
}

// setupDemoTools registers the built-in tools. Web search joins only
// when a Tavily key is configured.
func setupDemoTools(registry *tool.Registry) {
	registry.Add(
		tool.WithTool(tool.NewCalculatorTool()),
		tool.WithTool(tool.NewCurrentTimeTool()),
	)
	if os.Getenv("TAVILY_API_KEY") != "" {
		registry.Add(tool.WithTool(tool.NewWebSearchTool()))
	}
}
