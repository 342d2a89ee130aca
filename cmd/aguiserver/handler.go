package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ag-ui-protocol/ag-ui/sdks/community/go/pkg/core/events"

	ai "github.com/y-lan/tinyagent"
	"github.com/y-lan/tinyagent/agent"
	"github.com/y-lan/tinyagent/agui"
	"github.com/y-lan/tinyagent/tool"
)

// runRequest is the subset of the AG-UI RunAgentInput payload the
// server consumes.
type runRequest struct {
	ThreadID string           `json:"threadId"`
	RunID    string           `json:"runId"`
	Messages []events.Message `json:"messages"`
	Tools    []agui.Tool      `json:"tools"`
}

// AgentHandler handles AG-UI agent requests over SSE.
type AgentHandler struct {
	chat     ai.ChatProvider
	registry *tool.Registry
	config   *Config
}

// NewAgentHandler creates a handler that runs one agent per request
// against the given provider and shared tool registry.
func NewAgentHandler(chat ai.ChatProvider, registry *tool.Registry, cfg *Config) *AgentHandler {
	return &AgentHandler{chat: chat, registry: registry, config: cfg}
}

// ServeHTTP handles POST requests to run the agent and stream events via SSE.
func (h *AgentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		slog.Warn("method not allowed", "method", r.Method, "path", r.URL.Path)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input runRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		slog.Warn("invalid request body", "error", err)
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	log := slog.With("thread_id", input.ThreadID, "run_id", input.RunID)

	history := agui.FromAGUIMessages(input.Messages)
	if len(history) == 0 {
		log.Warn("empty message list")
		http.Error(w, "No messages in request", http.StatusBadRequest)
		return
	}

	last := history[len(history)-1]
	if last.Role != ai.RoleUser || last.Text() == "" {
		log.Warn("run does not end with user text", "role", last.Role)
		http.Error(w, "Last message must be a user message with text", http.StatusBadRequest)
		return
	}
	prior := history[:len(history)-1]

	cfg := agent.DefaultConfig()
	cfg.Model = h.config.Model
	cfg.Timeout = h.config.Timeout
	cfg.Stream = true
	cfg.EnableHistory = true

	// A leading system message overrides the default prompt.
	if len(prior) > 0 && prior[0].Role == ai.RoleSystem {
		cfg.SystemPrompt = prior[0].Text()
		prior = prior[1:]
	}

	a, err := agent.New(h.chat,
		agent.WithConfig(cfg),
		agent.WithTools(h.requestRegistry(input.Tools, log)),
	)
	if err != nil {
		log.Error("failed to create agent", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Replay the conversation so far. Tool traffic is not replayed; the
	// model sees user and assistant turns only.
	for _, msg := range prior {
		switch msg.Role {
		case ai.RoleUser:
			a.AddUserHistory(msg.Text())
		case ai.RoleAssistant:
			a.AddAIHistory(msg.Text())
		}
	}

	log.Info("request started", "message_count", len(history))

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		log.Error("streaming not supported")
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	mapper := agui.NewMapper(input.ThreadID, input.RunID)

	var eventCount int
	sink := func(ev events.Event) {
		eventCount++
		if err := writeSSE(w, flusher, ev); err != nil {
			log.Error("failed to write SSE event", "error", err, "event_type", ev.Type())
		}
	}
	mapper.Attach(a.Dispatcher(), sink)

	if _, err := a.Chat(r.Context(), last.Text()); err != nil {
		log.Error("run failed",
			"duration_ms", time.Since(start).Milliseconds(),
			"events_sent", eventCount,
			"error", err,
		)
		if eventCount == 0 {
			sink(mapper.RunStarted())
		}
		sink(mapper.RunError(err))
		return
	}

	log.Info("request completed",
		"duration_ms", time.Since(start).Milliseconds(),
		"events_sent", eventCount,
	)
}

// requestRegistry copies the shared tools into a per-request registry
// and adds any frontend-declared tools. Frontend tools execute on the
// client; their handlers return an error result so the model learns the
// tool did not run server-side while the TOOL_CALL events still stream
// to the frontend.
func (h *AgentHandler) requestRegistry(frontend []agui.Tool, log *slog.Logger) *tool.Registry {
	registry := tool.NewRegistry()
	for _, t := range h.registry.Tools() {
		if handler, ok := h.registry.Get(t.Name); ok {
			registry.MustRegister(t, handler)
		}
	}
	for _, ft := range frontend {
		t := agui.FromAGUITool(ft)
		if err := registry.Register(t, frontendHandler(t.Name)); err != nil {
			log.Warn("skipping frontend tool", "name", t.Name, "error", err)
		}
	}
	return registry
}

func frontendHandler(name string) tool.Handler {
	return func(ctx context.Context, call ai.ToolCall) (string, error) {
		return "", fmt.Errorf("tool %q executes on the frontend", name)
	}
}

// writeSSE writes an AG-UI event in SSE format.
func writeSSE(w http.ResponseWriter, flusher http.Flusher, ev events.Event) error {
	data, err := ev.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}

	// SSE format: event: TYPE\ndata: {json}\n\n
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type(), string(data)); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	flusher.Flush()
	return nil
}

// corsMiddleware adds CORS headers for cross-origin frontend requests.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// healthHandler returns a simple health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
