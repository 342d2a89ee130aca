package agent

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	ai "github.com/y-lan/tinyagent"
	"github.com/y-lan/tinyagent/event"
	"github.com/y-lan/tinyagent/internal/store"
	"github.com/y-lan/tinyagent/tool"
)

// maxChatRounds bounds the invoke/execute loop per Chat call: the initial
// request plus at most one follow-up carrying tool results. Tool calls in
// the follow-up response are returned to the caller unexecuted.
const maxChatRounds = 2

// Agent orchestrates chat exchanges against a ChatProvider: it assembles
// the request from system prompt, history, and the user turn, invokes the
// provider, runs requested tools, and feeds the results back for one
// follow-up round.
//
// An Agent is not safe for concurrent Chat calls; usage and history are
// mutated on the calling goroutine.
type Agent struct {
	provider   ai.ChatProvider
	config     Config
	registry   *tool.Registry
	dispatcher *event.Dispatcher
	history    *store.MessageStore
	usage      ai.Usage
	logger     *slog.Logger
}

// New creates an Agent over the given chat provider. The default
// configuration (DefaultConfig) applies unless WithConfig overrides it;
// the configuration is validated before use.
func New(provider ai.ChatProvider, opts ...Option) (*Agent, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}

	a := &Agent{
		provider:   provider,
		config:     DefaultConfig(),
		registry:   tool.NewRegistry(),
		dispatcher: event.NewDispatcher(),
		history:    store.NewMessageStore(),
	}
	for _, opt := range opts {
		opt(a)
	}

	if err := a.config.Validate(); err != nil {
		return nil, err
	}

	if a.logger == nil {
		if a.config.Verbose {
			a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		} else {
			a.logger = slog.New(slog.DiscardHandler)
		}
	}

	// The agent's own bookkeeping runs before any caller-registered
	// finish observer: totals are current by the time callers see the
	// response.
	a.dispatcher.OnFinishChat(func(resp *ai.Response) {
		a.usage.Add(resp.Usage)
		if a.config.EnableHistory && resp.InputMessage != nil {
			a.history.Append(*resp.InputMessage, resp.Message())
		}
	})

	return a, nil
}

// Chat sends the user input and returns the text of the model's reply.
func (a *Agent) Chat(ctx context.Context, input string, opts ...ChatOption) (string, error) {
	resp, err := a.ChatResponse(ctx, input, opts...)
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// ChatResponse sends the user input and returns the full response,
// including tool calls and usage. When the model requests tools and
// execution is enabled, the tools run synchronously in order and their
// results feed one follow-up round; the follow-up's response is final.
func (a *Agent) ChatResponse(ctx context.Context, input string, opts ...ChatOption) (*ai.Response, error) {
	co := a.resolveChatOptions(opts...)

	if a.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.Timeout)
		defer cancel()
	}

	userMsg := buildUserMessage(input, co.images)
	request := a.assembleMessages(userMsg)
	providerOpts := a.providerOptions(co)

	// Usage consumed by completed tool rounds, folded into the final
	// response so totals cover the whole exchange.
	var spent ai.Usage
	var resp *ai.Response
	var err error

	for round := 1; round <= maxChatRounds; round++ {
		resp, err = a.invoke(ctx, request, providerOpts, co.stream)
		if err != nil {
			return nil, err
		}

		if len(resp.ToolCalls) == 0 || !a.config.ExecuteTools || round == maxChatRounds {
			break
		}

		results := a.executeToolCalls(ctx, resp.ToolCalls)
		request = append(request, resp.Message())
		for _, result := range results {
			request = append(request, ai.NewToolResultMessage(result))
		}
		spent.Add(resp.Usage)
	}

	resp.Usage.Add(spent)
	resp.InputMessage = &userMsg
	a.dispatcher.EmitFinishChat(resp)

	return resp, nil
}

// invoke performs one provider round. In streaming mode each text delta is
// published to token observers before the final response is folded.
func (a *Agent) invoke(ctx context.Context, messages []ai.Message, opts []ai.Option, stream bool) (*ai.Response, error) {
	if !stream {
		return a.provider.Chat(ctx, messages, opts...)
	}

	ch, err := a.provider.ChatStream(ctx, messages, opts...)
	if err != nil {
		return nil, err
	}

	var resp *ai.Response
	for ev := range ch {
		if ev.Err != nil {
			return nil, ev.Err
		}
		if ev.Delta != "" {
			a.dispatcher.EmitToken(ev.Delta)
		}
		if ev.Done {
			resp = ev.Response
		}
	}
	if resp == nil {
		return nil, ai.NewPermanentError("stream ended without a final response", 0, nil)
	}
	return resp, nil
}

// executeToolCalls runs the requested tools in order. Each invocation is
// published to tool observers before it executes. A failing handler or an
// unregistered tool becomes an error-tagged result so the model can
// recover; execution errors never abort the exchange.
func (a *Agent) executeToolCalls(ctx context.Context, calls []ai.ToolCall) []ai.ToolResult {
	results := make([]ai.ToolResult, 0, len(calls))
	for _, tc := range calls {
		a.dispatcher.EmitToolCall(tc)
		a.logger.Info("running tool", "name", tc.Name, "args", tc.Arguments)

		result, err := a.registry.Execute(ctx, tc)
		if err != nil {
			a.logger.Error("tool execution failed", "name", tc.Name, "error", err)
			result = ai.ToolResult{
				ToolCallID: tc.ID,
				Name:       tc.Name,
				Content:    "Error: " + err.Error(),
				IsError:    true,
			}
		}
		results = append(results, result)
	}
	return results
}

// assembleMessages builds the outgoing message list: optional system
// message, prior history when enabled, then the user turn.
func (a *Agent) assembleMessages(userMsg ai.Message) []ai.Message {
	var msgs []ai.Message
	if prompt := a.systemPrompt(); prompt != "" {
		msgs = append(msgs, ai.NewSystemMessage(prompt))
	}
	if a.config.EnableHistory {
		msgs = append(msgs, a.history.Messages()...)
	}
	return append(msgs, userMsg)
}

func (a *Agent) systemPrompt() string {
	prompt := a.config.SystemPrompt
	if prompt == "" {
		return ""
	}
	if a.config.EnableMagicPlaceholders {
		prompt = expandMagicPlaceholders(prompt)
	}
	return prompt
}

// expandMagicPlaceholders substitutes runtime values into a prompt:
// __DATE__ becomes the current local date, e.g. "2026-08-23 (Sun)".
func expandMagicPlaceholders(prompt string) string {
	return strings.ReplaceAll(prompt, "__DATE__", time.Now().Format("2006-01-02 (Mon)"))
}

// buildUserMessage renders the user turn. Images turn the message into
// multimodal parts with the text first.
func buildUserMessage(input string, images []ai.ContentPart) ai.Message {
	msg := ai.Message{
		ID:      ai.GenerateMessageID(),
		Role:    ai.RoleUser,
		Content: input,
	}
	if len(images) > 0 {
		msg.Content = ""
		msg.Parts = append([]ai.ContentPart{ai.NewTextPart(input)}, images...)
	}
	return msg
}

// providerOptions maps the agent configuration and per-call overrides to
// chat request options.
func (a *Agent) providerOptions(co *chatOptions) []ai.Option {
	opts := []ai.Option{
		ai.WithMaxTokens(co.maxTokens),
		ai.WithTemperature(co.temperature),
		ai.WithTopP(a.config.TopP),
	}
	if a.config.Model != "" {
		opts = append(opts, ai.WithModel(a.config.Model))
	}
	if a.config.Seed != nil {
		opts = append(opts, ai.WithSeed(*a.config.Seed))
	}
	if a.config.JSONOutput {
		opts = append(opts, ai.WithJSONOutput())
	}
	if a.config.UseTools && a.registry.Len() > 0 {
		opts = append(opts, ai.WithTools(a.registry.Tools()...), ai.WithToolChoice(ai.ToolChoiceAuto))
	}
	return opts
}

// OnNewChatToken subscribes a handler for streaming text tokens. Tokens
// only flow when streaming is enabled; subscribing on a non-streaming
// agent logs a warning.
func (a *Agent) OnNewChatToken(h event.TokenHandler) {
	if !a.config.Stream {
		a.logger.Warn("token events only fire when stream is enabled")
	}
	a.dispatcher.OnNewChatToken(h)
}

// OnToolCall subscribes a handler invoked before each tool executes.
func (a *Agent) OnToolCall(h event.ToolCallHandler) {
	a.dispatcher.OnToolCall(h)
}

// OnFinishChat subscribes a handler for completed chat exchanges. The
// agent's own usage and history bookkeeping always runs first.
func (a *Agent) OnFinishChat(h event.FinishHandler) {
	a.dispatcher.OnFinishChat(h)
}

// Dispatcher exposes the agent's event dispatcher, e.g. for attaching a
// protocol mapper.
func (a *Agent) Dispatcher() *event.Dispatcher {
	return a.dispatcher
}

// Registry exposes the agent's tool registry.
func (a *Agent) Registry() *tool.Registry {
	return a.registry
}

// Config returns the agent's configuration.
func (a *Agent) Config() Config {
	return a.config
}

// Usage returns the accumulated token usage across all chat calls.
func (a *Agent) Usage() ai.Usage {
	return a.usage
}

// History returns a copy of the conversation history.
func (a *Agent) History() []ai.Message {
	return a.history.Messages()
}

// ClearHistory removes all stored conversation history.
func (a *Agent) ClearHistory() {
	a.history.Clear()
}

// AddUserHistory appends a user message to the history. It is a no-op
// when history is disabled.
func (a *Agent) AddUserHistory(text string) {
	a.addHistory(ai.NewUserMessage(text))
}

// AddAIHistory appends an assistant message to the history. It is a no-op
// when history is disabled.
func (a *Agent) AddAIHistory(text string) {
	a.addHistory(ai.Message{Role: ai.RoleAssistant, Content: text})
}

func (a *Agent) addHistory(msg ai.Message) {
	if !a.config.EnableHistory {
		return
	}
	a.history.Append(msg)
}
