package agent

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ai "github.com/y-lan/tinyagent"
	"github.com/y-lan/tinyagent/tool"
)

// mockProvider implements ai.ChatProvider with canned responses and
// records every request it receives.
type mockProvider struct {
	responses []mockResponse
	calls     []mockCall
}

type mockResponse struct {
	content   string
	toolCalls []ai.ToolCall
	err       error
	// fn derives the content from the request, for echo-style mocks.
	fn func(messages []ai.Message) string
}

type mockCall struct {
	messages []ai.Message
	options  *ai.Options
}

func (m *mockProvider) record(messages []ai.Message, opts []ai.Option) mockResponse {
	m.calls = append(m.calls, mockCall{messages: messages, options: ai.ApplyOptions(opts...)})

	idx := len(m.calls) - 1
	if idx >= len(m.responses) {
		return mockResponse{content: "No more responses"}
	}
	resp := m.responses[idx]
	if resp.fn != nil {
		resp.content = resp.fn(messages)
	}
	return resp
}

func (m *mockProvider) Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	resp := m.record(messages, opts)
	if resp.err != nil {
		return nil, resp.err
	}
	return &ai.Response{
		Content:   resp.content,
		ToolCalls: resp.toolCalls,
		Usage:     ai.Usage{InputTokens: 10, OutputTokens: 20},
	}, nil
}

func (m *mockProvider) ChatStream(ctx context.Context, messages []ai.Message, opts ...ai.Option) (<-chan ai.StreamEvent, error) {
	resp := m.record(messages, opts)

	ch := make(chan ai.StreamEvent)
	go func() {
		defer close(ch)

		if resp.err != nil {
			ch <- ai.StreamEvent{Err: resp.err}
			return
		}

		// Character-by-character deltas exercise reassembly ordering.
		for _, c := range resp.content {
			select {
			case <-ctx.Done():
				ch <- ai.StreamEvent{Err: ctx.Err()}
				return
			case ch <- ai.StreamEvent{Delta: string(c)}:
			}
		}
		ch <- ai.StreamEvent{
			Done: true,
			Response: &ai.Response{
				Content:   resp.content,
				ToolCalls: resp.toolCalls,
				Usage:     ai.Usage{InputTokens: 10, OutputTokens: 20},
			},
		}
	}()
	return ch, nil
}

var _ ai.ChatProvider = (*mockProvider)(nil)

func newTestAgent(t *testing.T, provider ai.ChatProvider, opts ...Option) *Agent {
	t.Helper()
	a, err := New(provider, opts...)
	require.NoError(t, err)
	return a
}

func TestNew(t *testing.T) {
	t.Run("nil provider rejected", func(t *testing.T) {
		_, err := New(nil)
		assert.ErrorIs(t, err, ErrNilProvider)
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Temperature = 5

		_, err := New(&mockProvider{}, WithConfig(cfg))

		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "temperature", cfgErr.Key)
	})
}

func TestAgent_Chat(t *testing.T) {
	provider := &mockProvider{
		responses: []mockResponse{{content: "Hello! How can I help you?"}},
	}
	a := newTestAgent(t, provider)

	reply, err := a.Chat(context.Background(), "Hi")

	require.NoError(t, err)
	assert.Equal(t, "Hello! How can I help you?", reply)
	require.Len(t, provider.calls, 1)

	messages := provider.calls[0].messages
	require.Len(t, messages, 2)
	assert.Equal(t, ai.RoleSystem, messages[0].Role)
	assert.Equal(t, "You are a helpful assistant", messages[0].Content)
	assert.Equal(t, ai.RoleUser, messages[1].Role)
	assert.Equal(t, "Hi", messages[1].Content)
}

func TestAgent_SystemPrompt(t *testing.T) {
	t.Run("empty prompt omits the system message", func(t *testing.T) {
		provider := &mockProvider{responses: []mockResponse{{content: "ok"}}}
		cfg := DefaultConfig()
		cfg.SystemPrompt = ""
		a := newTestAgent(t, provider, WithConfig(cfg))

		_, err := a.Chat(context.Background(), "Hi")

		require.NoError(t, err)
		require.Len(t, provider.calls[0].messages, 1)
		assert.Equal(t, ai.RoleUser, provider.calls[0].messages[0].Role)
	})

	t.Run("date placeholder expands", func(t *testing.T) {
		provider := &mockProvider{responses: []mockResponse{{content: "ok"}}}
		cfg := DefaultConfig()
		cfg.SystemPrompt = "Today is __DATE__."
		a := newTestAgent(t, provider, WithConfig(cfg))

		_, err := a.Chat(context.Background(), "Hi")

		require.NoError(t, err)
		system := provider.calls[0].messages[0].Content
		assert.NotContains(t, system, "__DATE__")
		assert.Regexp(t, regexp.MustCompile(`^Today is \d{4}-\d{2}-\d{2} \((Mon|Tue|Wed|Thu|Fri|Sat|Sun)\)\.$`), system)
	})

	t.Run("placeholders preserved when disabled", func(t *testing.T) {
		provider := &mockProvider{responses: []mockResponse{{content: "ok"}}}
		cfg := DefaultConfig()
		cfg.SystemPrompt = "Today is __DATE__."
		cfg.EnableMagicPlaceholders = false
		a := newTestAgent(t, provider, WithConfig(cfg))

		_, err := a.Chat(context.Background(), "Hi")

		require.NoError(t, err)
		assert.Equal(t, "Today is __DATE__.", provider.calls[0].messages[0].Content)
	})
}

func TestAgent_StreamingMatchesNonStreaming(t *testing.T) {
	const answer = "The capital of France is Paris."

	nonStreaming := &mockProvider{responses: []mockResponse{{content: answer}}}
	plain := newTestAgent(t, nonStreaming)

	reply, err := plain.Chat(context.Background(), "Capital of France?")
	require.NoError(t, err)

	streaming := &mockProvider{responses: []mockResponse{{content: answer}}}
	cfg := DefaultConfig()
	cfg.Stream = true
	streamed := newTestAgent(t, streaming, WithConfig(cfg))

	var tokens []string
	streamed.OnNewChatToken(func(token string) {
		tokens = append(tokens, token)
	})

	streamedReply, err := streamed.Chat(context.Background(), "Capital of France?")
	require.NoError(t, err)

	assert.Equal(t, reply, streamedReply)
	assert.Equal(t, reply, strings.Join(tokens, ""))
}

func TestAgent_StreamError(t *testing.T) {
	provider := &mockProvider{
		responses: []mockResponse{{err: errors.New("connection reset")}},
	}
	cfg := DefaultConfig()
	cfg.Stream = true
	a := newTestAgent(t, provider, WithConfig(cfg))

	_, err := a.Chat(context.Background(), "Hi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestAgent_ToolCallRoundTrip(t *testing.T) {
	provider := &mockProvider{
		responses: []mockResponse{
			{
				content: "Let me check.",
				toolCalls: []ai.ToolCall{
					{ID: "call_1", Name: "get_weather", Arguments: `{"city":"Tokyo"}`},
				},
			},
			{content: "It is 22°C in Tokyo."},
		},
	}

	execCount := 0
	registry := tool.NewRegistry()
	registry.MustRegister(
		ai.Tool{Name: "get_weather", Description: "Get weather"},
		func(ctx context.Context, call ai.ToolCall) (string, error) {
			execCount++
			return `{"temp": 22}`, nil
		},
	)

	a := newTestAgent(t, provider, WithTools(registry))

	reply, err := a.Chat(context.Background(), "Weather in Tokyo?")

	require.NoError(t, err)
	assert.Equal(t, "It is 22°C in Tokyo.", reply)
	assert.Equal(t, 1, execCount)
	require.Len(t, provider.calls, 2)

	// The follow-up request carries the assistant tool-call message and
	// exactly one tool-result message after the original turn.
	followUp := provider.calls[1].messages
	require.Len(t, followUp, 4)
	assistant := followUp[2]
	assert.Equal(t, ai.RoleAssistant, assistant.Role)
	require.Len(t, assistant.ToolCalls, 1)
	assert.Equal(t, "get_weather", assistant.ToolCalls[0].Name)

	toolMsg := followUp[3]
	assert.Equal(t, ai.RoleTool, toolMsg.Role)
	require.Len(t, toolMsg.ToolResults, 1)
	assert.Equal(t, "call_1", toolMsg.ToolResults[0].ToolCallID)
	assert.Equal(t, `{"temp": 22}`, toolMsg.ToolResults[0].Content)
	assert.False(t, toolMsg.ToolResults[0].IsError)
}

func TestAgent_ToolRounds(t *testing.T) {
	t.Run("second round tool calls are not executed", func(t *testing.T) {
		provider := &mockProvider{
			responses: []mockResponse{
				{content: "Round 1", toolCalls: []ai.ToolCall{{ID: "c1", Name: "probe", Arguments: "{}"}}},
				{content: "Round 2", toolCalls: []ai.ToolCall{{ID: "c2", Name: "probe", Arguments: "{}"}}},
			},
		}

		execCount := 0
		registry := tool.NewRegistry()
		registry.MustRegister(
			ai.Tool{Name: "probe"},
			func(ctx context.Context, call ai.ToolCall) (string, error) {
				execCount++
				return "ok", nil
			},
		)

		a := newTestAgent(t, provider, WithTools(registry))

		resp, err := a.ChatResponse(context.Background(), "Go")

		require.NoError(t, err)
		assert.Len(t, provider.calls, 2)
		assert.Equal(t, 1, execCount)
		assert.Equal(t, "Round 2", resp.Content)
		// The bound was reached, so the second round's calls come back
		// to the caller unexecuted.
		require.Len(t, resp.ToolCalls, 1)
		assert.Equal(t, "c2", resp.ToolCalls[0].ID)
	})

	t.Run("execution disabled returns calls as-is", func(t *testing.T) {
		provider := &mockProvider{
			responses: []mockResponse{
				{content: "Calling", toolCalls: []ai.ToolCall{{ID: "c1", Name: "probe", Arguments: "{}"}}},
			},
		}

		execCount := 0
		registry := tool.NewRegistry()
		registry.MustRegister(
			ai.Tool{Name: "probe"},
			func(ctx context.Context, call ai.ToolCall) (string, error) {
				execCount++
				return "ok", nil
			},
		)

		cfg := DefaultConfig()
		cfg.ExecuteTools = false
		a := newTestAgent(t, provider, WithTools(registry), WithConfig(cfg))

		resp, err := a.ChatResponse(context.Background(), "Go")

		require.NoError(t, err)
		assert.Len(t, provider.calls, 1)
		assert.Equal(t, 0, execCount)
		require.Len(t, resp.ToolCalls, 1)
	})
}

func TestAgent_ToolErrors(t *testing.T) {
	t.Run("handler error becomes a result", func(t *testing.T) {
		provider := &mockProvider{
			responses: []mockResponse{
				{toolCalls: []ai.ToolCall{{ID: "c1", Name: "flaky", Arguments: "{}"}}},
				{content: "The tool failed."},
			},
		}

		registry := tool.NewRegistry()
		registry.MustRegister(
			ai.Tool{Name: "flaky"},
			func(ctx context.Context, call ai.ToolCall) (string, error) {
				return "", errors.New("boom")
			},
		)

		a := newTestAgent(t, provider, WithTools(registry))

		reply, err := a.Chat(context.Background(), "Go")

		require.NoError(t, err)
		assert.Equal(t, "The tool failed.", reply)

		toolMsg := provider.calls[1].messages[3]
		require.Len(t, toolMsg.ToolResults, 1)
		assert.Equal(t, "Error: boom", toolMsg.ToolResults[0].Content)
		assert.True(t, toolMsg.ToolResults[0].IsError)
	})

	t.Run("unregistered tool becomes a result", func(t *testing.T) {
		provider := &mockProvider{
			responses: []mockResponse{
				{toolCalls: []ai.ToolCall{{ID: "c1", Name: "ghost", Arguments: "{}"}}},
				{content: "No such tool."},
			},
		}

		a := newTestAgent(t, provider)

		_, err := a.Chat(context.Background(), "Go")

		require.NoError(t, err)
		toolMsg := provider.calls[1].messages[3]
		require.Len(t, toolMsg.ToolResults, 1)
		assert.True(t, toolMsg.ToolResults[0].IsError)
		assert.Contains(t, toolMsg.ToolResults[0].Content, "Error: ")
		assert.Contains(t, toolMsg.ToolResults[0].Content, "not found")
	})
}

func TestAgent_ToolCallObserver(t *testing.T) {
	provider := &mockProvider{
		responses: []mockResponse{
			{toolCalls: []ai.ToolCall{{ID: "c1", Name: "probe", Arguments: `{"x":1}`}}},
			{content: "Done"},
		},
	}

	var sequence []string
	registry := tool.NewRegistry()
	registry.MustRegister(
		ai.Tool{Name: "probe"},
		func(ctx context.Context, call ai.ToolCall) (string, error) {
			sequence = append(sequence, "executed")
			return "ok", nil
		},
	)

	a := newTestAgent(t, provider, WithTools(registry))
	a.OnToolCall(func(call ai.ToolCall) {
		sequence = append(sequence, "observed "+call.Name+" "+call.Arguments)
	})

	_, err := a.Chat(context.Background(), "Go")

	require.NoError(t, err)
	// The observer fires before the handler runs.
	assert.Equal(t, []string{`observed probe {"x":1}`, "executed"}, sequence)
}

func TestAgent_History(t *testing.T) {
	t.Run("disabled keeps calls isolated", func(t *testing.T) {
		provider := &mockProvider{
			responses: []mockResponse{{content: "First"}, {content: "Second"}},
		}
		a := newTestAgent(t, provider)

		_, err := a.Chat(context.Background(), "one")
		require.NoError(t, err)
		_, err = a.Chat(context.Background(), "two")
		require.NoError(t, err)

		// System message plus the current turn only.
		require.Len(t, provider.calls[1].messages, 2)
		assert.Equal(t, "two", provider.calls[1].messages[1].Content)
		assert.Empty(t, a.History())
	})

	t.Run("enabled carries prior exchange in order", func(t *testing.T) {
		provider := &mockProvider{
			responses: []mockResponse{{content: "First"}, {content: "Second"}},
		}
		cfg := DefaultConfig()
		cfg.EnableHistory = true
		a := newTestAgent(t, provider, WithConfig(cfg))

		_, err := a.Chat(context.Background(), "one")
		require.NoError(t, err)
		_, err = a.Chat(context.Background(), "two")
		require.NoError(t, err)

		second := provider.calls[1].messages
		require.Len(t, second, 4)
		assert.Equal(t, ai.RoleSystem, second[0].Role)
		assert.Equal(t, "one", second[1].Content)
		assert.Equal(t, ai.RoleAssistant, second[2].Role)
		assert.Equal(t, "First", second[2].Content)
		assert.Equal(t, "two", second[3].Content)

		history := a.History()
		require.Len(t, history, 4)
		assert.Equal(t, "one", history[0].Content)
		assert.Equal(t, "First", history[1].Content)
		assert.Equal(t, "two", history[2].Content)
		assert.Equal(t, "Second", history[3].Content)
	})

	t.Run("recalls a fact from an earlier turn", func(t *testing.T) {
		provider := &mockProvider{
			responses: []mockResponse{
				{content: "Nice!"},
				{fn: func(messages []ai.Message) string {
					for _, m := range messages {
						if strings.Contains(m.Text(), "blue") {
							return "Your favorite color is blue."
						}
					}
					return "I don't know."
				}},
			},
		}
		cfg := DefaultConfig()
		cfg.EnableHistory = true
		a := newTestAgent(t, provider, WithConfig(cfg))

		_, err := a.Chat(context.Background(), "My favorite color is blue.")
		require.NoError(t, err)

		reply, err := a.Chat(context.Background(), "What is my favorite color?")
		require.NoError(t, err)
		assert.Contains(t, reply, "blue")
	})

	t.Run("manual history helpers respect the gate", func(t *testing.T) {
		a := newTestAgent(t, &mockProvider{})
		a.AddUserHistory("hello")
		a.AddAIHistory("hi")
		assert.Empty(t, a.History())

		cfg := DefaultConfig()
		cfg.EnableHistory = true
		b := newTestAgent(t, &mockProvider{}, WithConfig(cfg))
		b.AddUserHistory("hello")
		b.AddAIHistory("hi")

		history := b.History()
		require.Len(t, history, 2)
		assert.Equal(t, ai.RoleUser, history[0].Role)
		assert.Equal(t, ai.RoleAssistant, history[1].Role)

		b.ClearHistory()
		assert.Empty(t, b.History())
	})
}

func TestAgent_UsageAccumulation(t *testing.T) {
	t.Run("across calls", func(t *testing.T) {
		provider := &mockProvider{
			responses: []mockResponse{{content: "a"}, {content: "b"}},
		}
		a := newTestAgent(t, provider)

		_, err := a.Chat(context.Background(), "one")
		require.NoError(t, err)
		assert.Equal(t, ai.Usage{InputTokens: 10, OutputTokens: 20}, a.Usage())

		_, err = a.Chat(context.Background(), "two")
		require.NoError(t, err)
		assert.Equal(t, ai.Usage{InputTokens: 20, OutputTokens: 40}, a.Usage())
	})

	t.Run("tool rounds count toward the total", func(t *testing.T) {
		provider := &mockProvider{
			responses: []mockResponse{
				{toolCalls: []ai.ToolCall{{ID: "c1", Name: "probe", Arguments: "{}"}}},
				{content: "Done"},
			},
		}
		registry := tool.NewRegistry()
		registry.MustRegister(ai.Tool{Name: "probe"}, func(ctx context.Context, call ai.ToolCall) (string, error) {
			return "ok", nil
		})
		a := newTestAgent(t, provider, WithTools(registry))

		resp, err := a.ChatResponse(context.Background(), "Go")

		require.NoError(t, err)
		assert.Equal(t, ai.Usage{InputTokens: 20, OutputTokens: 40}, resp.Usage)
		assert.Equal(t, ai.Usage{InputTokens: 20, OutputTokens: 40}, a.Usage())
	})
}

func TestAgent_FinishChatEvent(t *testing.T) {
	provider := &mockProvider{responses: []mockResponse{{content: "Hello"}}}
	a := newTestAgent(t, provider)

	var finished []*ai.Response
	var usageAtFinish ai.Usage
	a.OnFinishChat(func(resp *ai.Response) {
		finished = append(finished, resp)
		usageAtFinish = a.Usage()
	})

	_, err := a.Chat(context.Background(), "Hi")

	require.NoError(t, err)
	require.Len(t, finished, 1)
	require.NotNil(t, finished[0].InputMessage)
	assert.Equal(t, ai.RoleUser, finished[0].InputMessage.Role)
	assert.Equal(t, "Hi", finished[0].InputMessage.Text())
	// The agent's own bookkeeping ran before this observer.
	assert.Equal(t, ai.Usage{InputTokens: 10, OutputTokens: 20}, usageAtFinish)
}

func TestAgent_ProviderOptions(t *testing.T) {
	t.Run("config maps onto the request", func(t *testing.T) {
		provider := &mockProvider{responses: []mockResponse{{content: "ok"}}}
		seed := int64(7)
		cfg := DefaultConfig()
		cfg.Model = "claude-sonnet-4-5"
		cfg.Seed = &seed
		cfg.JSONOutput = true
		a := newTestAgent(t, provider, WithConfig(cfg))

		_, err := a.Chat(context.Background(), "Hi")

		require.NoError(t, err)
		opts := provider.calls[0].options
		assert.Equal(t, "claude-sonnet-4-5", opts.Model)
		assert.Equal(t, 1024, opts.MaxTokens)
		require.NotNil(t, opts.Temperature)
		assert.Equal(t, 0.0, *opts.Temperature)
		require.NotNil(t, opts.TopP)
		assert.Equal(t, 1.0, *opts.TopP)
		require.NotNil(t, opts.Seed)
		assert.Equal(t, int64(7), *opts.Seed)
		assert.Equal(t, ai.ResponseFormatJSON, opts.ResponseFormat)
	})

	t.Run("per-call overrides win", func(t *testing.T) {
		provider := &mockProvider{responses: []mockResponse{{content: "ok"}}}
		a := newTestAgent(t, provider)

		_, err := a.Chat(context.Background(), "Hi", WithTemperature(0.7), WithMaxTokens(99))

		require.NoError(t, err)
		opts := provider.calls[0].options
		assert.Equal(t, 99, opts.MaxTokens)
		require.NotNil(t, opts.Temperature)
		assert.Equal(t, 0.7, *opts.Temperature)
	})

	t.Run("registered tools attach with auto choice", func(t *testing.T) {
		provider := &mockProvider{responses: []mockResponse{{content: "ok"}}}
		registry := tool.NewRegistry()
		registry.MustRegister(ai.Tool{Name: "probe"}, func(ctx context.Context, call ai.ToolCall) (string, error) {
			return "ok", nil
		})
		a := newTestAgent(t, provider, WithTools(registry))

		_, err := a.Chat(context.Background(), "Hi")

		require.NoError(t, err)
		opts := provider.calls[0].options
		require.Len(t, opts.Tools, 1)
		assert.Equal(t, "probe", opts.Tools[0].Name)
		assert.Equal(t, ai.ToolChoiceAuto, opts.ToolChoice)
	})

	t.Run("use_tools disabled detaches tools", func(t *testing.T) {
		provider := &mockProvider{responses: []mockResponse{{content: "ok"}}}
		registry := tool.NewRegistry()
		registry.MustRegister(ai.Tool{Name: "probe"}, func(ctx context.Context, call ai.ToolCall) (string, error) {
			return "ok", nil
		})
		cfg := DefaultConfig()
		cfg.UseTools = false
		a := newTestAgent(t, provider, WithTools(registry), WithConfig(cfg))

		_, err := a.Chat(context.Background(), "Hi")

		require.NoError(t, err)
		assert.Empty(t, provider.calls[0].options.Tools)
	})
}

func TestAgent_ImageInput(t *testing.T) {
	provider := &mockProvider{responses: []mockResponse{{content: "A cat."}}}
	a := newTestAgent(t, provider)

	_, err := a.Chat(context.Background(), "What is in this picture?",
		WithImageURL("https://example.com/cat.png"))

	require.NoError(t, err)
	userMsg := provider.calls[0].messages[1]
	require.Len(t, userMsg.Parts, 2)
	assert.Equal(t, ai.ContentPartTypeText, userMsg.Parts[0].Type)
	assert.Equal(t, "What is in this picture?", userMsg.Parts[0].Text)
	assert.Equal(t, ai.ContentPartTypeImage, userMsg.Parts[1].Type)
	assert.Equal(t, "https://example.com/cat.png", userMsg.Parts[1].ImageURL)
}

func TestAgent_TokenObserverWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	a := newTestAgent(t, &mockProvider{}, WithLogger(logger))
	a.OnNewChatToken(func(token string) {})

	assert.Contains(t, buf.String(), "stream")
}
