package anthropic

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	ai "github.com/y-lan/tinyagent"
)

// DefaultModel is used when neither the client nor the request names a model.
const DefaultModel = "claude-sonnet-4-5"

// jsonPrefill seeds the assistant turn for plain JSON mode. The model
// continues from the opening brace, which must be restored on the first
// text block of the reply.
const jsonPrefill = "{"

// Client wraps the Anthropic SDK to implement ai.ChatProvider.
type Client struct {
	client *anthropic.Client
	model  string
}

// New creates a new Anthropic client with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	c := &Client{
		client: &client,
		model:  DefaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClientOption configures the Anthropic client.
type ClientOption func(*Client)

// WithModel sets the default model for requests.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// buildParams assembles the request params shared by Chat and ChatStream.
// The returned prefill is non-empty when plain JSON mode seeded the
// assistant turn; it must be prepended to the first text block of the
// response.
func (c *Client) buildParams(messages []ai.Message, options *ai.Options) (anthropic.MessageNewParams, string, error) {
	model := c.model
	if options.Model != "" {
		model = options.Model
	}

	maxTokens := int64(4096)
	if options.MaxTokens > 0 {
		maxTokens = int64(options.MaxTokens)
	}

	msgs, system, err := convertMessages(messages)
	if err != nil {
		return anthropic.MessageNewParams{}, "", err
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages:  msgs,
	}
	if len(system) > 0 {
		params.System = system
	}
	if options.Temperature != nil {
		params.Temperature = anthropic.Float(*options.Temperature)
	}
	if options.TopP != nil {
		params.TopP = anthropic.Float(*options.TopP)
	}

	prefill := ""
	switch {
	case options.ResponseSchema != nil:
		// Structured output is enforced through a forced tool call.
		jsonTool, jsonToolChoice := buildJSONTool(options.ResponseSchema)
		params.Tools = append(convertTools(options.Tools), jsonTool)
		params.ToolChoice = jsonToolChoice
	case len(options.Tools) > 0:
		params.Tools = convertTools(options.Tools)
		if options.ToolChoice != "" && options.ToolChoice != ai.ToolChoiceNone {
			params.ToolChoice = convertToolChoice(options.ToolChoice)
		}
	case options.ResponseFormat == ai.ResponseFormatJSON:
		// Plain JSON mode: prefill the assistant turn with an opening
		// brace so the model completes a bare JSON object.
		prefill = jsonPrefill
		params.Messages = append(params.Messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(jsonPrefill)))
	}

	return params, prefill, nil
}

// Chat sends a conversation and returns a complete response.
func (c *Client) Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	options := ai.ApplyOptions(opts...)
	params, prefill, err := c.buildParams(messages, options)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, wrapError(err)
	}

	return convertResponse(resp, prefill, options.ResponseSchema != nil), nil
}

// ChatStream sends a conversation and returns a channel of streaming events.
func (c *Client) ChatStream(ctx context.Context, messages []ai.Message, opts ...ai.Option) (<-chan ai.StreamEvent, error) {
	options := ai.ApplyOptions(opts...)
	params, prefill, err := c.buildParams(messages, options)
	if err != nil {
		return nil, err
	}

	stream := c.client.Messages.NewStreaming(ctx, params)
	ch := make(chan ai.StreamEvent)

	go func() {
		defer close(ch)
		var acc anthropic.Message

		for stream.Next() {
			event := stream.Current()
			acc.Accumulate(event)

			if event.Type == "content_block_delta" {
				delta := event.AsContentBlockDelta()
				if textDelta := delta.Delta.AsTextDelta(); textDelta.Type == "text_delta" {
					ch <- ai.StreamEvent{
						Delta: textDelta.Text,
					}
				}
			}
		}

		if err := stream.Err(); err != nil {
			ch <- ai.StreamEvent{Err: wrapError(err)}
			return
		}

		ch <- ai.StreamEvent{
			Done:     true,
			Response: convertResponse(&acc, prefill, options.ResponseSchema != nil),
		}
	}()

	return ch, nil
}

var _ ai.ChatProvider = (*Client)(nil)
