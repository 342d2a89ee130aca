package agent

import (
	"log/slog"

	ai "github.com/y-lan/tinyagent"
	"github.com/y-lan/tinyagent/tool"
)

// Option configures an Agent at construction time.
type Option func(*Agent)

// WithConfig replaces the agent's configuration. The config is validated
// by New; an invalid config fails construction.
func WithConfig(cfg Config) Option {
	return func(a *Agent) {
		a.config = cfg
	}
}

// WithTools sets the tool registry whose tools are offered to the model.
func WithTools(registry *tool.Registry) Option {
	return func(a *Agent) {
		if registry != nil {
			a.registry = registry
		}
	}
}

// WithLogger sets the agent's logger. Without it the agent logs to stderr
// at debug level when the config is verbose and discards output otherwise.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Agent) {
		a.logger = logger
	}
}

// ChatOption overrides configuration for a single chat call.
type ChatOption func(*chatOptions)

type chatOptions struct {
	images      []ai.ContentPart
	temperature float64
	maxTokens   int
	stream      bool
}

// WithImageURL attaches an image by URL to the user turn.
func WithImageURL(url string) ChatOption {
	return func(o *chatOptions) {
		o.images = append(o.images, ai.NewImageURLPart(url))
	}
}

// WithImageBase64 attaches an inline base64 image to the user turn.
func WithImageBase64(data, mimeType string) ChatOption {
	return func(o *chatOptions) {
		o.images = append(o.images, ai.NewImageBase64Part(data, mimeType))
	}
}

// WithTemperature overrides the configured temperature for this call.
func WithTemperature(t float64) ChatOption {
	return func(o *chatOptions) {
		o.temperature = t
	}
}

// WithMaxTokens overrides the configured max tokens for this call.
func WithMaxTokens(n int) ChatOption {
	return func(o *chatOptions) {
		o.maxTokens = n
	}
}

// WithStream overrides the configured streaming mode for this call.
func WithStream(enabled bool) ChatOption {
	return func(o *chatOptions) {
		o.stream = enabled
	}
}

// resolveChatOptions seeds per-call settings from the config and applies
// the caller's overrides.
func (a *Agent) resolveChatOptions(opts ...ChatOption) *chatOptions {
	co := &chatOptions{
		temperature: a.config.Temperature,
		maxTokens:   a.config.MaxTokens,
		stream:      a.config.Stream,
	}
	for _, opt := range opts {
		opt(co)
	}
	return co
}
