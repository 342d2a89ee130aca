package tinyagent

import "encoding/json"

// ResponseFormat selects the shape of the model's output.
type ResponseFormat string

const (
	// ResponseFormatText is the default free-form text output.
	ResponseFormatText ResponseFormat = ""
	// ResponseFormatJSON asks the model to emit a single JSON object.
	ResponseFormatJSON ResponseFormat = "json"
)

// ResponseSchema constrains the model's output to a JSON schema.
// Providers that support structured output enforce it natively; the
// Anthropic-style provider enforces it through a forced tool call.
type ResponseSchema struct {
	// Name identifies the schema to the provider (defaults to "response_schema").
	Name string
	// Description explains the expected output to the model.
	Description string
	// Schema is the JSON Schema document for the output object.
	Schema json.RawMessage
}

// Options contains configuration for a chat request.
type Options struct {
	// Model is the model identifier. Empty selects the provider default.
	Model string
	// MaxTokens caps the generated output length. Zero selects a default.
	MaxTokens int
	// Temperature is the sampling temperature. Nil leaves the provider default.
	Temperature *float64
	// TopP is the nucleus sampling cutoff. Nil leaves the provider default.
	TopP *float64
	// Seed requests deterministic sampling where the provider supports it.
	Seed *int64
	// Tools lists the function definitions offered to the model.
	Tools []Tool
	// ToolChoice controls how the model may use Tools.
	ToolChoice ToolChoice
	// ResponseFormat selects free-form text or JSON output.
	ResponseFormat ResponseFormat
	// ResponseSchema constrains JSON output to a schema. Takes precedence
	// over ResponseFormat when set.
	ResponseSchema *ResponseSchema
}

// Option is a functional option for configuring chat requests.
type Option func(*Options)

// WithModel sets the model to use for the request.
func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// WithMaxTokens sets the maximum number of tokens to generate.
func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// WithTemperature sets the sampling temperature (0.0 to 2.0).
func WithTemperature(t float64) Option {
	return func(o *Options) {
		o.Temperature = &t
	}
}

// WithTopP sets the nucleus sampling cutoff (0.0 to 1.0).
func WithTopP(p float64) Option {
	return func(o *Options) {
		o.TopP = &p
	}
}

// WithSeed requests deterministic sampling. Providers without seed
// support ignore it.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = &seed
	}
}

// WithTools sets the tools available to the model for this request.
func WithTools(tools ...Tool) Option {
	return func(o *Options) {
		o.Tools = tools
	}
}

// WithToolChoice controls how the model uses the provided tools.
func WithToolChoice(choice ToolChoice) Option {
	return func(o *Options) {
		o.ToolChoice = choice
	}
}

// WithJSONOutput asks the model to emit a single JSON object.
func WithJSONOutput() Option {
	return func(o *Options) {
		o.ResponseFormat = ResponseFormatJSON
	}
}

// WithResponseSchema constrains the output to a JSON schema.
func WithResponseSchema(s *ResponseSchema) Option {
	return func(o *Options) {
		o.ResponseSchema = s
	}
}

// ApplyOptions applies functional options to an Options struct.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
