package agent

import (
	"fmt"
	"sort"
	"time"
)

// Config holds the agent's behavior settings. The key set is closed:
// ParseConfig rejects any key outside this set with a ConfigError naming
// the offender.
type Config struct {
	// Model is the model identifier. Empty selects the provider default.
	Model string

	// SystemPrompt is prepended to every request as a system message.
	// Set to empty to omit the system message entirely.
	SystemPrompt string

	// Temperature is the sampling temperature, sent on every request.
	Temperature float64

	// TopP is the nucleus sampling cutoff, sent on every request.
	TopP float64

	// Seed requests deterministic sampling. Nil leaves it unset.
	Seed *int64

	// MaxTokens caps the generated output length per round.
	MaxTokens int

	// JSONOutput selects the provider's JSON response mode.
	JSONOutput bool

	// EnableHistory carries prior exchanges into subsequent requests.
	EnableHistory bool

	// MaxRetry is the attempt budget handed to the client retry layer.
	MaxRetry int

	// Timeout bounds a full Chat call including tool rounds.
	Timeout time.Duration

	// Stream enables token streaming; tokens flow to OnNewChatToken observers.
	Stream bool

	// EnableMagicPlaceholders expands placeholders such as __DATE__ in the
	// system prompt at request time.
	EnableMagicPlaceholders bool

	// Verbose routes debug logging to stderr.
	Verbose bool

	// UseTools attaches registered tools to outgoing requests.
	UseTools bool

	// ExecuteTools runs requested tool calls and feeds results back to the
	// model. When false, tool calls are returned to the caller unexecuted.
	ExecuteTools bool
}

// DefaultConfig returns the default agent configuration.
func DefaultConfig() Config {
	return Config{
		SystemPrompt:            "You are a helpful assistant",
		Temperature:             0,
		TopP:                    1,
		MaxTokens:               1024,
		MaxRetry:                16,
		Timeout:                 60 * time.Second,
		EnableMagicPlaceholders: true,
		UseTools:                true,
		ExecuteTools:            true,
	}
}

// ParseConfig builds a Config from a loose key/value map, starting from
// DefaultConfig. Keys follow the snake_case wire names (model,
// system_prompt, temperature, top_p, seed, max_tokens, json_output,
// enable_history, max_retry, timeout, stream, enable_magic_placeholders,
// verbose, use_tools, execute_tools). An unknown key or a value of the
// wrong type fails with a ConfigError naming the key. Numeric timeout
// values are seconds.
func ParseConfig(raw map[string]any) (Config, error) {
	cfg := DefaultConfig()

	// Sorted iteration keeps the reported key deterministic when more
	// than one entry is invalid.
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := raw[key]
		var err error

		switch key {
		case "model":
			cfg.Model, err = asString(key, value)
		case "system_prompt":
			cfg.SystemPrompt, err = asString(key, value)
		case "temperature":
			cfg.Temperature, err = asFloat(key, value)
		case "top_p":
			cfg.TopP, err = asFloat(key, value)
		case "seed":
			var seed int64
			seed, err = asInt64(key, value)
			if err == nil {
				cfg.Seed = &seed
			}
		case "max_tokens":
			cfg.MaxTokens, err = asInt(key, value)
		case "json_output":
			cfg.JSONOutput, err = asBool(key, value)
		case "enable_history":
			cfg.EnableHistory, err = asBool(key, value)
		case "max_retry":
			cfg.MaxRetry, err = asInt(key, value)
		case "timeout":
			var secs float64
			secs, err = asFloat(key, value)
			if err == nil {
				cfg.Timeout = time.Duration(secs * float64(time.Second))
			}
		case "stream":
			cfg.Stream, err = asBool(key, value)
		case "enable_magic_placeholders":
			cfg.EnableMagicPlaceholders, err = asBool(key, value)
		case "verbose":
			cfg.Verbose, err = asBool(key, value)
		case "use_tools":
			cfg.UseTools, err = asBool(key, value)
		case "execute_tools":
			cfg.ExecuteTools, err = asBool(key, value)
		default:
			return Config{}, &ConfigError{Key: key, Msg: "unknown key"}
		}

		if err != nil {
			return Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges. It returns a ConfigError naming the first
// offending key.
func (c Config) Validate() error {
	if c.Temperature < 0 || c.Temperature > 2 {
		return &ConfigError{Key: "temperature", Msg: "must be between 0 and 2"}
	}
	if c.TopP <= 0 || c.TopP > 1 {
		return &ConfigError{Key: "top_p", Msg: "must be greater than 0 and at most 1"}
	}
	if c.MaxTokens <= 0 {
		return &ConfigError{Key: "max_tokens", Msg: "must be positive"}
	}
	if c.MaxRetry < 0 {
		return &ConfigError{Key: "max_retry", Msg: "must not be negative"}
	}
	if c.Timeout < 0 {
		return &ConfigError{Key: "timeout", Msg: "must not be negative"}
	}
	return nil
}

func asString(key string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", typeError(key, "string", value)
	}
	return s, nil
}

func asBool(key string, value any) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, typeError(key, "bool", value)
	}
	return b, nil
}

// asFloat accepts both Go numeric literals and the float64 values JSON
// decoding produces.
func asFloat(key string, value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}
	return 0, typeError(key, "number", value)
}

func asInt(key string, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, &ConfigError{Key: key, Msg: "must be an integer"}
		}
		return int(v), nil
	}
	return 0, typeError(key, "integer", value)
}

func asInt64(key string, value any) (int64, error) {
	n, err := asInt(key, value)
	return int64(n), err
}

func typeError(key, want string, got any) *ConfigError {
	return &ConfigError{Key: key, Msg: fmt.Sprintf("expected %s, got %T", want, got)}
}
