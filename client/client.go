package client

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
	ai "github.com/y-lan/tinyagent"
	"github.com/y-lan/tinyagent/internal/provider/anthropic"
	"github.com/y-lan/tinyagent/internal/provider/google"
	"github.com/y-lan/tinyagent/internal/provider/openai"
)

// Environment variables consulted by ConfigFromEnv.
const (
	EnvAnthropicAPIKey = "ANTHROPIC_API_KEY"
	EnvOpenAIAPIKey    = "OPENAI_API_KEY"
	EnvGeminiAPIKey    = "GEMINI_API_KEY"
)

// APIKeys holds API keys for each provider. Only the providers actually
// used need a key; requesting a provider without one fails with
// ErrMissingAPIKey.
type APIKeys struct {
	Anthropic string
	OpenAI    string
	Gemini    string
}

// Config holds configuration for creating a Client.
type Config struct {
	// APIKeys contains authentication keys per provider.
	APIKeys APIKeys

	// Retry controls how transient provider errors are retried. The zero
	// value selects ai.DefaultRetryConfig.
	Retry ai.RetryConfig
}

// Client hands out chat providers, constructing each one lazily on first
// use and caching it for the lifetime of the client. Every provider it
// returns is wrapped with the retry layer. Safe for concurrent use.
type Client struct {
	keys  APIKeys
	retry ai.RetryConfig

	mu              sync.RWMutex
	anthropicClient ai.ChatProvider
	openaiClient    ai.ChatProvider
	geminiClient    ai.ChatProvider
	geminiInitErr   error
}

// New creates a client from the given configuration.
func New(cfg Config) (*Client, error) {
	retryCfg := cfg.Retry
	if retryCfg == (ai.RetryConfig{}) {
		retryCfg = ai.DefaultRetryConfig()
	}
	if retryCfg.MaxAttempts < 1 {
		return nil, fmt.Errorf("client: retry MaxAttempts must be at least 1, got %d", retryCfg.MaxAttempts)
	}
	return &Client{keys: cfg.APIKeys, retry: retryCfg}, nil
}

// ConfigFromEnv builds a Config from the process environment. A .env file
// in the working directory is loaded first when present. Keys are read
// from ANTHROPIC_API_KEY, OPENAI_API_KEY, and GEMINI_API_KEY.
func ConfigFromEnv() Config {
	_ = godotenv.Load()
	return Config{
		APIKeys: APIKeys{
			Anthropic: os.Getenv(EnvAnthropicAPIKey),
			OpenAI:    os.Getenv(EnvOpenAIAPIKey),
			Gemini:    os.Getenv(EnvGeminiAPIKey),
		},
	}
}

// NewFromEnv creates a client configured from the environment.
func NewFromEnv() (*Client, error) {
	return New(ConfigFromEnv())
}

// ChatProvider returns the chat provider for p, constructing it on first
// use. Repeated calls for the same provider return the same instance.
// The context is only used while constructing the Gemini client; the
// other providers ignore it.
func (c *Client) ChatProvider(ctx context.Context, p ai.Provider) (ai.ChatProvider, error) {
	switch p {
	case ai.ProviderAnthropic:
		return c.anthropicProvider()
	case ai.ProviderOpenAI:
		return c.openaiProvider()
	case ai.ProviderGemini:
		return c.geminiProvider(ctx)
	default:
		return nil, &ErrUnknownProvider{Provider: p}
	}
}

func (c *Client) anthropicProvider() (ai.ChatProvider, error) {
	c.mu.RLock()
	if c.anthropicClient != nil {
		defer c.mu.RUnlock()
		return c.anthropicClient, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.anthropicClient != nil {
		return c.anthropicClient, nil
	}
	if c.keys.Anthropic == "" {
		return nil, &ErrMissingAPIKey{Provider: ai.ProviderAnthropic, EnvVar: EnvAnthropicAPIKey}
	}
	c.anthropicClient = withRetry(anthropic.New(c.keys.Anthropic), c.retry)
	return c.anthropicClient, nil
}

func (c *Client) openaiProvider() (ai.ChatProvider, error) {
	c.mu.RLock()
	if c.openaiClient != nil {
		defer c.mu.RUnlock()
		return c.openaiClient, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.openaiClient != nil {
		return c.openaiClient, nil
	}
	if c.keys.OpenAI == "" {
		return nil, &ErrMissingAPIKey{Provider: ai.ProviderOpenAI, EnvVar: EnvOpenAIAPIKey}
	}
	c.openaiClient = withRetry(openai.New(c.keys.OpenAI), c.retry)
	return c.openaiClient, nil
}

// geminiProvider caches a failed initialization as well, so a client
// pointed at a broken environment fails the same way on every call
// instead of re-dialing.
func (c *Client) geminiProvider(ctx context.Context) (ai.ChatProvider, error) {
	c.mu.RLock()
	if c.geminiClient != nil {
		defer c.mu.RUnlock()
		return c.geminiClient, nil
	}
	if c.geminiInitErr != nil {
		defer c.mu.RUnlock()
		return nil, c.geminiInitErr
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.geminiClient != nil {
		return c.geminiClient, nil
	}
	if c.geminiInitErr != nil {
		return nil, c.geminiInitErr
	}
	if c.keys.Gemini == "" {
		return nil, &ErrMissingAPIKey{Provider: ai.ProviderGemini, EnvVar: EnvGeminiAPIKey}
	}

	inner, err := google.New(ctx, c.keys.Gemini)
	if err != nil {
		c.geminiInitErr = fmt.Errorf("initializing gemini client: %w", err)
		return nil, c.geminiInitErr
	}
	c.geminiClient = withRetry(inner, c.retry)
	return c.geminiClient, nil
}
