package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	ai "github.com/y-lan/tinyagent"
)

// Config holds server settings read from the environment.
type Config struct {
	Port            string
	Provider        ai.Provider
	Model           string
	MaxRetry        int
	Timeout         time.Duration
	EnableDemoTools bool
}

// LoadConfig reads server settings from environment variables and
// validates the provider selection.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:            envOr("AGUI_PORT", "8080"),
		Provider:        ai.Provider(os.Getenv("TINYAGENT_PROVIDER")),
		Model:           os.Getenv("TINYAGENT_MODEL"),
		MaxRetry:        3,
		Timeout:         2 * time.Minute,
		EnableDemoTools: true,
	}

	if cfg.Provider == "" {
		return nil, fmt.Errorf("TINYAGENT_PROVIDER is required (one of %v)", ai.Providers())
	}
	if err := cfg.Provider.Validate(); err != nil {
		return nil, err
	}

	if v := os.Getenv("TINYAGENT_MAX_RETRY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid TINYAGENT_MAX_RETRY: %q", v)
		}
		cfg.MaxRetry = n
	}

	if v := os.Getenv("TINYAGENT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TINYAGENT_TIMEOUT: %q", v)
		}
		cfg.Timeout = d
	}

	if v := os.Getenv("TINYAGENT_DEMO_TOOLS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TINYAGENT_DEMO_TOOLS: %q", v)
		}
		cfg.EnableDemoTools = b
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
