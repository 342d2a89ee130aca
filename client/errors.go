package client

import (
	"fmt"

	ai "github.com/y-lan/tinyagent"
)

// ErrMissingAPIKey is returned when a provider is requested but no API key
// is configured for it.
type ErrMissingAPIKey struct {
	Provider ai.Provider
	EnvVar   string
}

func (e *ErrMissingAPIKey) Error() string {
	return fmt.Sprintf("no API key configured for %s (set %s)", e.Provider, e.EnvVar)
}

// ErrUnknownProvider is returned when a provider outside the supported set
// is requested.
type ErrUnknownProvider struct {
	Provider ai.Provider
}

func (e *ErrUnknownProvider) Error() string {
	return fmt.Sprintf("unknown provider: %q", string(e.Provider))
}
