package agent

import (
	"errors"
	"fmt"
)

// ErrNilProvider is returned by New when no chat provider is supplied.
var ErrNilProvider = errors.New("agent: chat provider is nil")

// ConfigError reports an unknown or invalid configuration entry.
type ConfigError struct {
	Key string // the offending configuration key
	Msg string
}

// Error returns a message naming the offending key.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config key %q: %s", e.Key, e.Msg)
}
