package tinyagent

import "time"

// RetryConfig holds retry configuration parameters.
// Use DefaultRetryConfig() for sensible defaults or create custom configs.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts (default: 3).
	// The initial request counts as attempt 1.
	MaxAttempts int

	// InitialDelay is the delay before the first retry (default: 10s).
	// Each subsequent retry waits one additional InitialDelay, so the
	// backoff grows linearly: 10s, 20s, 30s, ...
	InitialDelay time.Duration

	// MaxDelay caps the delay between retries (default: 60s).
	MaxDelay time.Duration
}

// DefaultRetryConfig returns the default retry configuration:
// 3 attempts with linearly increasing delays of 10s capped at 60s.
// Only transient errors (rate limits, server errors, timeouts) are
// retried; a Retry-After hint from the provider overrides the computed
// delay.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  3,
		InitialDelay: 10 * time.Second,
		MaxDelay:     60 * time.Second,
	}
}

// DisabledRetryConfig returns a configuration that disables retries (single attempt).
func DisabledRetryConfig() RetryConfig {
	return RetryConfig{MaxAttempts: 1}
}

// NewRetryConfig creates a custom retry configuration.
func NewRetryConfig(maxAttempts int, initialDelay, maxDelay time.Duration) RetryConfig {
	return RetryConfig{
		MaxAttempts:  maxAttempts,
		InitialDelay: initialDelay,
		MaxDelay:     maxDelay,
	}
}
