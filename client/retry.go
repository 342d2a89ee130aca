package client

import (
	"context"

	ai "github.com/y-lan/tinyagent"
	"github.com/y-lan/tinyagent/internal/retry"
)

// retryProvider decorates a ChatProvider with the retry layer. Only
// transient errors are retried; stream retries cover connection
// establishment, not chunks of an already-open stream.
type retryProvider struct {
	inner ai.ChatProvider
	cfg   retry.Config
}

var _ ai.ChatProvider = (*retryProvider)(nil)

func withRetry(provider ai.ChatProvider, cfg ai.RetryConfig) ai.ChatProvider {
	return &retryProvider{
		inner: provider,
		cfg: retry.Config{
			MaxAttempts:  cfg.MaxAttempts,
			InitialDelay: cfg.InitialDelay,
			MaxDelay:     cfg.MaxDelay,
		},
	}
}

func (r *retryProvider) Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	return retry.Do(ctx, r.cfg, func() (*ai.Response, error) {
		return r.inner.Chat(ctx, messages, opts...)
	})
}

func (r *retryProvider) ChatStream(ctx context.Context, messages []ai.Message, opts ...ai.Option) (<-chan ai.StreamEvent, error) {
	return retry.DoStream(ctx, r.cfg, func() (<-chan ai.StreamEvent, error) {
		return r.inner.ChatStream(ctx, messages, opts...)
	})
}
