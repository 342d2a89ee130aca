package tinyagent

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorCategories(t *testing.T) {
	tests := []struct {
		name      string
		err       *Error
		category  ErrorCategory
		retryable bool
	}{
		{
			name:      "transient error",
			err:       NewTransientError("rate limited", 429, nil),
			category:  ErrorTransient,
			retryable: true,
		},
		{
			name:      "permanent error",
			err:       NewPermanentError("invalid API key", 401, nil),
			category:  ErrorPermanent,
			retryable: false,
		},
		{
			name:      "user input error",
			err:       NewUserInputError("bad request", 400, nil),
			category:  ErrorUserInput,
			retryable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, tt.err.Category())
			assert.Equal(t, tt.retryable, tt.err.Retryable())
		})
	}
}

func TestErrorMessage(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := NewPermanentError("something failed", 500, nil)
		assert.Equal(t, "something failed", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := NewTransientError("request failed", 503, cause)
		assert.Equal(t, "request failed: connection reset", err.Error())
		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, cause))
	})
}

func TestErrorRetryAfter(t *testing.T) {
	err := NewTransientErrorWithRetry("rate limited", 429, 30*time.Second, nil)
	assert.Equal(t, 30*time.Second, err.RetryAfter())
	assert.Equal(t, 429, err.StatusCode())
	assert.True(t, err.Retryable())
}

func TestCategoryHelpers(t *testing.T) {
	t.Run("direct categorized errors", func(t *testing.T) {
		assert.True(t, IsTransient(NewTransientError("x", 429, nil)))
		assert.True(t, IsPermanent(NewPermanentError("x", 401, nil)))
		assert.True(t, IsUserInput(NewUserInputError("x", 400, nil)))
	})

	t.Run("wrapped categorized errors", func(t *testing.T) {
		inner := NewTransientError("rate limited", 429, nil)
		wrapped := fmt.Errorf("chat failed: %w", inner)
		assert.True(t, IsTransient(wrapped))
		assert.Equal(t, 429, StatusCodeOf(wrapped))
	})

	t.Run("plain errors are uncategorized", func(t *testing.T) {
		err := errors.New("plain")
		assert.False(t, IsTransient(err))
		assert.False(t, IsPermanent(err))
		assert.False(t, IsUserInput(err))
		assert.Zero(t, StatusCodeOf(err))
		assert.Zero(t, RetryAfterOf(err))
	})
}

func TestUnsupportedContentError(t *testing.T) {
	err := &UnsupportedContentError{Tag: "video"}
	assert.Equal(t, `unsupported content part type: "video"`, err.Error())
}

func TestUnsupportedParamTypeError(t *testing.T) {
	err := &UnsupportedParamTypeError{Field: "callback", Kind: "func"}
	assert.Equal(t, `unsupported parameter type func for field "callback"`, err.Error())
}

func TestImageError(t *testing.T) {
	t.Run("formats op and url", func(t *testing.T) {
		err := &ImageError{Op: "fetch", URL: "https://example.com/a.png", Err: errors.New("connection refused")}
		assert.Equal(t, "image fetch error for https://example.com/a.png: connection refused", err.Error())
	})

	t.Run("unwraps cause", func(t *testing.T) {
		cause := errors.New("bad data")
		err := &ImageError{Op: "decode", URL: "base64", Err: cause}
		assert.True(t, errors.Is(err, cause))
	})
}
