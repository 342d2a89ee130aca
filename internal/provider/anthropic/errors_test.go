package anthropic

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	ai "github.com/y-lan/tinyagent"
)

func TestCategorizeStatusCode(t *testing.T) {
	tests := []struct {
		code     int
		expected ai.ErrorCategory
	}{
		{429, ai.ErrorTransient},
		{500, ai.ErrorTransient},
		{503, ai.ErrorTransient},
		{529, ai.ErrorTransient},
		{401, ai.ErrorPermanent},
		{403, ai.ErrorPermanent},
		{400, ai.ErrorUserInput},
		{404, ai.ErrorUserInput},
		{422, ai.ErrorUserInput},
		{418, ai.ErrorPermanent},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, categorizeStatusCode(tt.code), "status %d", tt.code)
	}
}

func TestParseRetryAfter(t *testing.T) {
	t.Run("seconds", func(t *testing.T) {
		resp := &http.Response{Header: http.Header{"Retry-After": []string{"30"}}}
		assert.Equal(t, 30*time.Second, parseRetryAfter(resp))
	})

	t.Run("http date", func(t *testing.T) {
		future := time.Now().Add(90 * time.Second).UTC().Format(http.TimeFormat)
		resp := &http.Response{Header: http.Header{"Retry-After": []string{future}}}
		got := parseRetryAfter(resp)
		assert.Greater(t, got, 80*time.Second)
		assert.LessOrEqual(t, got, 90*time.Second)
	})

	t.Run("absent or invalid", func(t *testing.T) {
		assert.Zero(t, parseRetryAfter(nil))
		assert.Zero(t, parseRetryAfter(&http.Response{Header: http.Header{}}))
		resp := &http.Response{Header: http.Header{"Retry-After": []string{"soon"}}}
		assert.Zero(t, parseRetryAfter(resp))
	})
}
