package tool

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ai "github.com/y-lan/tinyagent"
)

func TestCalculatorTool(t *testing.T) {
	_, handler := NewCalculatorTool()

	run := func(expr string) (string, error) {
		args, _ := json.Marshal(map[string]string{"expr": expr})
		return handler(context.Background(), ai.ToolCall{
			ID:        "call_1",
			Name:      "Calculator",
			Arguments: string(args),
		})
	}

	t.Run("evaluates basic arithmetic", func(t *testing.T) {
		tests := []struct {
			expr string
			want string
		}{
			{"2 + 3", "5"},
			{"2 + 3 * 4", "14"},
			{"(2 + 3) * 4", "20"},
			{"7 / 2", "3.5"},
			{"10 - 4 - 3", "3"},
			{"-5 + 3", "-2"},
			{"2.5 * 2", "5"},
		}

		for _, tt := range tests {
			result, err := run(tt.expr)
			require.NoError(t, err, "expr %q", tt.expr)
			assert.Equal(t, tt.want, result, "expr %q", tt.expr)
		}
	})

	t.Run("rejects unsafe characters", func(t *testing.T) {
		_, err := run("2 + x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid characters")
	})

	t.Run("rejects division by zero", func(t *testing.T) {
		_, err := run("1 / 0")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "division by zero")
	})

	t.Run("rejects malformed expressions", func(t *testing.T) {
		_, err := run("2 +")
		assert.Error(t, err)
	})

	t.Run("declares expr as required", func(t *testing.T) {
		tl, _ := NewCalculatorTool()

		var schema map[string]any
		require.NoError(t, json.Unmarshal(tl.Parameters, &schema))
		assert.Equal(t, "object", schema["type"])

		required := schema["required"].([]any)
		assert.Equal(t, []any{"expr"}, required)
	})

	t.Run("handler error surfaces as Error result via registry", func(t *testing.T) {
		registry := NewRegistry().Add(WithTool(NewCalculatorTool()))

		result, err := registry.Execute(context.Background(), ai.ToolCall{
			ID:        "call_2",
			Name:      "Calculator",
			Arguments: `{"expr": "1 / 0"}`,
		})

		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, result.Content, "Error: ")
	})
}

func TestCurrentTimeTool(t *testing.T) {
	_, handler := NewCurrentTimeTool()

	run := func(tz string) (string, error) {
		args, _ := json.Marshal(map[string]string{"timezone": tz})
		return handler(context.Background(), ai.ToolCall{
			ID:        "call_1",
			Name:      "current_time",
			Arguments: string(args),
		})
	}

	t.Run("reports time in UTC", func(t *testing.T) {
		result, err := run("UTC")
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} UTC$`), result)
	})

	t.Run("defaults to UTC when timezone empty", func(t *testing.T) {
		result, err := run("")
		require.NoError(t, err)
		assert.Contains(t, result, "UTC")
	})

	t.Run("rejects unknown timezone", func(t *testing.T) {
		_, err := run("Not/AZone")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid timezone: Not/AZone")
	})
}

func TestWebSearchTool(t *testing.T) {
	t.Run("formats search results", func(t *testing.T) {
		var gotBody tavilyRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_ = json.NewEncoder(w).Encode(map[string]any{
				"results": []map[string]string{
					{"title": "Go", "url": "https://go.dev", "content": "The Go programming language"},
					{"title": "Tavily", "url": "https://tavily.com", "content": "Search API"},
				},
			})
		}))
		defer server.Close()

		_, handler := NewWebSearchTool(
			WithBaseURL(server.URL),
			WithAPIKey("test-key"),
			WithMaxResults(5),
		)

		result, err := handler(context.Background(), ai.ToolCall{
			ID:        "call_1",
			Name:      "TavilySearch",
			Arguments: `{"query": "golang"}`,
		})

		require.NoError(t, err)
		assert.Contains(t, result, "Title: Go\nURL: https://go.dev\nContent: The Go programming language")
		assert.Contains(t, result, "Title: Tavily")

		assert.Equal(t, "test-key", gotBody.APIKey)
		assert.Equal(t, "golang", gotBody.Query)
		assert.Equal(t, "basic", gotBody.SearchDepth)
		assert.Equal(t, 5, gotBody.MaxResults)
	})

	t.Run("request failure is reported as content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		_, handler := NewWebSearchTool(WithBaseURL(server.URL), WithAPIKey("test-key"))

		result, err := handler(context.Background(), ai.ToolCall{
			ID:        "call_1",
			Name:      "TavilySearch",
			Arguments: `{"query": "golang"}`,
		})

		require.NoError(t, err)
		assert.Contains(t, result, "Error occurred while searching")
	})
}
