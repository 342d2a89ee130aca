package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	ai "github.com/y-lan/tinyagent"
)

const defaultTavilyURL = "https://api.tavily.com/search"

// WebSearchOption configures the web search tool.
type WebSearchOption func(*webSearchConfig)

type webSearchConfig struct {
	apiKey      string
	baseURL     string
	client      *http.Client
	maxResults  int
	searchDepth string
	timeout     time.Duration
}

// WithAPIKey sets the Tavily API key.
// Defaults to the TAVILY_API_KEY environment variable.
func WithAPIKey(key string) WebSearchOption {
	return func(c *webSearchConfig) {
		c.apiKey = key
	}
}

// WithBaseURL overrides the search endpoint URL.
func WithBaseURL(url string) WebSearchOption {
	return func(c *webSearchConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) WebSearchOption {
	return func(c *webSearchConfig) {
		c.client = client
	}
}

// WithMaxResults limits the number of search results.
// Default is 10.
func WithMaxResults(n int) WebSearchOption {
	return func(c *webSearchConfig) {
		c.maxResults = n
	}
}

// WithSearchDepth sets the Tavily search depth ("basic" or "advanced").
// Default is "basic".
func WithSearchDepth(depth string) WebSearchOption {
	return func(c *webSearchConfig) {
		c.searchDepth = depth
	}
}

// WithSearchTimeout sets the request timeout.
// Default is 30 seconds.
func WithSearchTimeout(d time.Duration) WebSearchOption {
	return func(c *webSearchConfig) {
		c.timeout = d
	}
}

func applyWebSearchOpts(opts []WebSearchOption) *webSearchConfig {
	cfg := &webSearchConfig{
		baseURL:     defaultTavilyURL,
		maxResults:  10,
		searchDepth: "basic",
		timeout:     30 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.apiKey == "" {
		cfg.apiKey = os.Getenv("TAVILY_API_KEY")
	}
	if cfg.client == nil {
		cfg.client = &http.Client{Timeout: cfg.timeout}
	}
	return cfg
}

// webSearchArgs defines arguments for the web search tool.
type webSearchArgs struct {
	Query string `json:"query" desc:"The query to search" required:"true"`
}

// tavilyRequest is the Tavily search API request body.
type tavilyRequest struct {
	APIKey            string   `json:"api_key"`
	Query             string   `json:"query"`
	SearchDepth       string   `json:"search_depth"`
	IncludeAnswer     bool     `json:"include_answer"`
	IncludeImages     bool     `json:"include_images"`
	IncludeRawContent bool     `json:"include_raw_content"`
	MaxResults        int      `json:"max_results"`
	IncludeDomains    []string `json:"include_domains"`
	ExcludeDomains    []string `json:"exclude_domains"`
}

// tavilyResponse is the subset of the Tavily response the tool consumes.
type tavilyResponse struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

// NewWebSearchTool creates a tool that searches the web via the Tavily API.
// Request failures are reported as tool content rather than errors so the
// model can react to them.
func NewWebSearchTool(opts ...WebSearchOption) (ai.Tool, Handler) {
	cfg := applyWebSearchOpts(opts)

	t := ai.Tool{
		Name:        "TavilySearch",
		Description: "A tool for searching the web",
		Parameters:  MustSchemaFor[webSearchArgs](),
	}

	handler := func(ctx context.Context, call ai.ToolCall) (string, error) {
		var args webSearchArgs
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			return "", err
		}

		result, err := cfg.search(ctx, args.Query)
		if err != nil {
			return fmt.Sprintf("Error occurred while searching: %v", err), nil
		}
		return result, nil
	}

	return t, handler
}

func (c *webSearchConfig) search(ctx context.Context, query string) (string, error) {
	body, err := json.Marshal(tavilyRequest{
		APIKey:            c.apiKey,
		Query:             query,
		SearchDepth:       c.searchDepth,
		IncludeAnswer:     false,
		IncludeImages:     false,
		IncludeRawContent: false,
		MaxResults:        c.maxResults,
		IncludeDomains:    []string{},
		ExcludeDomains:    []string{},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("search request failed with status %d", resp.StatusCode)
	}

	var parsed tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	formatted := make([]string, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		formatted = append(formatted, fmt.Sprintf("Title: %s\nURL: %s\nContent: %s\n", r.Title, r.URL, r.Content))
	}

	return strings.Join(formatted, "\n\n"), nil
}
