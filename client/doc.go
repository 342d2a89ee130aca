// Package client wires up provider chat clients from a single
// configuration.
//
// The Client holds API keys for every supported provider, constructs each
// provider's chat client lazily on first request, and wraps all of them
// with the retry layer:
//
//   - Lazy construction: providers without keys cost nothing until used
//   - Caching: repeated requests for a provider return the same instance
//   - Automatic retries: transient errors are retried with linear backoff
//
// # Basic Usage
//
// Create a client from the environment and pick a provider:
//
//	c, err := client.NewFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	p, err := c.ChatProvider(ctx, tinyagent.ProviderAnthropic)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := p.Chat(ctx, []ai.Message{ai.NewUserMessage("Hello!")})
//
// ConfigFromEnv loads a .env file when one is present and reads
// ANTHROPIC_API_KEY, OPENAI_API_KEY, and GEMINI_API_KEY. Keys can also be
// supplied explicitly:
//
//	c, err := client.New(client.Config{
//	    APIKeys: client.APIKeys{
//	        OpenAI: os.Getenv("OPENAI_API_KEY"),
//	    },
//	})
//
// # Retry Configuration
//
// Transient errors (rate limits, timeouts, 5xx responses) are retried
// automatically. The zero Retry value selects the defaults; customize it
// per client:
//
//	c, err := client.New(client.Config{
//	    APIKeys: client.APIKeys{OpenAI: os.Getenv("OPENAI_API_KEY")},
//	    Retry:   ai.NewRetryConfig(5, 500*time.Millisecond, 30*time.Second),
//	})
//
// # Structured Output
//
// ChatTyped constrains the reply to a struct's JSON schema and unmarshals
// it in one call:
//
//	type BookInfo struct {
//	    Title  string `json:"title"`
//	    Author string `json:"author"`
//	}
//
//	book, err := client.ChatTyped[BookInfo](ctx, p, msgs)
package client
