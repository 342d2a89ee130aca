package tinyagent

import "fmt"

// Provider identifies an AI provider. The set is closed: provider
// selection is an explicit enum choice at construction time, never
// inferred from model name strings.
type Provider string

// String returns the provider identifier.
func (p Provider) String() string { return string(p) }

// Supported providers.
const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
	ProviderGemini    Provider = "gemini"
)

// Providers lists all supported providers.
func Providers() []Provider {
	return []Provider{ProviderAnthropic, ProviderOpenAI, ProviderGemini}
}

// Validate returns an error if p is not a supported provider.
func (p Provider) Validate() error {
	switch p {
	case ProviderAnthropic, ProviderOpenAI, ProviderGemini:
		return nil
	}
	return NewUserInputError(fmt.Sprintf("unknown provider: %q", p), 0, nil)
}
