// Package model provides chat model constants for all supported providers.
//
// Models are typed values that know their provider and carry pricing
// information, so callers never pass bare model-name strings around.
//
// # Usage
//
// Set a model on an agent config or a single request:
//
//	cfg := agent.DefaultConfig()
//	cfg.Model = model.ClaudeSonnet45.String()
//
//	resp, err := p.Chat(ctx, messages, ai.WithModel(model.GPT52.String()))
//
// Default returns the recommended model for a provider:
//
//	m, ok := model.Default(tinyagent.ProviderGemini)
//
// # Pricing
//
// All models include pricing for cost estimation:
//
//	cost := model.GPT52.Cost(resp.Usage)
//
// Some pricing fields are provider-specific. Use helper methods to check
// availability:
//
//	pricing := model.GPT52.Pricing()
//	if pricing.HasCachedPricing() {
//	    // OpenAI models price cached input tokens separately
//	}
//
//	pricing = model.Gemini3Pro.Pricing()
//	if pricing.HasLongContextPricing() {
//	    // Gemini models have tiered pricing for >200K token contexts
//	}
package model
