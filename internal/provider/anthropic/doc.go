// Package anthropic provides an Anthropic Claude API client implementing
// [tinyagent.ChatProvider].
//
// This package wraps the official Anthropic Go SDK. It is internal;
// construct clients through the tinyagent client package.
//
// # Supported Features
//
//   - Chat completions (streaming and non-streaming)
//   - Tool/function calling
//   - Multimodal inputs (images)
//   - JSON output
//
// Plain JSON mode works by prefilling the assistant turn with an opening
// brace; the brace is restored on the first text block of the reply. A
// declared response schema is instead enforced through a forced call to a
// synthetic tool whose input schema is the response schema.
//
// System messages are lifted out of the conversation and sent through the
// API's top-level system field. Tool results travel back as user messages
// carrying tool_result blocks.
package anthropic
