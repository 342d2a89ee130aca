package tinyagent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleConstants(t *testing.T) {
	assert.Equal(t, Role("user"), RoleUser)
	assert.Equal(t, Role("assistant"), RoleAssistant)
	assert.Equal(t, Role("system"), RoleSystem)
	assert.Equal(t, Role("tool"), RoleTool)
}

func TestContentPartTypeConstants(t *testing.T) {
	assert.Equal(t, ContentPartType("text"), ContentPartTypeText)
	assert.Equal(t, ContentPartType("image"), ContentPartTypeImage)
}

func TestNewTextPart(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected ContentPart
	}{
		{
			name: "creates text part",
			text: "Hello, world!",
			expected: ContentPart{
				Type: ContentPartTypeText,
				Text: "Hello, world!",
			},
		},
		{
			name: "handles empty string",
			text: "",
			expected: ContentPart{
				Type: ContentPartTypeText,
				Text: "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			part := NewTextPart(tt.text)
			assert.Equal(t, tt.expected, part)
			assert.Empty(t, part.ImageURL)
			assert.Empty(t, part.Base64)
			assert.Empty(t, part.MimeType)
		})
	}
}

func TestNewImageURLPart(t *testing.T) {
	part := NewImageURLPart("https://example.com/image.png")
	assert.Equal(t, ContentPartTypeImage, part.Type)
	assert.Equal(t, "https://example.com/image.png", part.ImageURL)
	assert.Empty(t, part.Text)
	assert.Empty(t, part.Base64)
}

func TestNewImageBase64Part(t *testing.T) {
	part := NewImageBase64Part("aGVsbG8=", "image/png")
	assert.Equal(t, ContentPartTypeImage, part.Type)
	assert.Equal(t, "aGVsbG8=", part.Base64)
	assert.Equal(t, "image/png", part.MimeType)
	assert.Empty(t, part.ImageURL)
}

func TestGenerateMessageID(t *testing.T) {
	t.Run("has msg prefix", func(t *testing.T) {
		id := GenerateMessageID()
		assert.True(t, strings.HasPrefix(id, "msg-"))
	})

	t.Run("is unique", func(t *testing.T) {
		assert.NotEqual(t, GenerateMessageID(), GenerateMessageID())
	})
}

func TestMessageHasParts(t *testing.T) {
	assert.False(t, Message{Role: RoleUser, Content: "hi"}.HasParts())
	assert.True(t, Message{Role: RoleUser, Parts: []ContentPart{NewTextPart("hi")}}.HasParts())
}

func TestMessageText(t *testing.T) {
	tests := []struct {
		name     string
		message  Message
		expected string
	}{
		{
			name:     "content field wins",
			message:  Message{Role: RoleUser, Content: "plain"},
			expected: "plain",
		},
		{
			name: "falls back to first text part",
			message: Message{Role: RoleUser, Parts: []ContentPart{
				NewImageURLPart("https://example.com/a.png"),
				NewTextPart("from parts"),
				NewTextPart("second"),
			}},
			expected: "from parts",
		},
		{
			name:     "empty message",
			message:  Message{Role: RoleAssistant},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.message.Text())
		})
	}
}

func TestNewUserMessage(t *testing.T) {
	msg := NewUserMessage("hello")
	assert.Equal(t, RoleUser, msg.Role)
	assert.Equal(t, "hello", msg.Content)
}

func TestResponseMessage(t *testing.T) {
	t.Run("renders text response", func(t *testing.T) {
		resp := &Response{Content: "answer", Model: "test-model"}
		msg := resp.Message()
		assert.Equal(t, RoleAssistant, msg.Role)
		assert.Equal(t, "answer", msg.Content)
		assert.Empty(t, msg.ToolCalls)
	})

	t.Run("carries tool calls", func(t *testing.T) {
		calls := []ToolCall{{ID: "call-1", Name: "calc", Arguments: `{"a":1}`}}
		resp := &Response{ToolCalls: calls}
		msg := resp.Message()
		assert.Equal(t, RoleAssistant, msg.Role)
		assert.Equal(t, calls, msg.ToolCalls)
		assert.Empty(t, msg.Content)
	})
}

func TestUsageAdd(t *testing.T) {
	var total Usage
	total.Add(Usage{InputTokens: 10, OutputTokens: 20})
	total.Add(Usage{InputTokens: 5, OutputTokens: 7})
	assert.Equal(t, Usage{InputTokens: 15, OutputTokens: 27}, total)
}

func TestNewToolResultMessage(t *testing.T) {
	result := ToolResult{ToolCallID: "call-1", Name: "calc", Content: "42"}
	msg := NewToolResultMessage(result)
	assert.Equal(t, RoleTool, msg.Role)
	assert.Len(t, msg.ToolResults, 1)
	assert.Equal(t, result, msg.ToolResults[0])
}
