package tinyagent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOptions(t *testing.T) {
	t.Run("defaults are zero", func(t *testing.T) {
		o := ApplyOptions()
		assert.Empty(t, o.Model)
		assert.Zero(t, o.MaxTokens)
		assert.Nil(t, o.Temperature)
		assert.Nil(t, o.TopP)
		assert.Nil(t, o.Seed)
		assert.Empty(t, o.Tools)
		assert.Equal(t, ResponseFormatText, o.ResponseFormat)
		assert.Nil(t, o.ResponseSchema)
	})

	t.Run("applies all options", func(t *testing.T) {
		tool := Tool{Name: "calc", Description: "Calculator"}
		schema := &ResponseSchema{Name: "answer"}

		o := ApplyOptions(
			WithModel("test-model"),
			WithMaxTokens(512),
			WithTemperature(0.7),
			WithTopP(0.9),
			WithSeed(42),
			WithTools(tool),
			WithToolChoice(ToolChoiceRequired),
			WithResponseSchema(schema),
		)

		assert.Equal(t, "test-model", o.Model)
		assert.Equal(t, 512, o.MaxTokens)
		require.NotNil(t, o.Temperature)
		assert.Equal(t, 0.7, *o.Temperature)
		require.NotNil(t, o.TopP)
		assert.Equal(t, 0.9, *o.TopP)
		require.NotNil(t, o.Seed)
		assert.Equal(t, int64(42), *o.Seed)
		assert.Equal(t, []Tool{tool}, o.Tools)
		assert.Equal(t, ToolChoiceRequired, o.ToolChoice)
		assert.Equal(t, schema, o.ResponseSchema)
	})

	t.Run("zero temperature is distinguishable from unset", func(t *testing.T) {
		o := ApplyOptions(WithTemperature(0))
		require.NotNil(t, o.Temperature)
		assert.Equal(t, 0.0, *o.Temperature)
	})

	t.Run("json output sets response format", func(t *testing.T) {
		o := ApplyOptions(WithJSONOutput())
		assert.Equal(t, ResponseFormatJSON, o.ResponseFormat)
	})

	t.Run("later options override earlier", func(t *testing.T) {
		o := ApplyOptions(WithModel("first"), WithModel("second"))
		assert.Equal(t, "second", o.Model)
	})
}
