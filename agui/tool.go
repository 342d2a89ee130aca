package agui

import (
	"encoding/json"

	ai "github.com/y-lan/tinyagent"
)

// Tool is a tool definition as sent by AG-UI frontends to declare
// capabilities available to the agent.
type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
}

// FromAGUITool converts an AG-UI tool definition to a canonical tool.
func FromAGUITool(t Tool) ai.Tool {
	return ai.Tool{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  t.Parameters,
	}
}

// FromAGUITools converts a slice of AG-UI tool definitions.
func FromAGUITools(tools []Tool) []ai.Tool {
	if len(tools) == 0 {
		return nil
	}
	result := make([]ai.Tool, len(tools))
	for i, t := range tools {
		result[i] = FromAGUITool(t)
	}
	return result
}

// ParseTools decodes the untyped Tools field of a RunAgentInput payload.
func ParseTools(raw []any) ([]Tool, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}

	var tools []Tool
	if err := json.Unmarshal(data, &tools); err != nil {
		return nil, err
	}
	return tools, nil
}
