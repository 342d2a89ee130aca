package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	ai "github.com/y-lan/tinyagent"
)

// currentTimeArgs defines arguments for the current time tool.
type currentTimeArgs struct {
	Timezone string `json:"timezone" desc:"The timezone for the current time" required:"true"`
}

// NewCurrentTimeTool creates a tool that reports the current date and time
// in a given IANA timezone.
func NewCurrentTimeTool() (ai.Tool, Handler) {
	t := ai.Tool{
		Name:        "current_time",
		Description: "Get the current date and time in a specified timezone",
		Parameters:  MustSchemaFor[currentTimeArgs](),
	}

	handler := func(ctx context.Context, call ai.ToolCall) (string, error) {
		var args currentTimeArgs
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			return "", err
		}

		tz := args.Timezone
		if tz == "" {
			tz = "UTC"
		}

		loc, err := time.LoadLocation(tz)
		if err != nil {
			return "", fmt.Errorf("invalid timezone: %s", args.Timezone)
		}

		return time.Now().In(loc).Format("2006-01-02 15:04:05 MST"), nil
	}

	return t, handler
}
