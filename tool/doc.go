// Package tool provides tool infrastructure for the tinyagent library.
//
// This package includes:
//   - Registry and Handler types for tool management
//   - Function binding with automatic schema generation from struct tags
//   - Built-in tools: calculator, current time, web search
//
// # Basic Usage
//
// Define tool arguments as a struct with tags, then use Bind:
//
//	type WeatherArgs struct {
//	    Location string `json:"location" desc:"City name" required:"true"`
//	    Unit     string `json:"unit" desc:"Temperature unit" enum:"celsius,fahrenheit"`
//	}
//
//	// Create tool and handler
//	t, h := tool.MustBind("get_weather", "Get current weather",
//	    func(ctx context.Context, args WeatherArgs) (string, error) {
//	        return fmt.Sprintf(`{"temp": 72, "location": %q}`, args.Location), nil
//	    })
//
//	// Register to a registry
//	registry := tool.NewRegistry()
//	registry.MustRegister(t, h)
//
// Or use the fluent API:
//
//	registry := tool.NewRegistry().Add(
//	    tool.Func("get_weather", "Get current weather", weatherFn),
//	    tool.WithTool(tool.NewCalculatorTool()),
//	)
//
// # Supported Struct Tags
//
// The following tags are supported for schema generation:
//
//	json:"name"      - Property name (required for inclusion)
//	desc:"text"      - Description for the model
//	required:"true"  - Mark field as required
//	enum:"a,b,c"     - Allowed values (comma-separated)
//	min:"0"          - Minimum value (numbers)
//	max:"100"        - Maximum value (numbers)
//	default:"value"  - Default value (makes the field optional)
//
// Fields without an explicit required tag are required unless they
// declare a default.
//
// # Built-in Tools
//
//   - Calculator: evaluate arithmetic expressions
//   - current_time: current date and time in a timezone
//   - TavilySearch: web search via the Tavily API (needs TAVILY_API_KEY)
//
// # Execution
//
// Registry.Execute runs a tool call and captures handler failures as
// "Error: ..." results instead of propagating them, so a bad call does
// not abort the conversation:
//
//	result, err := registry.Execute(ctx, call)
//	// err is non-nil only for unknown tools
package tool
