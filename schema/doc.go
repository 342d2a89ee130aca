// Package schema provides a fluent API for building JSON Schema objects
// for tool parameters and structured output.
//
// It is the declarative counterpart to reflection-based signature
// generation: instead of deriving a schema from a Go struct, the schema
// is constructed explicitly and validated when built.
//
// # Basic Usage
//
// Create schemas using the type constructors and chain constraint methods:
//
//	params := schema.Object().
//		Field("location", schema.String().Desc("City name").Required()).
//		Field("unit", schema.String().Enum("celsius", "fahrenheit")).
//		Field("days", schema.Number().Min(1).Max(14).Default(7)).
//		MustBuild()
//
// # With Tool Definitions
//
//	tool := tinyagent.Tool{
//		Name:        "get_forecast",
//		Description: "Get weather forecast",
//		Parameters: schema.Object().
//			Field("location", schema.String().Required()).
//			Field("days", schema.Number().Min(1).Max(14)).
//			MustBuild(),
//	}
//
// # Response Schemas
//
//	resp := tinyagent.ResponseSchema{
//		Name: "book_info",
//		Schema: schema.Object().
//			Field("title", schema.String().Required()).
//			Field("year", schema.Number().Min(1000).Max(2100)).
//			MustBuild(),
//	}
//
// # Nested Objects
//
//	params := schema.Object().
//		Field("user", schema.Object().
//			Field("name", schema.String().Required()).
//			Field("age", schema.Number().Min(0)).
//			Required()).
//		Field("tags", schema.Array(schema.String()).MaxItems(10)).
//		MustBuild()
//
// # Validation
//
// Build returns an error for inconsistent schemas (minimum above
// maximum, unparseable regex patterns). MustBuild panics instead, which
// suits package-level tool declarations:
//
//	_, err := schema.Number().Min(10).Max(1).Build()
//	// err wraps ErrInvalidRange
package schema
