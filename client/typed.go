package client

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	ai "github.com/y-lan/tinyagent"
)

// ChatTyped sends a chat request constrained to T's JSON schema and
// unmarshals the reply into T.
//
// This is a convenience function that combines WithResponseSchema and
// json.Unmarshal into a single call:
//
//	// Instead of:
//	resp, err := p.Chat(ctx, msgs, ai.WithResponseSchema(&ai.ResponseSchema{
//	    Name: "book_info", Schema: ai.MustSchemaFor[BookInfo](),
//	}))
//	var book BookInfo
//	json.Unmarshal([]byte(resp.Content), &book)
//
//	// You can use:
//	book, err := client.ChatTyped[BookInfo](ctx, p, msgs)
//
// The schema name is derived from the type name using snake_case
// conversion. All provided options are passed through to the underlying
// Chat call, so user options can override the generated schema.
func ChatTyped[T any](ctx context.Context, provider ai.ChatProvider, msgs []ai.Message, opts ...ai.Option) (T, error) {
	var zero T

	t := reflect.TypeOf(zero)
	if t == nil {
		return zero, fmt.Errorf("ChatTyped: cannot use nil type")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	schemaName := toSnakeCase(t.Name())
	if schemaName == "" {
		schemaName = "response"
	}

	schema, err := ai.SchemaFor[T]()
	if err != nil {
		return zero, fmt.Errorf("ChatTyped: failed to generate schema: %w", err)
	}

	// Prepend the schema option so user opts can override if needed.
	allOpts := make([]ai.Option, 0, len(opts)+1)
	allOpts = append(allOpts, ai.WithResponseSchema(&ai.ResponseSchema{
		Name:   schemaName,
		Schema: schema,
	}))
	allOpts = append(allOpts, opts...)

	resp, err := provider.Chat(ctx, msgs, allOpts...)
	if err != nil {
		return zero, err
	}

	var result T
	if err := json.Unmarshal([]byte(resp.Content), &result); err != nil {
		return zero, &UnmarshalError{
			Content:    resp.Content,
			TargetType: t.String(),
			Err:        err,
		}
	}

	return result, nil
}

// UnmarshalError is returned when the model's reply cannot be unmarshaled
// into the target type.
type UnmarshalError struct {
	Content    string
	TargetType string
	Err        error
}

func (e *UnmarshalError) Error() string {
	return fmt.Sprintf("failed to unmarshal response into %s: %v", e.TargetType, e.Err)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

// toSnakeCase converts a CamelCase string to snake_case.
func toSnakeCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
