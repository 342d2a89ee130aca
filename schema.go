package tinyagent

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
)

// SchemaFor generates a JSON Schema object from a struct type T for use
// as tool parameters. Field names come from json tags; types map onto a
// fixed primitive set: integer and float kinds become "number", string
// "string", bool "boolean", slices and arrays "array", structs and maps
// "object". A pointer field maps to its element type. Any field outside
// that set fails with an [UnsupportedParamTypeError] naming the field.
//
// A field is required unless it carries a `default` tag; an explicit
// `required:"true"` or `required:"false"` tag overrides. Supplementary
// tags: `desc` (description), `enum` (comma-separated values), `min`
// and `max` (numeric bounds).
//
// Example:
//
//	type WeatherArgs struct {
//	    Location string `json:"location" desc:"City name"`
//	    Unit     string `json:"unit" desc:"Temperature unit" enum:"celsius,fahrenheit" default:"celsius"`
//	}
func SchemaFor[T any]() (json.RawMessage, error) {
	var zero T
	t := reflect.TypeOf(zero)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return json.RawMessage(`{"type":"object","properties":{}}`), nil
	}

	obj, err := schemaFromStruct(t)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// MustSchemaFor is like SchemaFor but panics on error.
// Useful for initialization code where a bad argument struct is fatal.
func MustSchemaFor[T any]() json.RawMessage {
	schema, err := SchemaFor[T]()
	if err != nil {
		panic(err)
	}
	return schema
}

// paramSchema is the serialized form of one parameter definition.
type paramSchema struct {
	Type        string                  `json:"type"`
	Description string                  `json:"description,omitempty"`
	Enum        []string                `json:"enum,omitempty"`
	Minimum     *float64                `json:"minimum,omitempty"`
	Maximum     *float64                `json:"maximum,omitempty"`
	Default     any                     `json:"default,omitempty"`
	Items       *paramSchema            `json:"items,omitempty"`
	Properties  map[string]*paramSchema `json:"properties,omitempty"`
	Required    []string                `json:"required,omitempty"`
}

// objectSchema is the serialized form of an object parameter document.
type objectSchema struct {
	Type       string                  `json:"type"`
	Properties map[string]*paramSchema `json:"properties"`
	Required   []string                `json:"required,omitempty"`
}

func schemaFromStruct(t reflect.Type) (*objectSchema, error) {
	obj := &objectSchema{
		Type:       "object",
		Properties: make(map[string]*paramSchema),
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}
		name := strings.Split(jsonTag, ",")[0]
		if name == "" {
			name = field.Name
		}

		prop, err := schemaForType(name, field.Type)
		if err != nil {
			return nil, err
		}
		applyFieldTags(prop, field)

		obj.Properties[name] = prop
		if isRequired(field) {
			obj.Required = append(obj.Required, name)
		}
	}

	return obj, nil
}

func schemaForType(field string, t reflect.Type) (*paramSchema, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return &paramSchema{Type: "string"}, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return &paramSchema{Type: "number"}, nil

	case reflect.Bool:
		return &paramSchema{Type: "boolean"}, nil

	case reflect.Slice, reflect.Array:
		items, err := schemaForType(field, t.Elem())
		if err != nil {
			return nil, err
		}
		return &paramSchema{Type: "array", Items: items}, nil

	case reflect.Struct:
		nested, err := schemaFromStruct(t)
		if err != nil {
			return nil, err
		}
		return &paramSchema{
			Type:       "object",
			Properties: nested.Properties,
			Required:   nested.Required,
		}, nil

	case reflect.Map:
		// Maps become objects with no defined properties.
		return &paramSchema{Type: "object"}, nil

	default:
		return nil, &UnsupportedParamTypeError{Field: field, Kind: t.Kind().String()}
	}
}

// isRequired reports whether a field belongs in the schema's required
// list: required unless it declares a default, with an explicit
// required tag taking precedence either way.
func isRequired(field reflect.StructField) bool {
	if tag, ok := field.Tag.Lookup("required"); ok {
		return tag == "true"
	}
	_, hasDefault := field.Tag.Lookup("default")
	return !hasDefault
}

func applyFieldTags(prop *paramSchema, field reflect.StructField) {
	if desc := field.Tag.Get("desc"); desc != "" {
		prop.Description = desc
	}
	if enum := field.Tag.Get("enum"); enum != "" {
		prop.Enum = strings.Split(enum, ",")
	}
	if min := field.Tag.Get("min"); min != "" {
		if v, err := strconv.ParseFloat(min, 64); err == nil {
			prop.Minimum = &v
		}
	}
	if max := field.Tag.Get("max"); max != "" {
		if v, err := strconv.ParseFloat(max, 64); err == nil {
			prop.Maximum = &v
		}
	}
	if def, ok := field.Tag.Lookup("default"); ok {
		prop.Default = parseDefault(def, prop.Type)
	}
}

// parseDefault coerces a default tag value into the field's schema type
// so it serializes as the right JSON kind.
func parseDefault(raw, schemaType string) any {
	switch schemaType {
	case "number":
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
	case "boolean":
		if v, err := strconv.ParseBool(raw); err == nil {
			return v
		}
	}
	return raw
}
