package thrones

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// characterSchema describes the fields the quiz depends on. Extra fields the
// API sends (title, family, image) are allowed.
var characterSchema = map[string]any{
	"type":     "object",
	"required": []any{"id", "fullName"},
	"properties": map[string]any{
		"id":        map[string]any{"type": "integer", "minimum": 0},
		"firstName": map[string]any{"type": []any{"string", "null"}},
		"lastName":  map[string]any{"type": []any{"string", "null"}},
		"fullName":  map[string]any{"type": "string"},
		"imageUrl":  map[string]any{"type": []any{"string", "null"}},
	},
}

var listSchema = map[string]any{
	"type":  "array",
	"items": characterSchema,
}

var (
	schemaOnce   sync.Once
	compiledChar *jsonschema.Schema
	compiledList *jsonschema.Schema
	schemaErr    error
)

func compileSchemas() {
	c := jsonschema.NewCompiler()
	compiledChar, schemaErr = compileSchema(c, "character", characterSchema)
	if schemaErr != nil {
		return
	}
	compiledList, schemaErr = compileSchema(c, "characters", listSchema)
}

// compileSchema round-trips the definition through JSON so the compiler sees
// the same value types it would get from a schema file.
func compileSchema(c *jsonschema.Compiler, name string, def map[string]any) (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal %s schema: %w", name, err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse %s schema: %w", name, err)
	}

	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add %s schema: %w", name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile %s schema: %w", name, err)
	}
	return compiled, nil
}

// decodeValidated checks raw against the schema and then decodes it into out.
// Failures come back as *ErrInvalidResponse.
func decodeValidated(op string, raw []byte, list bool, out any) error {
	schemaOnce.Do(compileSchemas)
	if schemaErr != nil {
		return &ErrInvalidResponse{Op: op, Body: raw, Err: schemaErr}
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidResponse{Op: op, Body: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema := compiledChar
	if list {
		schema = compiledList
	}
	if err := schema.Validate(parsed); err != nil {
		return &ErrInvalidResponse{Op: op, Body: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &ErrInvalidResponse{Op: op, Body: raw, Err: err}
	}
	return nil
}
