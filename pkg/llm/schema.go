package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ValidateAgainstSchema validates a JSON payload against a JSON Schema
// document. An empty schema accepts anything.
func ValidateAgainstSchema(payload json.RawMessage, schemaBytes []byte) error {
	if len(schemaBytes) == 0 {
		return nil
	}

	var schemaDoc any
	if err := json.Unmarshal(schemaBytes, &schemaDoc); err != nil {
		return fmt.Errorf("unmarshal schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", schemaDoc); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := c.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var value any
	if err := json.Unmarshal(payload, &value); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	return schema.Validate(value)
}

// extractJSON pulls the JSON document out of raw model output. Models
// sometimes wrap JSON in a markdown fence or prose; the extractor takes the
// outermost brace-delimited object.
func extractJSON(raw string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(raw)

	// Strip a markdown code fence if present.
	if strings.HasPrefix(trimmed, "```") {
		if idx := strings.Index(trimmed, "\n"); idx >= 0 {
			trimmed = trimmed[idx+1:]
		}
		trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
		trimmed = strings.TrimSpace(trimmed)
	}

	start := strings.IndexAny(trimmed, "{[")
	if start < 0 {
		return nil, fmt.Errorf("no JSON document in output")
	}
	end := strings.LastIndexAny(trimmed, "}]")
	if end < start {
		return nil, fmt.Errorf("unterminated JSON document in output")
	}
	candidate := trimmed[start : end+1]

	if !json.Valid([]byte(candidate)) {
		return nil, fmt.Errorf("output is not valid JSON")
	}
	return json.RawMessage(candidate), nil
}

// SchemaFor builds a Schema from a name and a raw JSON Schema literal.
// Panics on invalid JSON: schemas are compile-time constants.
func SchemaFor(name, raw string) Schema {
	if !json.Valid([]byte(raw)) {
		panic(fmt.Sprintf("schema %s is not valid JSON", name))
	}
	return Schema{Name: name, Raw: json.RawMessage(raw)}
}
