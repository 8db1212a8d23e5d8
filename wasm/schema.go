package wasm

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Metadata declarations coming out of guest code are untrusted; they are
// validated against these schemas before use. Invalid payloads surface as
// extraction errors, which discovery degrades to an errored descriptor.
var (
	optionsSchema = jsonschema.MustCompileString("options.schema.json", `{
		"type": "object",
		"properties": {
			"variants":   {"type": "array", "items": {"type": "string"}},
			"uses_model": {"type": "boolean"}
		},
		"additionalProperties": false
	}`)

	describeSchema = jsonschema.MustCompileString("describe.schema.json", `{
		"type": "object",
		"properties": {
			"tags":        {"type": "array", "items": {"type": "string"}},
			"description": {"type": "string"}
		},
		"additionalProperties": false
	}`)
)

// decodeValidated validates payload against schema, then unmarshals it
// into v.
func decodeValidated(payload []byte, schema *jsonschema.Schema, v any) error {
	var doc any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return fmt.Errorf("decode declaration: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("declaration failed validation: %w", err)
	}
	return json.Unmarshal(payload, v)
}
