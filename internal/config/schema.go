package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchema is the JSON Schema every JSON snapshot document is
// validated against before parsing.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["events"],
  "properties": {
    "quantiles": {
      "type": "array",
      "items": {"type": "number", "minimum": 0, "maximum": 1}
    },
    "events": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["type", "name"],
        "properties": {
          "type": {"enum": ["counter", "gauge", "histogram"]},
          "name": {"type": "string", "minLength": 1},
          "tags": {
            "type": "array",
            "items": {"type": "string", "pattern": "^[^=]+=.*$"}
          },
          "value": {"type": "integer"},
          "values": {
            "type": "array",
            "items": {"type": "integer", "minimum": 0}
          }
        }
      }
    }
  }
}`

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("document.json", strings.NewReader(documentSchema)); err != nil {
		panic(fmt.Sprintf("invalid document schema: %v", err))
	}
	schema, err := compiler.Compile("document.json")
	if err != nil {
		panic(fmt.Sprintf("invalid document schema: %v", err))
	}
	return schema
}

// validateJSON checks a JSON snapshot document against the embedded
// schema.
func validateJSON(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return fmt.Errorf("document does not match schema: %w", err)
	}
	return nil
}
