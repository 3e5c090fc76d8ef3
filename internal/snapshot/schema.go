package snapshot

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// schemaJSON pins the structural contract of the interchange document.
// Validation runs before unmarshalling on every load so malformed files
// fail with a precise path instead of a zero-valued world.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version", "chunkSize", "layers"],
  "properties": {
    "version": {"const": 1},
    "chunkSize": {"type": "integer", "minimum": 1},
    "tilesets": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "columns", "rows"],
        "properties": {
          "id": {"type": "integer", "minimum": 1},
          "name": {"type": "string"},
          "columns": {"type": "integer", "minimum": 1},
          "rows": {"type": "integer", "minimum": 1},
          "tileSize": {"type": "integer", "minimum": 1}
        }
      }
    },
    "blocks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "shape"],
        "properties": {
          "id": {"type": "integer", "minimum": 1},
          "name": {"type": "string"},
          "shape": {"type": "string"},
          "collidable": {"type": "boolean"}
        }
      }
    },
    "layers": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "order", "voxels"],
        "properties": {
          "id": {"type": "integer"},
          "name": {"type": "string"},
          "visible": {"type": "boolean"},
          "order": {"type": "integer"},
          "offset": {
            "type": "object",
            "required": ["x", "y", "z"],
            "properties": {
              "x": {"type": "integer"},
              "y": {"type": "integer"},
              "z": {"type": "integer"}
            }
          },
          "voxels": {
            "type": "object",
            "additionalProperties": {
              "type": "object",
              "required": ["block"],
              "properties": {
                "block": {"type": "integer", "minimum": 0},
                "transform": {"type": "integer", "minimum": 0, "maximum": 31}
              }
            }
          }
        }
      }
    },
    "objectLayers": {"type": "array"}
  }
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("scene.schema.json", schemaJSON)
	})
	return schema, schemaErr
}

// ValidateDocument checks raw JSON against the interchange schema.
func ValidateDocument(data []byte) error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile scene schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("scene document: %w", err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("scene document: %w", err)
	}
	return nil
}
