// Package schemas provides JSON Schema validation for the upstream state files.
//
// The schemas are deliberately permissive: the pipelines must keep working
// when the producers omit fields, so violations surface as warnings in the
// caller, never as fatal errors.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// healthSchema describes the shape of health.json as produced by the monitor.
const healthSchema = `{
  "type": "object",
  "properties": {
    "updatedAt": {"type": "string"},
    "severity": {"type": "string"},
    "host": {"type": "object"},
    "systems": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "properties": {
          "ok": {"type": "boolean"},
          "detail": {"type": "string"}
        }
      }
    },
    "modules": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "properties": {
          "ok": {"type": "boolean"},
          "detail": {"type": "string"}
        }
      }
    },
    "integrations": {"type": "object"},
    "notes": {"type": "array", "items": {"type": "string"}}
  }
}`

// tasksSchema describes the shape of tasks.json as produced by the capture bot.
const tasksSchema = `{
  "type": "object",
  "properties": {
    "meta": {
      "type": "object",
      "properties": {
        "version": {"type": "integer"}
      }
    },
    "tasks": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "text": {"type": "string"},
          "status": {"type": "string"},
          "note": {"type": "string"},
          "createdAt": {"type": "string"},
          "dueAt": {"type": "string"},
          "owner": {"type": "string"}
        }
      }
    }
  }
}`

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateHealth checks a raw health.json document against the embedded schema.
func ValidateHealth(doc []byte) error {
	return validate(healthSchema, doc)
}

// ValidateTasks checks a raw tasks.json document against the embedded schema.
func ValidateTasks(doc []byte) error {
	return validate(tasksSchema, doc)
}

func validate(schema string, doc []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed to run: %w", err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
