// Package schemas embeds the JSON Schemas for persisted artifacts and
// validates documents against them.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed snapshot.schema.json
var snapshotSchema string

// SnapshotSchema returns the raw JSON Schema for session snapshots.
func SnapshotSchema() string {
	return snapshotSchema
}

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates every schema violation found in a document.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateSnapshot checks a serialized snapshot against the embedded schema.
// Returns nil when valid, a *ValidationError listing violations otherwise.
func ValidateSnapshot(document []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(snapshotSchema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to run snapshot schema validation: %w", err)
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
