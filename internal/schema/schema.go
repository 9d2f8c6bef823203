// Package schema validates emitted documents against the embedded JSON
// Schema before they are written out.
package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"fjacquet/pdf-outline/internal/models"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed outline.schema.json
var outlineSchema []byte

// Validator checks documents against the outline schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the embedded schema. Compilation can only fail if
// the embedded schema itself is broken, so callers treat an error as fatal.
func NewValidator() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("outline.schema.json", bytes.NewReader(outlineSchema)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("outline.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// ValidateDocument checks a document model against the schema.
func (v *Validator) ValidateDocument(doc models.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	return v.ValidateJSON(data)
}

// ValidateJSON checks raw JSON bytes against the schema.
func (v *Validator) ValidateJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("unmarshal document: %w", err)
	}
	if err := v.schema.Validate(value); err != nil {
		return fmt.Errorf("document does not match schema: %w", err)
	}
	return nil
}
