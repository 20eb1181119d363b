package jsonschema

// Schema is a minimal JSON Schema representation projected from field tables
// and handed to the validator.
type Schema struct {
	// Core
	Type    string `json:"type,omitempty"`
	Pattern string `json:"pattern,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`
}
