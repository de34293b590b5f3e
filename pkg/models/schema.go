package models

// JSONSchema is the JSON Schema document describing the values of a contract form.
type JSONSchema struct {
	Schema               string               `json:"$schema,omitempty"`
	Type                 string               `json:"type"`
	Title                string               `json:"title,omitempty"`
	Description          string               `json:"description,omitempty"`
	Properties           map[string]*Property `json:"properties,omitempty"`
	Required             []string             `json:"required,omitempty"`
	AdditionalProperties *bool                `json:"additionalProperties,omitempty"`
	ReadOnly             bool                 `json:"readOnly,omitempty"`
}

// Property represents a single JSON Schema property.
type Property struct {
	Type        string `json:"type"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Default     any    `json:"default,omitempty"`
	Format      string `json:"format,omitempty"`
	ReadOnly    bool   `json:"readOnly,omitempty"`
}
