package style

import (
	"encoding/json"
	"io"
)

// JSONRenderer provides machine-readable JSON output
type JSONRenderer struct {
	encoder *json.Encoder
}

// NewJSONRenderer creates a new JSON renderer
func NewJSONRenderer(output io.Writer) *JSONRenderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &JSONRenderer{encoder: encoder}
}

// RenderResult renders any result type as JSON
func (r *JSONRenderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(result)
}

// RenderError renders an error as JSON
func (r *JSONRenderer) RenderError(err error) error {
	errorObj := map[string]string{
		"error": err.Error(),
	}
	return r.encoder.Encode(errorObj)
}
