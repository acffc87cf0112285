// Package data renders results as JSON, YAML or TOML
package data

import (
	"io"

	"github.com/arthur-debert/flatcfg/pkg/render"
)

// Renderer encodes every result in one serialisation format
type Renderer struct {
	output io.Writer
	format render.Format
}

// New creates a data renderer
func New(output io.Writer, format render.Format) *Renderer {
	return &Renderer{output: output, format: format}
}

// RenderResult encodes result
func (r *Renderer) RenderResult(result any) error {
	return render.Encode(r.output, r.format, result)
}

// RenderError encodes an error as an object with an "error" key
func (r *Renderer) RenderError(err error) error {
	return render.Encode(r.output, r.format, map[string]string{
		"error": err.Error(),
	})
}

// RenderMessage encodes a message as an object with a "message" key
func (r *Renderer) RenderMessage(msg string) error {
	return render.Encode(r.output, r.format, map[string]string{
		"message": msg,
	})
}
