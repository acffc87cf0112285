// Package ui renders command results as styled terminal output, plain text,
// or one of the machine-readable formats.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/flatcfg/pkg/errors"
	"github.com/arthur-debert/flatcfg/pkg/ui/data"
	"github.com/arthur-debert/flatcfg/pkg/ui/terminal"
	"github.com/arthur-debert/flatcfg/pkg/ui/text"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders a result: a fragment list, an inspection, a plan
	// or a provider listing
	RenderResult(result any) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format. FormatAuto inspects output
// when it is a file and falls back to terminal output otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	if df, ok := format.Data(); ok {
		return data.New(output, df), nil
	}

	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatTerminal, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
