package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with glamour. Other files are
// returned unchanged, as is markdown glamour fails on.
type GlamourRenderer struct {
	// Style is a glamour style name or path; "" or "auto" detects it
	Style string
	// Width wraps lines; 0 keeps glamour's default
	Width int
}

// NewGlamourRenderer creates a renderer with automatic style detection
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

func (r *GlamourRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}

	var opts []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		opts = append(opts, glamour.WithStylePath(r.Style))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return content
	}
	out, err := tr.Render(content)
	if err != nil {
		return content
	}
	return out
}
