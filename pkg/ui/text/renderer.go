// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/inspect"
	"github.com/arthur-debert/flatcfg/pkg/ui/view"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders the known result types as tab-separated columns
func (r *Renderer) RenderResult(result any) error {
	tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	switch v := result.(type) {
	case []fragment.Fragment:
		for i, f := range v {
			fmt.Fprintf(tw, "%s\t%s\t%d\n", view.Label(f, i), strings.Join(f.Files, ","), len(f.Rules))
		}
	case *inspect.Effective:
		if v.Ignored {
			fmt.Fprintf(tw, "%s\tignored\t%s\n", v.Path, v.Reason)
			break
		}
		for _, name := range view.RuleNames(v.Rules) {
			sev, opts := view.Setting(v.Rules[name])
			fmt.Fprintf(tw, "%s\t%s\t%s\n", name, sev, opts)
		}
	case *view.Plan:
		for i, step := range v.Steps {
			fmt.Fprintf(tw, "%d\t%s\n", i+1, step)
		}
	case *view.Providers:
		for _, p := range v.Providers {
			installed := ""
			if p.Installed != nil {
				installed = fmt.Sprint(*p.Installed)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Name, p.Kind, installed, strings.Join(p.Configs, ","))
		}
	default:
		fmt.Fprintf(tw, "%+v\n", result)
	}
	return tw.Flush()
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
