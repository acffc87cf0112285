// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/inspect"
	"github.com/arthur-debert/flatcfg/pkg/ui/view"
)

// Renderer writes lipgloss-styled output
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders the known result types; others are printed as-is
func (r *Renderer) RenderResult(result any) error {
	var b strings.Builder
	switch v := result.(type) {
	case []fragment.Fragment:
		r.fragments(&b, v)
	case *inspect.Effective:
		r.effective(&b, v)
	case *view.Plan:
		r.plan(&b, v)
	case *view.Providers:
		if err := r.providers(&b, v); err != nil {
			return err
		}
	default:
		fmt.Fprintf(&b, "%+v\n", result)
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error in the error style
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, errorStyle.Render("Error:")+" "+err.Error())
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, messageStyle.Render(msg))
	return err
}

func (r *Renderer) fragments(b *strings.Builder, frags []fragment.Fragment) {
	fmt.Fprintln(b, titleStyle.Render(fmt.Sprintf("%d fragments", len(frags))))
	for i, f := range frags {
		line := nameStyle.Render(view.Label(f, i))
		if len(f.Files) > 0 {
			line += " " + pathStyle.Render(strings.Join(f.Files, ", "))
		}
		if len(f.Rules) > 0 {
			line += " " + mutedStyle.Render(fmt.Sprintf("(%d rules)", len(f.Rules)))
		}
		fmt.Fprintln(b, indentStyle.Render(line))
	}
}

func (r *Renderer) effective(b *strings.Builder, e *inspect.Effective) {
	fmt.Fprintln(b, titleStyle.Render(e.Path))
	if e.Ignored {
		fmt.Fprintln(b, indentStyle.Render(warnStyle.Render("ignored: ")+e.Reason))
		return
	}

	fmt.Fprintln(b, indentStyle.Render(mutedStyle.Render("fragments: ")+strings.Join(e.Applied, ", ")))
	if e.LanguageOptions != nil && e.LanguageOptions.Parser != "" {
		fmt.Fprintln(b, indentStyle.Render(mutedStyle.Render("parser: ")+e.LanguageOptions.Parser))
	}
	fmt.Fprintln(b)

	for _, name := range view.RuleNames(e.Rules) {
		sev, opts := view.Setting(e.Rules[name])
		line := severityStyle(sev).Width(6).Render(sev) + " " + name
		if opts != "" {
			line += " " + mutedStyle.Render(opts)
		}
		fmt.Fprintln(b, indentStyle.Render(line))
	}
}

func (r *Renderer) plan(b *strings.Builder, p *view.Plan) {
	fmt.Fprintln(b, titleStyle.Render("Build plan"))
	for i, step := range p.Steps {
		fmt.Fprintln(b, indentStyle.Render(mutedStyle.Render(fmt.Sprintf("%2d.", i+1))+" "+nameStyle.Render(step)))
	}
	if len(p.Sources) > 0 {
		fmt.Fprintln(b)
		fmt.Fprintln(b, mutedStyle.Render("read from "+strings.Join(p.Sources, ", ")))
	}
}

func (r *Renderer) providers(b *strings.Builder, p *view.Providers) error {
	fmt.Fprintln(b, titleStyle.Render("Rule providers"))

	rows := pterm.TableData{{"Package", "Kind", "Namespace", "Status", "Configs"}}
	for _, pr := range p.Providers {
		status := mutedStyle.Render("-")
		if pr.Installed != nil {
			if *pr.Installed {
				status = okStyle.Render("installed")
			} else {
				status = warnStyle.Render("missing")
			}
		}
		rows = append(rows, []string{
			nameStyle.Render(pr.Name),
			pr.Kind,
			pr.Namespace,
			status,
			strings.Join(pr.Configs, ", "),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(b, table)
	return nil
}
