package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/flatcfg/internal/version"
	"github.com/arthur-debert/flatcfg/pkg/compose"
	"github.com/arthur-debert/flatcfg/pkg/errors"
	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/inspect"
	"github.com/arthur-debert/flatcfg/pkg/logging"
	"github.com/arthur-debert/flatcfg/pkg/options"
	"github.com/arthur-debert/flatcfg/pkg/probe"
	"github.com/arthur-debert/flatcfg/pkg/providers"
	"github.com/arthur-debert/flatcfg/pkg/render"
	"github.com/arthur-debert/flatcfg/pkg/ui"
	"github.com/arthur-debert/flatcfg/pkg/ui/view"
)

func newPrintCmd(g *globalFlags, fsys afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the composed flat config",
		Long: `Print loads the options, composes the flat config and prints the
fragment list. The output is JSON unless --format asks for something else.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := g.renderer(cmd, ui.FormatJSON)
			if err != nil {
				return err
			}
			frags, err := g.compose(cmd, fsys)
			if err != nil {
				return rendered(r, err)
			}
			return r.RenderResult(frags)
		},
	}
}

func newPlanCmd(g *globalFlags, fsys afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show which builders the loaded options turn on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := g.renderer(cmd, ui.FormatAuto)
			if err != nil {
				return err
			}
			doc, err := g.loadOptions()
			if err != nil {
				return rendered(r, err)
			}

			pr := g.newProbe(fsys)
			p := g.newPreset(pr)

			plan := &view.Plan{Enabled: enabled(options.Normalize(doc.Options, pr)), Sources: doc.Sources}
			for _, step := range p.Steps(doc.Options) {
				plan.Steps = append(plan.Steps, step.Name)
			}
			if len(doc.Configs) > 0 {
				plan.Steps = append(plan.Steps, "configs")
			}
			return r.RenderResult(plan)
		},
	}
}

func newInspectCmd(g *globalFlags, fsys afero.Fs) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "inspect <path>",
		Short: "Show the effective config for one file",
		Long: `Inspect computes the configuration the linter would apply to a file:
which fragments select it, whether it is ignored and the final rule
settings, later fragments winning.

The config is composed from the loaded options, or read from a printed
config with --from.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := g.renderer(cmd, ui.FormatAuto)
			if err != nil {
				return err
			}

			var frags []fragment.Fragment
			if from != "" {
				frags, err = readFragments(from)
			} else {
				frags, err = g.compose(cmd, fsys)
			}
			if err != nil {
				return rendered(r, err)
			}

			eff, err := inspect.File(frags, args[0])
			if err != nil {
				return rendered(r, err)
			}
			return r.RenderResult(eff)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Read the config from a file written by print (.json, .yaml, .toml)")
	return cmd
}

func newProvidersCmd(g *globalFlags, fsys afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List the known rule providers",
		Long: `Providers lists the rule providers flatcfg can build fragments from,
their baseline configs and whether they are installed under the project's
node_modules.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := g.renderer(cmd, ui.FormatAuto)
			if err != nil {
				return err
			}
			return r.RenderResult(listProviders(g.newProbe(fsys)))
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `To load completions:

Bash:
  $ source <(flatcfg completion bash)

Zsh:
  $ flatcfg completion zsh > "${fpath[1]}/_flatcfg"

Fish:
  $ flatcfg completion fish > ~/.config/fish/completions/flatcfg.fish

PowerShell:
  PS> flatcfg completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// compose loads the options and builds the config, "configs" entries last
func (g *globalFlags) compose(cmd *cobra.Command, fsys afero.Fs) ([]fragment.Fragment, error) {
	logger := logging.GetLogger("cli")
	doc, err := g.loadOptions()
	if err != nil {
		return nil, err
	}

	var user []compose.Producer
	if len(doc.Configs) > 0 {
		user = append(user, compose.Static(doc.Configs...))
	}

	p := g.newPreset(g.newProbe(fsys))
	frags, err := p.Build(cmd.Context(), doc.Options, user...)
	if err != nil {
		return nil, err
	}
	logger.Info().Int("fragments", len(frags)).Strs("sources", doc.Sources).Msg("Config composed")
	return frags, nil
}

func readFragments(path string) ([]fragment.Fragment, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return nil, errors.Newf(errors.ErrInvalidInput, "cannot tell the format of %s", path).
			WithDetail("path", path)
	}
	format, err := render.ParseFormat(ext[1:])
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "failed to read %s", path)
	}
	return render.Fragments(data, format)
}

func enabled(r options.Resolved) map[string]bool {
	return map[string]bool{
		"javascript":    true,
		"typescript":    r.TypeScriptEnabled(),
		"jsonc":         r.JSONC != nil,
		"yaml":          r.YAML != nil,
		"toml":          r.TOML != nil,
		"node":          r.NodeEnabled(),
		"node-security": r.NodeEnabled() && r.Node.Security,
		"stylistic":     r.StylisticEnabled(),
	}
}

func listProviders(pr probe.Probe) *view.Providers {
	out := &view.Providers{}
	for _, p := range providers.Builtin().Values() {
		installed := pr.PackageExists(p.Name)
		out.Providers = append(out.Providers, view.Provider{
			Name:        p.Name,
			Kind:        string(p.Kind),
			Namespace:   p.Namespace,
			Installed:   &installed,
			Configs:     p.ConfigNames(),
			Description: p.Description,
		})
	}
	return out
}
