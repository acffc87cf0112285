// Package cli holds the flatcfg command tree
package cli

import (
	"embed"
	stderrors "errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/flatcfg/internal/version"
	"github.com/arthur-debert/flatcfg/pkg/cobrax/topics"
	"github.com/arthur-debert/flatcfg/pkg/logging"
	"github.com/arthur-debert/flatcfg/pkg/options"
	"github.com/arthur-debert/flatcfg/pkg/preset"
	"github.com/arthur-debert/flatcfg/pkg/probe"
	"github.com/arthur-debert/flatcfg/pkg/providers"
	"github.com/arthur-debert/flatcfg/pkg/ui"
)

//go:embed topics/*.md
var topicFS embed.FS

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	verbosity    int
	root         string
	configFile   string
	sets         []string
	noUserConfig bool
	noEnv        bool
	probed       bool
	format       string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

func newRootCmd(fsys afero.Fs) *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "flatcfg",
		Short: "Compose ESLint flat configs from feature toggles",
		Long: `flatcfg assembles an ESLint flat config from a small set of feature
toggles: TypeScript, Node.js, stylistic rules and the JSONC, YAML and TOML
data dialects. It prints the composed config, explains which fragments apply
to a file and lists the rule providers it knows about.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerTo(cmd.ErrOrStderr(), g.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	rootCmd.SetVersionTemplate(version.String())

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&g.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	pf.StringVarP(&g.root, "root", "C", ".", "Project root searched for options files and node_modules")
	pf.StringVarP(&g.configFile, "config", "c", "", "Options file to read instead of the project file lookup")
	pf.StringArrayVar(&g.sets, "set", nil, "Set an option (key=value), applied after every file")
	pf.BoolVar(&g.noUserConfig, "no-user-config", false, "Do not read the per-user options file")
	pf.BoolVar(&g.noEnv, "no-env", false, "Do not read FLATCFG_* environment variables")
	pf.BoolVar(&g.probed, "probe", false, "Only use rule providers installed under node_modules")
	pf.StringVarP(&g.format, "format", "f", "auto", "Output format (auto, term, text, json, yaml, toml)")

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json", "yaml", "toml"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newPrintCmd(g, fsys))
	rootCmd.AddCommand(newPlanCmd(g, fsys))
	rootCmd.AddCommand(newInspectCmd(g, fsys))
	rootCmd.AddCommand(newProvidersCmd(g, fsys))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	if err := initTopics(rootCmd, topicFS); err != nil {
		log.Debug().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// Execute runs the command tree. Errors that no renderer has shown yet, such
// as flag or format errors, are printed to the command's stderr.
func Execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	var shown *renderedError
	if err != nil && !stderrors.As(err, &shown) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// renderedError marks an error already written by a renderer
type renderedError struct {
	err error
}

func (e *renderedError) Error() string { return e.err.Error() }

func (e *renderedError) Unwrap() error { return e.err }

func rendered(r ui.Renderer, err error) error {
	_ = r.RenderError(err)
	return &renderedError{err: err}
}

func initTopics(root *cobra.Command, efs embed.FS) error {
	sub, err := fs.Sub(efs, "topics")
	if err != nil {
		return err
	}
	m, err := topics.New(sub, topics.Options{Renderer: topics.NewGlamourRenderer()})
	if err != nil {
		return err
	}
	m.Install(root)
	return nil
}

// loadOptions reads the option layers selected by the global flags
func (g *globalFlags) loadOptions() (*options.Document, error) {
	return options.Load(options.LoadOptions{
		Root:           g.root,
		ConfigFile:     g.configFile,
		SkipUserConfig: g.noUserConfig,
		SkipEnv:        g.noEnv,
		Sets:           g.sets,
	})
}

// newProbe looks for packages under the project root
func (g *globalFlags) newProbe(fsys afero.Fs) probe.Probe {
	return probe.Memoize(probe.NewNodeModulesProbe(fsys, g.root))
}

// newPreset wires the probe and resolver chosen by the global flags
func (g *globalFlags) newPreset(pr probe.Probe) *preset.Preset {
	var res providers.Resolver = providers.NewRegistryResolver(nil)
	if g.probed {
		res = providers.NewProbedResolver(res, pr)
	}
	return preset.New(
		preset.WithProbe(pr),
		preset.WithResolver(res),
		preset.WithLogger(logging.GetLogger("preset")),
	)
}

// renderer builds the output renderer; fallback replaces FormatAuto
func (g *globalFlags) renderer(cmd *cobra.Command, fallback ui.Format) (ui.Renderer, error) {
	format, err := ui.ParseFormat(g.format)
	if err != nil {
		return nil, err
	}
	if format == ui.FormatAuto {
		format = fallback
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}
