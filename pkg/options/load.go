package options

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	ferrors "github.com/arthur-debert/flatcfg/pkg/errors"
	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/logging"
)

// EnvPrefix prefixes environment variables read as options
const EnvPrefix = "FLATCFG_"

// ProjectFiles are looked up in the project root, first match wins
var ProjectFiles = []string{".flatcfg.toml", ".flatcfg.yaml", ".flatcfg.yml"}

// Defaults are the documented feature defaults, loaded as the first layer.
// TypeScript is left out so it keeps following the probe.
func Defaults() map[string]any {
	return map[string]any{
		"jsonc":     true,
		"yaml":      true,
		"toml":      false,
		"node":      false,
		"stylistic": true,
	}
}

// LoadOptions selects the layers Load reads
type LoadOptions struct {
	// Root is the project directory searched for ProjectFiles
	Root string
	// ConfigFile replaces the project file lookup when set
	ConfigFile string
	// SkipUserConfig leaves out $XDG_CONFIG_HOME/flatcfg/config.toml
	SkipUserConfig bool
	// SkipEnv leaves out FLATCFG_* variables
	SkipEnv bool
	// Sets are key=value pairs applied last
	Sets []string
}

// Document is the outcome of Load
type Document struct {
	Options Options
	// Configs are the trailing user fragments listed under "configs"
	Configs []fragment.Fragment
	// Sources lists the files that were read, in load order
	Sources []string
}

// UserConfigPath returns the location of the per-user options file
func UserConfigPath() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, "flatcfg", "config.toml")
}

// Load merges the option layers, later layers winning: defaults, the user
// file, the project file, the environment and finally Sets.
func Load(lo LoadOptions) (*Document, error) {
	logger := logging.GetLogger("options")
	k := koanf.New(".")
	doc := &Document{}

	// 1. Defaults
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, ferrors.Wrap(err, ferrors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config
	if !lo.SkipUserConfig {
		path := UserConfigPath()
		if _, err := os.Stat(path); err == nil {
			if err := loadFile(k, path); err != nil {
				return nil, err
			}
			doc.Sources = append(doc.Sources, path)
		}
	}

	// 3. Project config
	projectFile, err := findProjectFile(lo)
	if err != nil {
		return nil, err
	}
	if projectFile != "" {
		if err := loadFile(k, projectFile); err != nil {
			return nil, err
		}
		doc.Sources = append(doc.Sources, projectFile)
	}

	// 4. Environment
	if !lo.SkipEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
		if err != nil {
			return nil, ferrors.Wrap(err, ferrors.ErrConfigLoad, "failed to load environment")
		}
	}

	// 5. --set pairs
	if len(lo.Sets) > 0 {
		sets, err := parseSets(lo.Sets)
		if err != nil {
			return nil, err
		}
		if err := k.Load(confmap.Provider(sets, "."), nil); err != nil {
			return nil, ferrors.Wrap(err, ferrors.ErrConfigLoad, "failed to apply --set values")
		}
	}

	raw := k.Raw()
	doc.Options, err = FromMap(raw)
	if err != nil {
		return nil, err
	}
	doc.Configs, err = FragmentsFromList(raw["configs"])
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Strs("sources", doc.Sources).
		Int("configs", len(doc.Configs)).
		Msg("Options loaded")
	return doc, nil
}

func findProjectFile(lo LoadOptions) (string, error) {
	if lo.ConfigFile != "" {
		if _, err := os.Stat(lo.ConfigFile); err != nil {
			return "", ferrors.Wrapf(err, ferrors.ErrConfigLoad, "config file %s not found", lo.ConfigFile)
		}
		return lo.ConfigFile, nil
	}

	root := lo.Root
	if root == "" {
		root = "."
	}
	for _, name := range ProjectFiles {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return ferrors.Newf(ferrors.ErrConfigLoad, "unsupported config file type %s", path).
			WithDetail("path", path)
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return ferrors.Wrapf(err, ferrors.ErrConfigParse, "failed to load config from %s", path)
	}
	return nil
}

// envKey maps FLATCFG_NODE_SECURITY to node.security
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}

func parseSets(pairs []string) (map[string]any, error) {
	out := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, ferrors.Newf(ferrors.ErrInvalidInput, "invalid --set value %q, expected key=value", pair)
		}
		out[key] = value
	}
	return out, nil
}
