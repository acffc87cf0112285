package options

import (
	"fmt"
	"strconv"

	"github.com/go-viper/mapstructure/v2"

	"github.com/arthur-debert/flatcfg/pkg/errors"
	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/globs"
)

// RawKeys are the option keys copied into the raw fragment
var RawKeys = []string{
	"name",
	"files",
	"ignores",
	"languageOptions",
	"linterOptions",
	"processor",
	"plugins",
	"rules",
	"settings",
}

// FromMap decodes a host-style options mapping. Each feature key takes a
// boolean or a mapping; a mapping enables the feature with those options.
// Booleans may be given as strings, as they arrive from the environment.
// Unknown keys are ignored.
func FromMap(m map[string]any) (Options, error) {
	var opts Options

	if v, ok := m["javascript"]; ok {
		if sub, isMap := asMap(v); isMap {
			if err := decode(sub, &opts.JavaScript); err != nil {
				return Options{}, wrapKey(err, "javascript")
			}
		}
	}

	var err error
	if opts.TypeScript, err = decodeFeature[TypeScriptOptions](m, "typescript"); err != nil {
		return Options{}, err
	}
	if opts.JSONC, err = decodeFeature[JSONCOptions](m, "jsonc"); err != nil {
		return Options{}, err
	}
	if opts.YAML, err = decodeFeature[YAMLOptions](m, "yaml"); err != nil {
		return Options{}, err
	}
	if opts.TOML, err = decodeFeature[TOMLOptions](m, "toml"); err != nil {
		return Options{}, err
	}
	if opts.Node, err = decodeFeature[NodeOptions](m, "node"); err != nil {
		return Options{}, err
	}
	if opts.Stylistic, err = decodeFeature[StylisticOptions](m, "stylistic"); err != nil {
		return Options{}, err
	}

	raw := make(map[string]any)
	for _, key := range RawKeys {
		if v, ok := m[key]; ok {
			raw[key] = v
		}
	}
	if len(raw) > 0 {
		if err := decode(raw, &opts.Fragment); err != nil {
			return Options{}, wrapKey(err, "raw fragment")
		}
		if err := validateGlobs(opts.Fragment); err != nil {
			return Options{}, err
		}
	}

	return opts, nil
}

// FragmentsFromList decodes a list of fragment mappings, such as the
// "configs" list of an options file.
func FragmentsFromList(v any) ([]fragment.Fragment, error) {
	if v == nil {
		return nil, nil
	}
	var frags []fragment.Fragment
	if err := decode(v, &frags); err != nil {
		return nil, wrapKey(err, "configs")
	}
	for _, f := range frags {
		if err := validateGlobs(f); err != nil {
			return nil, err
		}
	}
	return frags, nil
}

func decodeFeature[T any](m map[string]any, key string) (*Feature[T], error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}

	switch val := v.(type) {
	case bool:
		return &Feature[T]{Enabled: val}, nil
	case string:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return nil, errors.Newf(errors.ErrConfigParse, "option %s: expected a boolean or a mapping, got %q", key, val).
				WithDetail("key", key)
		}
		return &Feature[T]{Enabled: b}, nil
	}

	sub, isMap := asMap(v)
	if !isMap {
		return nil, errors.Newf(errors.ErrConfigParse, "option %s: expected a boolean or a mapping, got %T", key, v).
			WithDetail("key", key)
	}

	f := &Feature[T]{Enabled: true}
	if err := decode(sub, &f.Options); err != nil {
		return nil, wrapKey(err, key)
	}
	return f, nil
}

// validateGlobs rejects malformed files or ignores patterns
func validateGlobs(f fragment.Fragment) error {
	if err := globs.Validate(f.Files...); err != nil {
		return err
	}
	return globs.Validate(f.Ignores...)
}

func asMap(v any) (map[string]any, bool) {
	switch val := v.(type) {
	case map[string]any:
		return val, true
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = item
		}
		return out, true
	}
	return nil, false
}

func decode(input, result any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           result,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

func wrapKey(err error, key string) error {
	return errors.Wrapf(err, errors.ErrConfigParse, "failed to decode option %s", key)
}
