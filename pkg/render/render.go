// Package render serialises fragment lists and inspection results as JSON,
// YAML or TOML.
package render

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/flatcfg/pkg/errors"
	"github.com/arthur-debert/flatcfg/pkg/fragment"
)

// Format is a serialisation format
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Formats lists every supported format
var Formats = []Format{JSON, YAML, TOML}

// ParseFormat parses a format name; "yml" is accepted for YAML
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown output format %q", s).
			WithDetail("format", s)
	}
}

// Document is the TOML top level for a fragment list, which TOML cannot
// express as a bare array
type Document struct {
	Configs []fragment.Fragment `json:"configs" yaml:"configs" toml:"configs"`
}

// Encode writes v to w in the given format. A fragment list is written
// under a "configs" key in TOML.
func Encode(w io.Writer, format Format, v any) error {
	var err error
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		err = enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(v)
		if err == nil {
			err = enc.Close()
		}
	case TOML:
		if frags, ok := v.([]fragment.Fragment); ok {
			v = Document{Configs: frags}
		}
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		err = enc.Encode(v)
	default:
		return errors.Newf(errors.ErrRender, "unsupported format %q", format).
			WithDetail("format", string(format))
	}
	return errors.Wrapf(err, errors.ErrRender, "failed to encode %s", format)
}

// Bytes is Encode into a buffer
func Bytes(format Format, v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, format, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Fragments decodes a fragment list previously written by Encode
func Fragments(data []byte, format Format) ([]fragment.Fragment, error) {
	var frags []fragment.Fragment
	var err error
	switch format {
	case JSON:
		err = json.Unmarshal(data, &frags)
	case YAML:
		err = yaml.Unmarshal(data, &frags)
	case TOML:
		var doc Document
		err = toml.Unmarshal(data, &doc)
		frags = doc.Configs
	default:
		return nil, errors.Newf(errors.ErrRender, "unsupported format %q", format).
			WithDetail("format", string(format))
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to decode %s fragments", format)
	}
	return frags, nil
}
