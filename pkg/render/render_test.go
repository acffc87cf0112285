package render_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/arthur-debert/flatcfg/pkg/errors"
	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/options"
	"github.com/arthur-debert/flatcfg/pkg/preset"
	"github.com/arthur-debert/flatcfg/pkg/probe"
	"github.com/arthur-debert/flatcfg/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []fragment.Fragment {
	return []fragment.Fragment{
		{Ignores: []string{"**/dist/"}},
		{
			Name:  "flatcfg:yaml",
			Files: []string{"**/*.y?(a)ml"},
			LanguageOptions: &fragment.LanguageOptions{
				Parser: "yaml-eslint-parser",
			},
			Plugins: map[string]string{"yml": "eslint-plugin-yml"},
			Rules: fragment.Rules{
				"yml/indent":       []any{"error", 2},
				"yml/quotes":       []any{"error", map[string]any{"prefer": "single"}},
				"yml/plain-scalar": "error",
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    render.Format
		wantErr bool
	}{
		{"json", render.JSON, false},
		{"YAML", render.YAML, false},
		{"yml", render.YAML, false},
		{" toml ", render.TOML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := render.ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		format   render.Format
		contains []string
	}{
		{render.JSON, []string{`"name": "flatcfg:yaml"`, `"ignores": [`, `"yml/indent": [`}},
		{render.YAML, []string{"flatcfg:yaml", "parser: yaml-eslint-parser", "yml/plain-scalar: error"}},
		{render.TOML, []string{"[[configs]]", "flatcfg:yaml", "yml/plain-scalar"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, render.Encode(&buf, tt.format, sample()))

			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestEncodeJSONKeepsGlobCharacters(t *testing.T) {
	out, err := render.Bytes(render.JSON, sample())
	require.NoError(t, err)
	assert.Contains(t, string(out), `"**/*.y?(a)ml"`)
}

func TestEncodeUnknownFormat(t *testing.T) {
	err := render.Encode(&bytes.Buffer{}, render.Format("xml"), sample())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRender))
}

func TestFragmentsReadBackEncodedLists(t *testing.T) {
	p := preset.New(preset.WithProbe(probe.Installed()))
	frags, err := p.Build(context.Background(), options.Options{
		TOML: options.Enable[options.TOMLOptions](),
	})
	require.NoError(t, err)

	for _, format := range render.Formats {
		t.Run(string(format), func(t *testing.T) {
			out, err := render.Bytes(format, frags)
			require.NoError(t, err)

			back, err := render.Fragments(out, format)
			require.NoError(t, err)
			require.Len(t, back, len(frags))
			for i := range frags {
				assert.Equal(t, frags[i].Name, back[i].Name)
				assert.Equal(t, frags[i].Files, back[i].Files)
				assert.Len(t, back[i].Rules, len(frags[i].Rules))
			}
		})
	}

	t.Run("yaml_is_lossless", func(t *testing.T) {
		out, err := render.Bytes(render.YAML, frags)
		require.NoError(t, err)
		back, err := render.Fragments(out, render.YAML)
		require.NoError(t, err)
		assert.Equal(t, frags, back)
	})
}

func TestFragmentsBadInput(t *testing.T) {
	_, err := render.Fragments([]byte("{not json"), render.JSON)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}
