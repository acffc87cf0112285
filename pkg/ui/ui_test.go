package ui_test

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/inspect"
	"github.com/arthur-debert/flatcfg/pkg/options"
	"github.com/arthur-debert/flatcfg/pkg/ui"
	"github.com/arthur-debert/flatcfg/pkg/ui/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func effective() *inspect.Effective {
	return &inspect.Effective{
		Path:    "src/index.js",
		Applied: []string{"flatcfg:javascript"},
		Rules: fragment.Rules{
			"no-console": []any{"error", map[string]any{"allow": []any{"warn"}}},
			"eqeqeq":     "warn",
		},
	}
}

func TestNewRenderer(t *testing.T) {
	for _, format := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON, ui.FormatYAML, ui.FormatTOML} {
		t.Run(format.String(), func(t *testing.T) {
			r, err := ui.NewRenderer(format, &bytes.Buffer{})
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}

	_, err := ui.NewRenderer(ui.Format(999), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestTextRendererEffective(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(effective()))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "eqeqeq")
	assert.Contains(t, string(lines[1]), "no-console")
	assert.Contains(t, string(lines[1]), `[{"allow":["warn"]}]`)
}

func TestTextRendererIgnored(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(&inspect.Effective{Path: "dist/a.js", Ignored: true, Reason: "global ignores"}))
	assert.Contains(t, buf.String(), "ignored")
}

func TestTerminalRendererPlan(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(&view.Plan{Steps: []string{"ignores", "javascript"}}))
	assert.Contains(t, buf.String(), "ignores")
	assert.Contains(t, buf.String(), "javascript")
}

func TestTerminalRendererProviders(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(&view.Providers{Providers: []view.Provider{
		{Name: "eslint-plugin-n", Kind: "plugin", Namespace: "n", Installed: options.Bool(false)},
	}}))
	assert.Contains(t, buf.String(), "eslint-plugin-n")
	assert.Contains(t, buf.String(), "missing")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(effective()))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "src/index.js", decoded["path"])

	buf.Reset()
	require.NoError(t, r.RenderError(stderrors.New("boom")))
	assert.JSONEq(t, `{"error":"boom"}`, buf.String())

	buf.Reset()
	require.NoError(t, r.RenderMessage("done"))
	assert.JSONEq(t, `{"message":"done"}`, buf.String())
}

func TestSetting(t *testing.T) {
	sev, opts := view.Setting([]any{"error", "never"})
	assert.Equal(t, "error", sev)
	assert.Equal(t, `["never"]`, opts)

	sev, opts = view.Setting("off")
	assert.Equal(t, "off", sev)
	assert.Empty(t, opts)
}
