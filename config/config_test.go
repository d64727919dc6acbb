package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestValidate_DefaultsFormat(t *testing.T) {
	var cfg Config
	require.NoError(t, cfg.Validate())
	assert.Equal(t, FormatTable, cfg.Report.Format)
}

func TestValidate_Formats(t *testing.T) {
	for _, f := range []string{FormatTable, FormatJSON, FormatYAML, FormatTOML} {
		cfg := Config{Report: ReportConfig{Format: f}}
		assert.NoError(t, cfg.Validate(), f)
	}

	cfg := Config{Report: ReportConfig{Format: "xml"}}
	assert.Error(t, cfg.Validate())
}

func TestConfig_YAMLKeys(t *testing.T) {
	src := "report:\n  format: yaml\n  show_zero: true\n"

	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(src), &cfg))
	assert.Equal(t, FormatYAML, cfg.Report.Format)
	assert.True(t, cfg.Report.ShowZero)
}

// yamlSource serves a grove.yml body the way the core config does.
type yamlSource struct {
	body string
	err  error
}

func (s yamlSource) UnmarshalExtension(name string, target interface{}) error {
	if s.err != nil {
		return s.err
	}
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal([]byte(s.body), &doc); err != nil {
		return err
	}
	node, ok := doc[name]
	if !ok {
		return nil
	}
	return node.Decode(target)
}

func TestFromSource(t *testing.T) {
	tests := []struct {
		name     string
		src      extensionSource
		format   string
		showZero bool
	}{
		{name: "no config", src: nil, format: FormatTable},
		{name: "extension set", src: yamlSource{body: "quotefix:\n  report:\n    format: toml\n    show_zero: true\n"}, format: FormatTOML, showZero: true},
		{name: "extension absent", src: yamlSource{body: "name: project\n"}, format: FormatTable},
		{name: "invalid format", src: yamlSource{body: "quotefix:\n  report:\n    format: xml\n"}, format: FormatTable},
		{name: "unmarshal error", src: yamlSource{err: errors.New("boom")}, format: FormatTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := fromSource(tt.src)
			assert.Equal(t, tt.format, cfg.Report.Format)
			assert.Equal(t, tt.showZero, cfg.Report.ShowZero)
		})
	}
}

func TestLoad_MissingPathFallsBackToDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "missing", "grove.yml"))
	assert.Equal(t, FormatTable, cfg.Report.Format)
	assert.False(t, cfg.Report.ShowZero)
}
