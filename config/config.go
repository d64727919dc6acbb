package config

import (
	"fmt"

	core_config "github.com/grovetools/core/config"
)

//go:generate go run ../tools/schema-generator

// ExtensionName is the key of the quotefix block in grove.yml.
const ExtensionName = "quotefix"

// Supported report formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTOML  = "toml"
)

// ReportConfig defines how the check command presents its findings.
type ReportConfig struct {
	// Format selects the output format of `quotefix check`.
	// "table" (default), "json", "yaml" or "toml".
	Format string `yaml:"format,omitempty"`

	// ShowZero lists quote kinds that were not found.
	// false (default): only kinds with at least one occurrence are shown.
	ShowZero bool `yaml:"show_zero,omitempty"`
}

// Config is the top-level configuration structure for quotefix.
type Config struct {
	Report ReportConfig `yaml:"report,omitempty"`
}

// Validate checks option values and fills in defaults.
func (c *Config) Validate() error {
	switch c.Report.Format {
	case "":
		c.Report.Format = FormatTable
	case FormatTable, FormatJSON, FormatYAML, FormatTOML:
	default:
		return fmt.Errorf("invalid report format %q: expected table, json, yaml or toml", c.Report.Format)
	}
	return nil
}

// extensionSource is the part of a loaded grove configuration quotefix reads.
type extensionSource interface {
	UnmarshalExtension(name string, target interface{}) error
}

// Load reads the quotefix extension from the grove configuration at path, or
// from the default grove configuration when path is empty. A missing or
// unreadable grove.yml yields the defaults.
func Load(path string) Config {
	var src extensionSource
	if path != "" {
		if coreCfg, err := core_config.LoadFrom(path); err == nil {
			src = coreCfg
		}
	} else if coreCfg, err := core_config.LoadDefault(); err == nil {
		src = coreCfg
	}
	return fromSource(src)
}

func fromSource(src extensionSource) Config {
	var cfg Config
	if src != nil {
		var ext Config
		if err := src.UnmarshalExtension(ExtensionName, &ext); err == nil {
			cfg = ext
		}
	}
	if err := cfg.Validate(); err != nil {
		cfg = Config{Report: ReportConfig{Format: FormatTable}}
	}
	return cfg
}
