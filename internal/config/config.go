// Package config provides configuration types and defaults for pinyinseg.
package config

import (
	"fmt"
	"time"

	"github.com/scalecode-solutions/pinyinseg"
	"github.com/scalecode-solutions/pinyinseg/homonym"
	"github.com/scalecode-solutions/pinyinseg/internal/log"
)

// Frequency table sources.
const (
	SourceAuto = "auto" // file if Table is set, dict otherwise
	SourceFile = "file" // homonym.Open(Table)
	SourceDict = "dict" // homonym.FromDict()
	SourceNone = "none" // no table, every lookup misses
)

// Config holds all configuration options for pinyinseg.
type Config struct {
	Table        string        `mapstructure:"table"`         // path to a .txt or .yaml frequency table
	Source       string        `mapstructure:"source"`        // "auto" (default), "file", "dict" or "none"
	IgnoreUmlaut bool          `mapstructure:"ignore_umlaut"` // sort ü together with u
	Subscript    bool          `mapstructure:"subscript"`     // render tones as subscripts
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`     // memoize rank lookups; 0 disables
	Log          LogConfig     `mapstructure:"log"`
}

// LogConfig holds logging options. Logging is off unless File is set.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Source: SourceAuto,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks the configuration for inconsistent values.
func (c Config) Validate() error {
	switch c.Source {
	case SourceAuto, SourceDict, SourceNone, "":
	case SourceFile:
		if c.Table == "" {
			return fmt.Errorf("source %q requires a table path", SourceFile)
		}
	default:
		return fmt.Errorf("unknown table source %q", c.Source)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must not be negative, got %s", c.CacheTTL)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// OpenTable builds the frequency table selected by the configuration. It
// returns a nil table for SourceNone.
func (c Config) OpenTable() (pinyinseg.FrequencyTable, error) {
	var table pinyinseg.FrequencyTable

	source := c.Source
	if source == SourceAuto || source == "" {
		source = SourceDict
		if c.Table != "" {
			source = SourceFile
		}
	}

	switch source {
	case SourceNone:
		return nil, nil
	case SourceFile:
		t, err := homonym.Open(c.Table)
		if err != nil {
			log.ErrorErr(log.CatTable, "loading frequency table", err, "path", c.Table)
			return nil, fmt.Errorf("loading frequency table: %w", err)
		}
		table = t
	case SourceDict:
		table = homonym.FromDict()
	default:
		return nil, fmt.Errorf("unknown table source %q", c.Source)
	}
	log.Debug(log.CatConfig, "frequency table ready", "source", source)

	if c.CacheTTL > 0 {
		table = homonym.Cached(table, c.CacheTTL)
	}
	return table, nil
}
