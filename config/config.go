package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/hobeone/tvnames/naming"
	"github.com/hobeone/tvnames/quality"
	"github.com/pelletier/go-toml/v2"
)

// Config is the base struct for tvnames configuration information.
type Config struct {
	Naming  namingConfig  `toml:"naming"`
	Quality qualityConfig `toml:"quality"`
}

type namingConfig struct {
	Anime           bool     `toml:"anime"`            // try the anime grammars after the standard ones
	MatchTimeout    Duration `toml:"match_timeout"`    // per grammar, per name
	MediaExtensions []string `toml:"media_extensions"` // on top of the builtin list
	IgnoreSamples   bool     `toml:"ignore_samples"`
}

type qualityConfig struct {
	Wanted []quality.Quality `toml:"wanted"`
}

// Duration is a time.Duration written as "250ms", "1s" etc.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// NewConfig returns a Config struct with reasonable defaults set.
func NewConfig() *Config {
	return &Config{
		Naming: namingConfig{
			MatchTimeout:  Duration{naming.DefaultMatchTimeout},
			IgnoreSamples: true,
		},
		Quality: qualityConfig{
			Wanted: append([]quality.Quality{}, quality.ALL_HD_QUALITIES...),
		},
	}
}

// NewTestConfig returns a Config instance suitable for use in testing.
func NewTestConfig() *Config {
	c := NewConfig()
	c.Naming.MatchTimeout = Duration{time.Second}
	return c
}

func replaceTildeInPath(path string) string {
	usr, err := user.Current()
	if err != nil {
		return path
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		return filepath.Join(usr.HomeDir, path[1:])
	}
	return path
}

// ReadConfig decodes a TOML config file on top of the current values.
func (c *Config) ReadConfig(configPath string) error {
	absConfigPath, err := filepath.Abs(replaceTildeInPath(configPath))
	if err != nil {
		return fmt.Errorf("failed to expand absolute path for %s", configPath)
	}

	filecont, err := os.ReadFile(absConfigPath)
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(filecont))
	dec.DisallowUnknownFields()
	if err = dec.Decode(c); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			line, col := derr.Position()
			return fmt.Errorf("error parsing config file %s:\nError at line %d, column %d:\n%s",
				absConfigPath, line, col, derr.String())
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return fmt.Errorf("unknown keys in config file %s:\n%s", absConfigPath, serr.String())
		}
		return fmt.Errorf("error parsing config file %s: %w", absConfigPath, err)
	}

	if c.Naming.MatchTimeout.Duration <= 0 {
		return fmt.Errorf("config file %s: match_timeout must be positive, got %s",
			absConfigPath, c.Naming.MatchTimeout.Duration)
	}
	return nil
}

// NameParser builds a naming.NameParser from the configuration.
func (c *Config) NameParser() (*naming.NameParser, error) {
	name, vocab, entries := "standard", naming.StandardFields, naming.StandardRegexes
	if c.Naming.Anime {
		name, vocab, entries = "all", naming.AnimeFields, naming.AllRegexes
	}
	table, err := naming.NewTable(name, vocab, entries, naming.WithMatchTimeout(c.Naming.MatchTimeout.Duration))
	if err != nil {
		return nil, err
	}

	np := naming.NewNameParser(table)
	np.MediaExtensions = c.Naming.MediaExtensions
	np.IgnoreSamples = c.Naming.IgnoreSamples
	return np, nil
}

// WantedQualities returns the configured acceptable qualities.
func (c *Config) WantedQualities() quality.QualityGroup {
	return quality.QualityGroup{
		Name:      "config",
		Qualities: c.Quality.Wanted,
	}
}
