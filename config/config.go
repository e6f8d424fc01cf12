// Package config loads user settings: glyph overrides, audio levels, key
// bindings and the debug switch. Precedence is defaults, then config.toml,
// then environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/picross/audio"
	"github.com/lixenwraith/picross/input"
	"github.com/lixenwraith/picross/render"
)

// EnvDebug enables the session debug log
const EnvDebug = "PICROSS_DEBUG"

// Config is the resolved session configuration
type Config struct {
	Glyphs render.Glyphs
	Keymap *input.Keymap
	Audio  *audio.Config
	Debug  bool

	// Source is the file that was read, empty when defaults were used
	Source string
}

// fileConfig mirrors config.toml; pointers distinguish absent from zero
type fileConfig struct {
	Glyphs struct {
		Blank   *string `toml:"blank"`
		Filled  *string `toml:"filled"`
		Crossed *string `toml:"crossed"`
		Cursor  *string `toml:"cursor"`
	} `toml:"glyphs"`

	Audio struct {
		Enabled *bool `toml:"enabled"`
		Volume  *int  `toml:"volume"`
	} `toml:"audio"`

	Keys  map[string]string `toml:"keys"`
	Runes map[string]string `toml:"runes"`

	Debug *bool `toml:"debug"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Glyphs: render.DefaultGlyphs(),
		Keymap: input.DefaultKeymap(),
		Audio:  audio.DefaultConfig(),
	}
}

// Load reads the config file at Path, if any, and applies environment
// overrides. A missing file yields defaults
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads one config file and applies environment overrides
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := cfg.apply(data); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		cfg.Source = path
	}

	cfg.applyEnv()
	return cfg, nil
}

// Parse builds a configuration from TOML data without consulting the environment
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.apply(data); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) apply(data []byte) error {
	var fc fileConfig
	md, err := toml.Decode(string(data), &fc)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown entry %q", undecoded[0].String())
	}

	if fc.Glyphs.Blank != nil {
		c.Glyphs.Blank = *fc.Glyphs.Blank
	}
	if fc.Glyphs.Filled != nil {
		c.Glyphs.Filled = *fc.Glyphs.Filled
	}
	if fc.Glyphs.Crossed != nil {
		c.Glyphs.Crossed = *fc.Glyphs.Crossed
	}
	if fc.Glyphs.Cursor != nil {
		lt, err := render.LineTypeByName(*fc.Glyphs.Cursor)
		if err != nil {
			return fmt.Errorf("[glyphs] cursor: %w", err)
		}
		c.Glyphs.Cursor = lt
	}
	if err := c.Glyphs.Validate(); err != nil {
		return fmt.Errorf("[glyphs]: %w", err)
	}

	if fc.Audio.Enabled != nil {
		c.Audio.Enabled = *fc.Audio.Enabled
	}
	if fc.Audio.Volume != nil {
		if v := *fc.Audio.Volume; v < 0 || v > 100 {
			return fmt.Errorf("[audio] volume %d out of range 0-100", v)
		}
		c.Audio.MasterVolume = audio.PercentToVolume(*fc.Audio.Volume)
	}

	override, err := input.Bindings{Keys: fc.Keys, Runes: fc.Runes}.Keymap()
	if err != nil {
		return err
	}
	c.Keymap = input.Merge(c.Keymap, override)

	if fc.Debug != nil {
		c.Debug = *fc.Debug
	}
	return nil
}

func (c *Config) applyEnv() {
	audio.ApplyEnv(c.Audio)
	if v := os.Getenv(EnvDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
}
