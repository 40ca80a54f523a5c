package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"
)

// Config holds the probe settings. Values come from the optional TOML file
// given with --config; command-line flags override them.
type Config struct {
	// Width and Height size the hidden window and the probe resources.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Debug enables synchronous GL debug output and debug logging.
	Debug bool `toml:"debug"`

	// CacheDir is the shader binary cache used by the shader check. Empty
	// disables caching.
	CacheDir string `toml:"cache_dir"`

	// Lang is the BCP 47 tag used to format numbers in reports.
	Lang string `toml:"lang"`
}

func defaultConfig() Config {
	return Config{Width: 256, Height: 256, Lang: "en"}
}

// readConfigFile merges the TOML file at path into cfg. Unknown keys are
// rejected.
func readConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// loadConfig builds the configuration for a command invocation.
func loadConfig(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()
	if path := ctx.String(configFlag.Name); path != "" {
		if err := readConfigFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if ctx.IsSet(widthFlag.Name) {
		cfg.Width = ctx.Int(widthFlag.Name)
	}
	if ctx.IsSet(heightFlag.Name) {
		cfg.Height = ctx.Int(heightFlag.Name)
	}
	if ctx.IsSet(debugFlag.Name) {
		cfg.Debug = ctx.Bool(debugFlag.Name)
	}
	if ctx.IsSet(cacheDirFlag.Name) {
		cfg.CacheDir = ctx.String(cacheDirFlag.Name)
	}
	if ctx.IsSet(langFlag.Name) {
		cfg.Lang = ctx.String(langFlag.Name)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if _, err := language.Parse(c.Lang); err != nil {
		return fmt.Errorf("invalid language %q: %w", c.Lang, err)
	}
	return nil
}

// tag returns the language of the configuration, falling back to English.
func (c Config) tag() language.Tag {
	t, err := language.Parse(c.Lang)
	if err != nil {
		return language.English
	}
	return t
}
