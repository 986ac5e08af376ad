// Package config loads soliterm settings from an HCL file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/soliterm/internal/savefile"
)

// Config holds every setting of the game after defaults are applied
type Config struct {
	Game        GameSettings
	Autosave    AutosaveSettings
	Log         LogSettings
	Display     DisplaySettings
	HistoryFile string
}

// GameSettings controls dealing and loading
type GameSettings struct {
	Seed       int64 // 0 picks a random seed
	StrictLoad bool  // reject saves that do not hold exactly the 52 cards
}

// AutosaveSettings controls the save written after every command
type AutosaveSettings struct {
	Enabled bool
	Path    string // empty means tmp.soliterm.$USER.save in the temp dir
}

// LogSettings controls the debug log. The terminal belongs to the game,
// so logs always go to a file.
type LogSettings struct {
	Level string
	File  string
}

// DisplaySettings controls rendering
type DisplaySettings struct {
	Color bool
}

// fileConfig mirrors the HCL layout. Every block and attribute is optional
// so that a partial file only overrides what it names.
type fileConfig struct {
	Game        *gameBlock     `hcl:"game,block"`
	Autosave    *autosaveBlock `hcl:"autosave,block"`
	Log         *logBlock      `hcl:"log,block"`
	Display     *displayBlock  `hcl:"display,block"`
	HistoryFile *string        `hcl:"history_file,optional"`
}

type gameBlock struct {
	Seed       *int64 `hcl:"seed,optional"`
	StrictLoad *bool  `hcl:"strict_load,optional"`
}

type autosaveBlock struct {
	Enabled *bool   `hcl:"enabled,optional"`
	Path    *string `hcl:"path,optional"`
}

type logBlock struct {
	Level *string `hcl:"level,optional"`
	File  *string `hcl:"file,optional"`
}

type displayBlock struct {
	Color *bool `hcl:"color,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	tmp := os.TempDir()
	return &Config{
		Autosave: AutosaveSettings{Enabled: true},
		Log: LogSettings{
			Level: "info",
			File:  filepath.Join(tmp, "soliterm.log"),
		},
		Display:     DisplaySettings{Color: true},
		HistoryFile: filepath.Join(tmp, "soliterm_history"),
	}
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "soliterm.hcl"
	}
	return filepath.Join(dir, "soliterm", "config.hcl")
}

// Load reads filename on top of the defaults. A missing file yields the
// defaults unchanged.
func Load(filename string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	fc.apply(cfg)
	return cfg, nil
}

func (fc *fileConfig) apply(cfg *Config) {
	if g := fc.Game; g != nil {
		set(&cfg.Game.Seed, g.Seed)
		set(&cfg.Game.StrictLoad, g.StrictLoad)
	}
	if a := fc.Autosave; a != nil {
		set(&cfg.Autosave.Enabled, a.Enabled)
		set(&cfg.Autosave.Path, a.Path)
	}
	if l := fc.Log; l != nil {
		set(&cfg.Log.Level, l.Level)
		set(&cfg.Log.File, l.File)
	}
	if d := fc.Display; d != nil {
		set(&cfg.Display.Color, d.Color)
	}
	set(&cfg.HistoryFile, fc.HistoryFile)
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Validate checks the configuration for values the game cannot use
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	if c.Log.File == "" {
		return fmt.Errorf("log file is required")
	}
	if c.Game.Seed < 0 {
		return fmt.Errorf("seed cannot be negative: %d", c.Game.Seed)
	}
	return nil
}

// AutosaveFile returns the autosave location, or "" when autosave is off
func (c *Config) AutosaveFile() string {
	if !c.Autosave.Enabled {
		return ""
	}
	if c.Autosave.Path != "" {
		return c.Autosave.Path
	}
	return savefile.AutosavePath(os.TempDir(), os.Getenv("USER"))
}
