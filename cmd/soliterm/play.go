package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/lox/soliterm/cmd/soliterm/shared"
	"github.com/lox/soliterm/internal/config"
	"github.com/lox/soliterm/internal/randutil"
	"github.com/lox/soliterm/internal/render"
	"github.com/lox/soliterm/internal/session"
	"github.com/lox/soliterm/klondike"
)

// PlayCmd runs the interactive game
type PlayCmd struct {
	Config     string `kong:"help='Config file (default: user config dir)',type='path'"`
	Seed       *int64 `kong:"help='Deterministic deal seed (optional)'"`
	Load       string `kong:"short='l',help='Start from a saved game',type='existingfile'"`
	Debug      bool   `kong:"help='Enable debug logging'"`
	NoAutosave bool   `kong:"help='Do not keep an autosave file'"`
	NoColor    bool   `kong:"help='Disable colors'"`
}

// loadConfig reads the config file and applies flag overrides
func (c *PlayCmd) loadConfig() (*config.Config, error) {
	path := c.Config
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if c.Seed != nil {
		cfg.Game.Seed = *c.Seed
	}
	if c.NoAutosave {
		cfg.Autosave.Enabled = false
	}
	if c.NoColor {
		cfg.Display.Color = false
	}
	if c.Debug {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *PlayCmd) Run() error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	logger, logFile, err := shared.SetupLogger(cfg.Log.File, cfg.Log.Level, c.Debug)
	if err != nil {
		return err
	}
	defer logFile.Close()

	seed := randutil.Resolve(cfg.Game.Seed)
	rng := randutil.New(seed)
	logger.Info("Starting soliterm", "version", version, "seed", seed, "autosave", cfg.AutosaveFile())

	r := render.New(os.Stdout, cfg.Display.Color)
	s := session.New(session.Options{
		Deal:         func() *klondike.Board { return klondike.NewBoard(rng) },
		AutosavePath: cfg.AutosaveFile(),
		StrictLoad:   cfg.Game.StrictLoad,
		Out:          os.Stdout,
		Renderer:     r,
		Logger:       logger,
	})

	if c.Load != "" {
		if err := s.Load(c.Load); err != nil {
			return err
		}
	}

	term, err := session.NewReadlineTerminal(cfg.HistoryFile, s.CommandNames())
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	defer term.Close()

	ctx, stop := shared.SetupSignalHandler(logger)
	defer stop()
	// Closing the terminal unblocks a pending read
	context.AfterFunc(ctx, func() { term.Close() })

	fmt.Println(r.Styles().Success.Render("♠ ♥ soliterm ♦ ♣") + "  " + r.Styles().Status.Render("type 'help' for commands"))

	err = s.Run(ctx, term)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
