package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/soliterm/internal/randutil"
	"github.com/lox/soliterm/internal/savefile"
	"github.com/lox/soliterm/klondike"
)

// NewCmd deals a game and saves it, for sharing a deal or playing it later
// with play --load
type NewCmd struct {
	File  string `kong:"arg,help='Save file to write',type='path'"`
	Seed  *int64 `kong:"help='Deterministic deal seed (optional)'"`
	Force bool   `kong:"short='f',help='Overwrite an existing file'"`

	out io.Writer
}

func (c *NewCmd) Run() error {
	out := c.out
	if out == nil {
		out = os.Stdout
	}

	if !c.Force && savefile.Exists(c.File) {
		return fmt.Errorf("%s already exists, use --force to overwrite", c.File)
	}

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
	}
	seed = randutil.Resolve(seed)

	b := klondike.NewBoard(randutil.New(seed))
	if err := savefile.Save(c.File, b); err != nil {
		return err
	}
	fmt.Fprintf(out, "Dealt game %d to %s\n", seed, c.File)
	return nil
}
