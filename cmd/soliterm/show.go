package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/soliterm/internal/render"
	"github.com/lox/soliterm/internal/savefile"
)

// ShowCmd prints a saved game without playing it
type ShowCmd struct {
	File    string `kong:"arg,help='Save file to print',type='existingfile'"`
	Strict  bool   `kong:"help='Reject boards that do not hold each card exactly once'"`
	NoColor bool   `kong:"help='Disable colors'"`

	out io.Writer
}

func (c *ShowCmd) Run() error {
	out := c.out
	if out == nil {
		out = os.Stdout
	}

	b, err := savefile.Load(c.File, c.Strict)
	if err != nil {
		return err
	}

	r := render.New(out, !c.NoColor)
	fmt.Fprintln(out, r.Board(b))
	fmt.Fprintln(out, r.Status(b))
	if b.IsWon() {
		fmt.Fprintln(out, r.Styles().Success.Render("This game is won"))
	}
	return nil
}
