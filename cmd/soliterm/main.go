package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"withargs" help:"Play an interactive game (default)"`
	Show    ShowCmd          `cmd:"" help:"Print a saved game"`
	New     NewCmd           `cmd:"" help:"Deal a new game into a save file"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("soliterm"),
		kong.Description("Klondike solitaire in the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
