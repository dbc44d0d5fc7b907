package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Replay  ReplayCmd        `cmd:"" help:"Step through a hand's action frames"`
	Stats   StatsCmd         `cmd:"" help:"Aggregate player statistics over session files"`
	Ranges  RangesCmd        `cmd:"" help:"Show a player's starting-hand range as VPIP rates"`
	Export  ExportCmd        `cmd:"" help:"Convert an OHH session file to PHH format"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokertracker"),
		kong.Description("Replay and analyze Open Hand History records"),
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
