package main

import (
	"os"

	"github.com/idilsaglam/shoplist/internal/cli"
	"github.com/idilsaglam/shoplist/internal/config"
	"github.com/idilsaglam/shoplist/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		ui.Fail(err.Error())
		os.Exit(2)
	}
	if err := cfg.Apply(); err != nil {
		ui.Fail(err.Error())
		os.Exit(2)
	}

	// Hand the remaining args to the CLI runner.
	os.Exit(cli.Run(cfg.Args, cli.Options{
		Group:     cfg.Group,
		AltScreen: cfg.AltScreen,
		DebugLog:  cfg.DebugLog,
	}))
}
