package main

import (
	log "github.com/ChainSafe/log15"
	"github.com/skalenetwork/ima-testconf/internal/config"
	"github.com/urfave/cli/v2"
	"os"
)

var app = cli.NewApp()

var (
	Version = "1.0.0"
)

// init initializes CLI
func init() {
	app.Copyright = "Copyright 2019-Present SKALE Labs"
	app.Name = "imatest"
	app.Usage = "Resolve and check the IMA test harness configuration"
	app.Version = Version
	app.EnableBashCompletion = true
	app.Commands = []*cli.Command{
		&inspectCommand,
		&probeCommand,
	}

	app.Flags = append(app.Flags, config.VerbosityFlag)
}

func main() {
	if err := app.Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
