package main

import (
	"github.com/ChainSafe/log15"
	"github.com/ethereum/go-ethereum/log"
	"github.com/skalenetwork/ima-testconf/internal/config"
	"github.com/urfave/cli/v2"
	"os"
	"strconv"
)

// startLogger applies --verbosity to both the go-ethereum and the log15 root loggers.
func startLogger(ctx *cli.Context) error {
	handler := log.Root().GetHandler()
	var lvl log.Lvl

	if lvlToInt, err := strconv.Atoi(ctx.String(config.VerbosityFlag.Name)); err == nil {
		lvl = log.Lvl(lvlToInt)
	} else if lvl, err = log.LvlFromString(ctx.String(config.VerbosityFlag.Name)); err != nil {
		return err
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, handler))
	log15.Root().SetHandler(log15.LvlFilterHandler(log15.Lvl(lvl), log15.StreamHandler(os.Stderr, log15.TerminalFormat())))

	return nil
}
