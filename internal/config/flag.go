package config

import (
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

var (
	FileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "JSON file with override values",
		Value: DefaultConfigPath,
	}
	SrcRootFlag = &cli.StringFlag{
		Name:  "src-root",
		Usage: "Root of the IMA source tree",
		Value: DefaultSrcRoot,
	}
	SetFlag = &cli.StringSliceFlag{
		Name:  "set",
		Usage: "Override a single value, KEY=VALUE. Applied after --config",
	}
	VerbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "Supports levels crit (silent) to trce (trace)",
		Value: log.LvlInfo.String(),
	}
	CheckAbiFlag = &cli.BoolFlag{
		Name:  "check-abi",
		Usage: "Load the proxy ABI files and check the required entries",
	}
)

var FlagsOfConfig = []cli.Flag{
	FileFlag,
	SrcRootFlag,
	SetFlag,
}
