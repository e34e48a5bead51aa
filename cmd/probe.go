package main

import (
	"github.com/ChainSafe/log15"
	"github.com/skalenetwork/ima-testconf/internal/chain"
	"github.com/skalenetwork/ima-testconf/internal/config"
	"github.com/urfave/cli/v2"
)

var probeCommand = cli.Command{
	Name:        "probe",
	Usage:       "check the rpc endpoints",
	Description: "The probe command dials the main-net and s-chain endpoints and reports chain id and account balance",
	Action:      probe,
	Flags:       append(app.Flags, config.FlagsOfConfig...),
}

func probe(ctx *cli.Context) error {
	err := startLogger(ctx)
	if err != nil {
		return err
	}

	cfg, err := config.GetConfig(ctx)
	if err != nil {
		return err
	}

	for _, ep := range chain.Endpoints(cfg) {
		logger := log15.Root().New("chain", ep.Name)
		addr, err := chain.AddressFromHex(ep.Key)
		if err != nil {
			return err
		}

		conn, err := chain.Dial(ctx.Context, ep, logger)
		if err != nil {
			return err
		}
		id, err := conn.ChainID(ctx.Context)
		if err != nil {
			conn.Close()
			return err
		}
		bal, err := conn.Balance(ctx.Context, addr)
		conn.Close()
		if err != nil {
			return err
		}
		logger.Info("Endpoint ok", "network", ep.Network, "chainId", id, "account", addr, "balance", bal)
	}
	return nil
}
