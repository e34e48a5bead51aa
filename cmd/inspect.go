package main

import (
	"github.com/ChainSafe/log15"
	"github.com/skalenetwork/ima-testconf/internal/chain"
	"github.com/skalenetwork/ima-testconf/internal/config"
	"github.com/skalenetwork/ima-testconf/internal/proxy"
	"github.com/urfave/cli/v2"
)

var inspectCommand = cli.Command{
	Name:        "inspect",
	Usage:       "print the resolved test configuration",
	Description: "The inspect command resolves paths, endpoints and accounts from the override file and logs them",
	Action:      inspect,
	Flags:       append(append(app.Flags, config.FlagsOfConfig...), config.CheckAbiFlag),
}

func inspect(ctx *cli.Context) error {
	err := startLogger(ctx)
	if err != nil {
		return err
	}

	cfg, err := config.GetConfig(ctx)
	if err != nil {
		return err
	}

	logger := log15.New("system", "inspect")
	logger.Info("Paths",
		"agentSrc", cfg.AgentSrc,
		"agentRoot", cfg.AgentRoot,
		"proxyRoot", cfg.ProxyRoot,
		"testRoot", cfg.TestRoot,
		"workingDir", cfg.TestWorkingDir,
		"resourceDir", cfg.TestResourceDir,
	)
	logger.Info("ABI files", "mainnet", cfg.AbiMainnet, "schain", cfg.AbiSchain, "schain2", cfg.AbiSchain2)
	logger.Info("S-Chains", "name", cfg.SchainName, "name2", cfg.SchainName2)

	for _, ep := range chain.Endpoints(cfg) {
		addr, err := chain.AddressFromHex(ep.Key)
		if err != nil {
			return err
		}
		logger.Info("Endpoint", "chain", ep.Name, "network", ep.Network, "url", ep.URL, "account", addr)
	}
	if cfg.UserKey != "" {
		addr, err := chain.AddressFromHex(cfg.UserKey)
		if err != nil {
			return err
		}
		logger.Info("User", "account", addr)
	}

	if !ctx.Bool(config.CheckAbiFlag.Name) {
		return nil
	}
	return checkAbiFiles(cfg, logger)
}

func checkAbiFiles(cfg *config.Config, logger log15.Logger) error {
	files := []struct {
		path      string
		contracts []string
	}{
		{cfg.AbiMainnet, proxy.MainnetContracts},
		{cfg.AbiSchain, proxy.SchainContracts},
		{cfg.AbiSchain2, proxy.SchainContracts},
	}
	for _, f := range files {
		pf, err := proxy.Load(f.path)
		if err != nil {
			return err
		}
		if err = pf.CheckKeys(proxy.RequiredKeys(f.contracts)...); err != nil {
			return err
		}
		for _, name := range f.contracts {
			c, err := pf.Contract(name)
			if err != nil {
				return err
			}
			logger.Debug("Contract", "file", f.path, "name", c.Name, "address", c.Address, "methods", len(c.ABI.Methods))
		}
		logger.Info("ABI file ok", "path", f.path, "contracts", len(f.contracts))
	}
	return nil
}
