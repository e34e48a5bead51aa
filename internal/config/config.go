package config

import (
	"github.com/pkg/errors"
)

// Config holds the paths, endpoints and keys used by one test run.
// It is built once by New and never modified afterwards.
type Config struct {
	AgentSrc        string
	ProxyRoot       string
	AgentRoot       string
	TestRoot        string
	TestWorkingDir  string
	TestResourceDir string

	NetworkForMainnet string
	NetworkForSchain  string

	MainnetKey    string
	MainnetRPCURL string
	SchainKey     string
	SchainRPCURL  string
	SchainName    string
	SchainName2   string // no override key yet, always DefaultSchainName2
	UserKey       string

	AbiMainnet string
	AbiSchain  string
	AbiSchain2 string
}

// New resolves a Config from the source root and the override mapping.
// PRIVATE_KEY_FOR_ETHEREUM and PRIVATE_KEY_FOR_SCHAIN must be present in overrides.
func New(srcRoot string, overrides map[string]string) (*Config, error) {
	mainnetKey, err := required(overrides, KeyMainnetKey)
	if err != nil {
		return nil, err
	}
	schainKey, err := required(overrides, KeySchainKey)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		AgentSrc:          srcRoot + agentSrcDir,
		ProxyRoot:         srcRoot + proxyRootDir,
		AgentRoot:         srcRoot + agentSrcDir,
		TestRoot:          srcRoot + testRootDir,
		NetworkForMainnet: optional(overrides, KeyNetworkForMainnet, DefaultNetworkForMainnet),
		NetworkForSchain:  optional(overrides, KeyNetworkForSchain, DefaultNetworkForSchain),
		MainnetKey:        mainnetKey,
		MainnetRPCURL:     optional(overrides, KeyMainnetRPCURL, DefaultMainnetRPCURL),
		SchainKey:         schainKey,
		SchainRPCURL:      optional(overrides, KeySchainRPCURL, DefaultSchainRPCURL),
		SchainName:        optional(overrides, KeySchainName, DefaultSchainName),
		SchainName2:       DefaultSchainName2,
		UserKey:           optional(overrides, KeyUserKey, DefaultUserKey),
	}
	cfg.TestWorkingDir = cfg.TestRoot + testWorkingDir
	cfg.TestResourceDir = cfg.TestRoot + testResourceDir

	// chain names are resolved above, the abi paths depend on them
	cfg.AbiMainnet = cfg.ProxyRoot + proxyDataDir + abiMainnetFile
	cfg.AbiSchain = cfg.schainAbiPath(cfg.SchainName)
	cfg.AbiSchain2 = cfg.schainAbiPath(cfg.SchainName2)

	return cfg, nil
}

func (c *Config) schainAbiPath(name string) string {
	return c.ProxyRoot + proxyDataDir + abiSchainPrefix + name + abiSchainExtension
}

func optional(overrides map[string]string, key, def string) string {
	if v, ok := overrides[key]; ok {
		return v
	}
	return def
}

func required(overrides map[string]string, key string) (string, error) {
	v, ok := overrides[key]
	if !ok {
		return "", errors.Wrapf(ErrMissingKey, "key %s", key)
	}
	return v, nil
}
