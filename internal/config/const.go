package config

const (
	DefaultConfigPath = "./config.json"
	DefaultSrcRoot    = "."
)

// Override keys understood by New.
const (
	KeyNetworkForMainnet = "NETWORK_FOR_ETHEREUM"
	KeyNetworkForSchain  = "NETWORK_FOR_SCHAIN"
	KeyMainnetKey        = "PRIVATE_KEY_FOR_ETHEREUM"
	KeyMainnetRPCURL     = "URL_W3_ETHEREUM"
	KeySchainKey         = "PRIVATE_KEY_FOR_SCHAIN"
	KeySchainRPCURL      = "URL_W3_S_CHAIN"
	KeySchainName        = "CHAIN_NAME_SCHAIN"
	KeyUserKey           = "user_key"
)

const (
	DefaultNetworkForMainnet = "mainnet"
	DefaultNetworkForSchain  = "schain"
	DefaultMainnetRPCURL     = "http://127.0.0.1:8545"
	DefaultSchainRPCURL      = "http://127.0.0.1:8545"
	DefaultSchainName        = "d2"
	DefaultSchainName2       = "d3"
	DefaultUserKey           = ""
)

// Layout of the source tree, relative to the source root.
const (
	agentSrcDir        = "/src"
	proxyRootDir       = "/IMA/proxy"
	testRootDir        = "/test"
	testWorkingDir     = "/working"
	testResourceDir    = "/resources"
	proxyDataDir       = "/data/"
	abiMainnetFile     = "proxyMainnet.json"
	abiSchainPrefix    = "proxySchain_"
	abiSchainExtension = ".json"
)
