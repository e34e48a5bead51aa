package chain

import (
	"github.com/ChainSafe/chainbridge-utils/crypto/secp256k1"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/skalenetwork/ima-testconf/internal/config"
	"strings"
)

const (
	Mainnet = "mainnet"
	Schain  = "schain"
)

// Endpoint is one side of the bridge as seen by the test harness.
type Endpoint struct {
	Name    string // Human-readable side name
	Network string
	URL     string // url for rpc endpoint
	Key     string // hex private key
}

// Endpoints returns the main-net and s-chain endpoints of cfg, in that order.
func Endpoints(cfg *config.Config) []Endpoint {
	return []Endpoint{
		{Name: Mainnet, Network: cfg.NetworkForMainnet, URL: cfg.MainnetRPCURL, Key: cfg.MainnetKey},
		{Name: Schain, Network: cfg.NetworkForSchain, URL: cfg.SchainRPCURL, Key: cfg.SchainKey},
	}
}

// KeypairFromHex accepts the key with or without the 0x prefix.
func KeypairFromHex(key string) (*secp256k1.Keypair, error) {
	kp, err := secp256k1.NewKeypairFromString(strings.TrimPrefix(strings.TrimPrefix(key, "0x"), "0X"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid private key")
	}
	return kp, nil
}

func AddressFromHex(key string) (common.Address, error) {
	kp, err := KeypairFromHex(key)
	if err != nil {
		return common.Address{}, err
	}
	return common.HexToAddress(kp.Address()), nil
}
