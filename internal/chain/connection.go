package chain

import (
	"context"
	"github.com/ChainSafe/log15"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"math/big"
)

type Connection struct {
	endpoint Endpoint
	client   *ethclient.Client
	log      log15.Logger
}

func Dial(ctx context.Context, endpoint Endpoint, logger log15.Logger) (*Connection, error) {
	logger.Info("Connecting to chain...", "url", endpoint.URL)
	client, err := ethclient.DialContext(ctx, endpoint.URL)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", endpoint.Name)
	}
	return &Connection{endpoint: endpoint, client: client, log: logger}, nil
}

func (c *Connection) Endpoint() Endpoint {
	return c.endpoint
}

func (c *Connection) ChainID(ctx context.Context) (*big.Int, error) {
	id, err := c.client.ChainID(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "%s chain id", c.endpoint.Name)
	}
	return id, nil
}

func (c *Connection) Balance(ctx context.Context, addr common.Address) (*big.Int, error) {
	bal, err := c.client.BalanceAt(ctx, addr, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "%s balance of %s", c.endpoint.Name, addr)
	}
	return bal, nil
}

// Close terminates the client connection
func (c *Connection) Close() {
	if c.client != nil {
		c.client.Close()
		c.log.Debug("Connection closed", "url", c.endpoint.URL)
	}
}
