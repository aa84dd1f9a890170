package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/logger"
)

// Backend is everything the contract bindings need from a node
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// Client is a connection to a JSON-RPC node
type Client struct {
	Backend Backend
	ChainID *big.Int
	rpc     *ethclient.Client
}

// Dial connects to rpcURL and reads its chain id
func Dial(ctx context.Context, rpcURL string) (*Client, error) {
	rpc, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrChainUnavailable, ErrMsgDialFailed, err)
	}
	chainID, err := rpc.ChainID(ctx)
	if err != nil {
		rpc.Close()
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrChainUnavailable, ErrMsgChainIDFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgConnected, "chain_id", chainID.String())
	return &Client{Backend: rpc, ChainID: chainID, rpc: rpc}, nil
}

// Ping checks the node is reachable
func (c *Client) Ping(ctx context.Context) error {
	if c.rpc == nil {
		return nil
	}
	_, err := c.rpc.BlockNumber(ctx)
	return err
}

// Close releases the RPC connection
func (c *Client) Close() {
	if c.rpc != nil {
		c.rpc.Close()
	}
}
