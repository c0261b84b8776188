// Package chain talks to an EVM network: balances for the dashboard and
// contract deployment for the deploy command.
package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/params"
)

var ErrChainMismatch = errors.New("chain id mismatch")

// Backend is the subset of an RPC client the package needs. Both
// *ethclient.Client and the simulated backend's client satisfy it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ethereum.ChainIDReader
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
}

// Client wraps a Backend.
type Client struct {
	backend Backend
	closeFn func()
}

// Dial connects to an RPC endpoint.
func Dial(ctx context.Context, rpcURL string) (*Client, error) {
	ec, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", rpcURL, err)
	}
	return &Client{backend: ec, closeFn: ec.Close}, nil
}

// NewClient wraps an existing backend.
func NewClient(b Backend) *Client {
	return &Client{backend: b}
}

// Close releases the RPC connection.
func (c *Client) Close() {
	if c.closeFn != nil {
		c.closeFn()
	}
}

// ChainID asks the node which chain it serves.
func (c *Client) ChainID(ctx context.Context) (int64, error) {
	id, err := c.backend.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("chain id: %w", err)
	}
	return id.Int64(), nil
}

// ExpectChainID fails with ErrChainMismatch when the node serves another chain.
func (c *Client) ExpectChainID(ctx context.Context, want int64) error {
	got, err := c.ChainID(ctx)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%w: node reports %d, configured %d", ErrChainMismatch, got, want)
	}
	return nil
}

// Balance returns the latest native balance of addr in wei.
func (c *Client) Balance(ctx context.Context, addr string) (*big.Int, error) {
	if !common.IsHexAddress(addr) {
		return nil, fmt.Errorf("balance: invalid address %q", addr)
	}
	bal, err := c.backend.BalanceAt(ctx, common.HexToAddress(addr), nil)
	if err != nil {
		return nil, fmt.Errorf("balance of %s: %w", addr, err)
	}
	return bal, nil
}

// FormatEther renders a wei amount with four decimals, e.g. "1.2500".
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0.0000"
	}
	f := new(big.Float).SetInt(wei)
	f.Quo(f, new(big.Float).SetInt64(params.Ether))
	return f.Text('f', 4)
}

// ExplorerAddressURL links an address on a block explorer.
func ExplorerAddressURL(explorer, addr string) string {
	return strings.TrimRight(explorer, "/") + "/address/" + addr
}
