package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/crypto"
)

// Deployment is a confirmed contract creation.
type Deployment struct {
	Address  string
	TxHash   string
	Deployer string
}

// ParsePrivateKey accepts a hex key with or without the 0x prefix.
func ParsePrivateKey(hexKey string) (*ecdsa.PrivateKey, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	return key, nil
}

// Deploy sends the creation transaction for art, signed by key, and blocks
// until it is mined or ctx ends. Constructor arguments are passed through.
func (c *Client) Deploy(ctx context.Context, key *ecdsa.PrivateKey, art Artifact, args ...interface{}) (Deployment, error) {
	chainID, err := c.backend.ChainID(ctx)
	if err != nil {
		return Deployment{}, fmt.Errorf("chain id: %w", err)
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return Deployment{}, fmt.Errorf("transactor: %w", err)
	}
	opts.Context = ctx

	addr, tx, _, err := bind.DeployContract(opts, art.ABI, art.Bytecode, c.backend, args...)
	if err != nil {
		return Deployment{}, fmt.Errorf("deploy %s: %w", art.ContractName, err)
	}
	log.Info("deployment submitted", "contract", art.ContractName, "tx", tx.Hash().Hex())

	mined, err := bind.WaitDeployed(ctx, c.backend, tx)
	if err != nil {
		return Deployment{}, fmt.Errorf("await %s confirmation: %w", art.ContractName, err)
	}
	if mined != addr {
		log.Warn("deployed address differs from predicted", "predicted", addr.Hex(), "mined", mined.Hex())
	}

	return Deployment{
		Address:  mined.Hex(),
		TxHash:   tx.Hash().Hex(),
		Deployer: opts.From.Hex(),
	}, nil
}
