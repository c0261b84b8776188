package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vahanchain/vahanchain/internal/chain"
	"github.com/vahanchain/vahanchain/internal/model"
	"golang.org/x/term"
)

var errNoPrivateKey = errors.New("no private key: set VAHANCHAIN_PRIVATE_KEY or PRIVATE_KEY")

type dialFunc func(ctx context.Context, rpcURL string) (*chain.Client, error)

// deploy publishes the contract described by opts and prints its address.
// readKey is consulted only when opts carries no private key.
func deploy(ctx context.Context, out io.Writer, opts deployOptions, dial dialFunc, readKey func() (string, error)) error {
	art, err := chain.LoadArtifact(opts.Artifact)
	if err != nil {
		return err
	}

	hexKey := opts.PrivateKey
	if hexKey == "" {
		if hexKey, err = readKey(); err != nil {
			return err
		}
	}
	key, err := chain.ParsePrivateKey(hexKey)
	if err != nil {
		return err
	}

	client, err := dial(ctx, opts.RPCURL)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.ExpectChainID(ctx, opts.ChainID); err != nil {
		return err
	}
	log.Debug("connected", "rpc", opts.RPCURL, "network", model.NetworkName(opts.ChainID))

	fmt.Fprintf(out, "Deploying %s contract...\n", art.ContractName)

	d, err := client.Deploy(ctx, key, art)
	if err != nil {
		return err
	}
	log.Debug("deployment confirmed", "tx", d.TxHash, "deployer", d.Deployer)

	fmt.Fprintf(out, "%s deployed successfully to: %s\n", art.ContractName, d.Address)
	if opts.ExplorerURL != "" {
		fmt.Fprintf(out, "Explorer: %s\n", chain.ExplorerAddressURL(opts.ExplorerURL, d.Address))
	}
	return nil
}

// promptPrivateKey reads the key from the terminal without echo.
func promptPrivateKey() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errNoPrivateKey
	}
	fmt.Fprint(os.Stderr, "Deployer private key: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read private key: %w", err)
	}
	key := strings.TrimSpace(string(b))
	if key == "" {
		return "", errNoPrivateKey
	}
	return key, nil
}
