// Package wallet connects the screen flow to an external wallet provider.
// The flow only sees Signals; how a provider learns about sessions is its
// own business.
package wallet

import (
	"context"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/vahanchain/vahanchain/internal/flow"
)

var (
	ErrInvalidAddress = errors.New("invalid wallet address")
	ErrUnknownSession = errors.New("unknown pairing session")
)

// Metadata describes the app to the wallet during pairing.
type Metadata struct {
	Name        string
	Description string
	URL         string
	Redirect    string
}

// Pairing is the result of opening the connect dialog.
type Pairing struct {
	Session string
	URI     string
}

// Provider is the wallet-provider collaborator.
type Provider interface {
	// Status returns the latest signals.
	Status() flow.Signals
	// Subscribe delivers every status change until cancel is called.
	Subscribe() (<-chan flow.Signals, func())
	// OpenConnectDialog starts a connection attempt.
	OpenConnectDialog(ctx context.Context) (Pairing, error)
}

// ShortAddress renders 0x1234...abcd, or "Not connected" for an empty address.
func ShortAddress(addr string) string {
	if addr == "" {
		return "Not connected"
	}
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

// NormalizeAddress validates a hex address and returns its checksummed form.
func NormalizeAddress(addr string) (string, error) {
	addr = strings.TrimSpace(addr)
	if !common.IsHexAddress(addr) || !strings.HasPrefix(strings.ToLower(addr), "0x") {
		return "", ErrInvalidAddress
	}
	return common.HexToAddress(addr).Hex(), nil
}
