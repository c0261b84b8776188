package wallet

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vahanchain/vahanchain/internal/flow"
)

// Bridge is a Provider whose status is reported from outside the process,
// typically by a wallet relay calling the local HTTP bridge. Status changes
// are published while mu is held, so subscribers see them in the order they
// were applied.
type Bridge struct {
	mu        sync.RWMutex
	projectID string
	meta      Metadata
	status    flow.Signals
	session   string
	lastError string
	subs      broadcaster
}

// NewBridge creates a bridge provider with no active session.
func NewBridge(projectID string, meta Metadata) *Bridge {
	return &Bridge{projectID: projectID, meta: meta}
}

func (b *Bridge) Status() flow.Signals {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.status
}

func (b *Bridge) Subscribe() (<-chan flow.Signals, func()) {
	return b.subs.subscribe()
}

// Session returns the active pairing session id, if any.
func (b *Bridge) Session() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.session
}

// LastError returns the reason given by the last failed connection attempt.
// A new attempt clears it.
func (b *Bridge) LastError() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lastError
}

// OpenConnectDialog creates a pairing session and marks the bridge as
// connecting. The returned URI is handed to the wallet out of band.
func (b *Bridge) OpenConnectDialog(ctx context.Context) (Pairing, error) {
	if err := ctx.Err(); err != nil {
		return Pairing{}, err
	}
	if b.projectID == "" {
		return Pairing{}, fmt.Errorf("open connect dialog: wallet project id not configured")
	}

	session := uuid.New().String()
	q := url.Values{}
	q.Set("projectId", b.projectID)
	q.Set("name", b.meta.Name)
	q.Set("url", b.meta.URL)
	if b.meta.Redirect != "" {
		q.Set("redirect", b.meta.Redirect)
	}
	p := Pairing{
		Session: session,
		URI:     fmt.Sprintf("wc:%s@2?%s", session, q.Encode()),
	}

	b.mu.Lock()
	b.session = session
	b.lastError = ""
	b.lastError = ""
	b.status = flow.Signals{Connecting: true}
	b.subs.publish(b.status)
	b.mu.Unlock()

	log.Info("wallet pairing opened", "session", session)
	return p, nil
}

func (b *Bridge) checkSession(session string) error {
	if session != "" && session != b.session {
		return fmt.Errorf("%w: %s", ErrUnknownSession, session)
	}
	return nil
}

// ReportConnecting marks a connection attempt as in progress. An empty
// session accepts wallet-initiated connections.
func (b *Bridge) ReportConnecting(session string) error {
	b.mu.Lock()
	if err := b.checkSession(session); err != nil {
		b.mu.Unlock()
		return err
	}
	if session != "" {
		b.session = session
	}
	b.lastError = ""
	b.status = flow.Signals{Connecting: true}
	b.subs.publish(b.status)
	b.mu.Unlock()
	return nil
}

// ReportConnected records an established session.
func (b *Bridge) ReportConnected(session, address string, chainID int64) error {
	addr, err := NormalizeAddress(address)
	if err != nil {
		return err
	}

	b.mu.Lock()
	if err := b.checkSession(session); err != nil {
		b.mu.Unlock()
		return err
	}
	b.lastError = ""
	b.status = flow.Signals{Connected: true, Address: addr, ChainID: chainID}
	b.subs.publish(b.status)
	b.mu.Unlock()

	log.Info("wallet connected", "address", ShortAddress(addr), "chain_id", chainID)
	return nil
}

// ReportDisconnected clears the session.
func (b *Bridge) ReportDisconnected() {
	b.mu.Lock()
	b.session = ""
	b.status = flow.Signals{}
	b.subs.publish(b.status)
	b.mu.Unlock()

	log.Info("wallet disconnected")
}

// ReportFailed ends a connection attempt with an error. The flow sees a plain
// disconnect and returns to its initial stage.
func (b *Bridge) ReportFailed(reason string) {
	b.mu.Lock()
	b.session = ""
	b.lastError = reason
	b.status = flow.Signals{}
	b.subs.publish(b.status)
	b.mu.Unlock()

	log.Warn("wallet connection failed", "reason", reason)
}

// Close ends every subscription.
func (b *Bridge) Close() {
	b.subs.closeAll()
}
