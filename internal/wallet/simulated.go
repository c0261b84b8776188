package wallet

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vahanchain/vahanchain/internal/flow"
)

// Simulated is a Provider that connects to a fixed address after a delay.
type Simulated struct {
	address string
	chainID int64
	delay   time.Duration

	mu     sync.Mutex
	status flow.Signals
	timer  *time.Timer
	subs   broadcaster
}

// NewSimulated validates address and returns a disconnected simulated provider.
func NewSimulated(address string, chainID int64, delay time.Duration) (*Simulated, error) {
	addr, err := NormalizeAddress(address)
	if err != nil {
		return nil, err
	}
	return &Simulated{address: addr, chainID: chainID, delay: delay}, nil
}

func (s *Simulated) Status() flow.Signals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Simulated) Subscribe() (<-chan flow.Signals, func()) {
	return s.subs.subscribe()
}

func (s *Simulated) OpenConnectDialog(ctx context.Context) (Pairing, error) {
	if err := ctx.Err(); err != nil {
		return Pairing{}, err
	}
	session := uuid.New().String()

	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.status = flow.Signals{Connecting: true}
	s.timer = time.AfterFunc(s.delay, s.connect)
	s.subs.publish(s.status)
	s.mu.Unlock()

	return Pairing{Session: session, URI: "simulated:" + session}, nil
}

func (s *Simulated) connect() {
	s.mu.Lock()
	if !s.status.Connecting {
		s.mu.Unlock()
		return
	}
	s.status = flow.Signals{Connected: true, Address: s.address, ChainID: s.chainID}
	s.subs.publish(s.status)
	s.mu.Unlock()
}

// Disconnect drops the simulated session, cancelling a pending connect.
func (s *Simulated) Disconnect() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.status = flow.Signals{}
	s.subs.publish(s.status)
	s.mu.Unlock()
}

// Close stops any pending connect and ends every subscription.
func (s *Simulated) Close() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mu.Unlock()
	s.subs.closeAll()
}
