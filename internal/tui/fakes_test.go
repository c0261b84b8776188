package tui

import (
	"context"
	"errors"
	"math/big"
	"sync"

	"github.com/vahanchain/vahanchain/internal/flow"
	"github.com/vahanchain/vahanchain/internal/model"
	"github.com/vahanchain/vahanchain/internal/permissions"
	"github.com/vahanchain/vahanchain/internal/wallet"
)

const testAddr = "0x1234567890abcdef1234567890abcdef1234abcd"

type fakeProvider struct {
	mu        sync.Mutex
	status    flow.Signals
	ch        chan flow.Signals
	opened    int
	openErr   error
	lastError string
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{ch: make(chan flow.Signals, 1)}
}

func (f *fakeProvider) Status() flow.Signals {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *fakeProvider) Subscribe() (<-chan flow.Signals, func()) {
	return f.ch, func() {}
}

func (f *fakeProvider) OpenConnectDialog(_ context.Context) (wallet.Pairing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opened++
	if f.openErr != nil {
		return wallet.Pairing{}, f.openErr
	}
	return wallet.Pairing{Session: "s1", URI: "wc:s1@2?projectId=test"}, nil
}

func (f *fakeProvider) LastError() string { return f.lastError }

type fakeStore struct {
	mu       sync.Mutex
	docs     []model.Document
	prefs    model.Preferences
	setErr   error
	sessions []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: model.DefaultDocuments(), prefs: model.Preferences{}}
}

func (s *fakeStore) ListDocuments() ([]model.Document, error) { return s.docs, nil }

func (s *fakeStore) Preferences() (model.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := model.Preferences{}
	for k, v := range s.prefs {
		out[k] = v
	}
	return out, nil
}

func (s *fakeStore) SetPreference(k string, v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.prefs[k] = v
	return nil
}

func (s *fakeStore) RecordWalletSession(addr string, _ int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = append(s.sessions, addr)
	return nil
}

type fakeBalances struct {
	wei *big.Int
	err error
}

func (f fakeBalances) Balance(_ context.Context, _ string) (*big.Int, error) {
	return f.wei, f.err
}

type fakeRequester struct {
	grants permissions.Grants
	err    error
	calls  int
}

func (f *fakeRequester) RequestAll(_ context.Context) (permissions.Grants, error) {
	f.calls++
	return f.grants, f.err
}

var errBoom = errors.New("boom")

func testTimings() Timings {
	t := DefaultTimings()
	t.PermissionTimeout = 0
	return t
}

func testMainDeps(p *fakeProvider, s *fakeStore) MainDeps {
	return MainDeps{
		Provider:  p,
		Documents: s,
		Prefs:     s,
		Sessions:  s,
		Balances:  fakeBalances{wei: big.NewInt(2e18)},
		Timings:   testTimings(),
		ChainID:   43113,
		Profile:   model.DefaultProfile(),
	}
}
