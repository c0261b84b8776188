package flow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	sigConnecting   = Signals{Connecting: true}
	sigConnected    = Signals{Connected: true, Address: "0x1234567890abcdef1234567890abcdef12345678", ChainID: 43113}
	sigDisconnected = Signals{}
)

func TestWalletFlowHappyPath(t *testing.T) {
	t.Parallel()

	w := NewWalletFlow()
	require.Equal(t, StageInitial, w.Stage())

	stage, changed := w.Observe(sigConnecting)
	require.True(t, changed)
	require.Equal(t, StageConnecting, stage)

	stage, changed = w.Observe(sigConnected)
	require.True(t, changed)
	require.Equal(t, StageLoading, stage)

	require.True(t, w.LoadingComplete(w.Token()))
	require.Equal(t, StageSuccess, w.Stage())

	require.True(t, w.Proceed())
	require.Equal(t, StageDashboard, w.Stage())
	require.Equal(t, sigConnected.Address, w.Signals().Address)
}

func TestWalletFlowTransitionsFireOnce(t *testing.T) {
	t.Parallel()

	w := NewWalletFlow()
	_, changed := w.Observe(sigConnecting)
	require.True(t, changed)
	_, changed = w.Observe(sigConnecting)
	require.False(t, changed)

	_, changed = w.Observe(sigConnected)
	require.True(t, changed)
	tok := w.Token()
	_, changed = w.Observe(sigConnected)
	require.False(t, changed)
	require.Equal(t, tok, w.Token(), "repeated connected signal must not restart loading")
}

func TestWalletFlowConnectedWithoutConnectingStaysInitial(t *testing.T) {
	t.Parallel()

	w := NewWalletFlow()
	stage, changed := w.Observe(sigConnected)
	require.False(t, changed)
	require.Equal(t, StageInitial, stage)
}

func TestWalletFlowDisconnectResetsFromEveryStage(t *testing.T) {
	t.Parallel()

	drive := map[Stage]func(w *WalletFlow){
		StageConnecting: func(w *WalletFlow) { w.Observe(sigConnecting) },
		StageLoading: func(w *WalletFlow) {
			w.Observe(sigConnecting)
			w.Observe(sigConnected)
		},
		StageSuccess: func(w *WalletFlow) {
			w.Observe(sigConnecting)
			w.Observe(sigConnected)
			w.LoadingComplete(w.Token())
		},
		StageDashboard: func(w *WalletFlow) {
			w.Observe(sigConnecting)
			w.Observe(sigConnected)
			w.LoadingComplete(w.Token())
			w.Proceed()
		},
	}

	for want, setup := range drive {
		w := NewWalletFlow()
		setup(w)
		require.Equal(t, want, w.Stage())

		stage, changed := w.Observe(sigDisconnected)
		require.True(t, changed, want.String())
		require.Equal(t, StageInitial, stage)

		// idempotent
		stage, changed = w.Observe(sigDisconnected)
		require.False(t, changed)
		require.Equal(t, StageInitial, stage)
	}
}

func TestWalletFlowStaleLoadingTokenIgnored(t *testing.T) {
	t.Parallel()

	w := NewWalletFlow()
	w.Observe(sigConnecting)
	w.Observe(sigConnected)
	stale := w.Token()

	// interrupted mint, then reconnect
	w.Observe(sigDisconnected)
	require.False(t, w.LoadingComplete(stale))
	require.Equal(t, StageInitial, w.Stage())

	w.Observe(sigConnecting)
	w.Observe(sigConnected)
	require.Equal(t, StageLoading, w.Stage())
	require.NotEqual(t, stale, w.Token())

	require.False(t, w.LoadingComplete(stale), "timer from the discarded loading screen fired")
	require.Equal(t, StageLoading, w.Stage())
	require.True(t, w.LoadingComplete(w.Token()))
}

func TestWalletFlowProceedOnlyFromSuccess(t *testing.T) {
	t.Parallel()

	w := NewWalletFlow()
	require.False(t, w.Proceed())
	w.Observe(sigConnecting)
	require.False(t, w.Proceed())
	w.Observe(sigConnected)
	require.False(t, w.Proceed())
	require.Equal(t, StageLoading, w.Stage())
}

func TestTabSelectionLeavesWalletAlone(t *testing.T) {
	t.Parallel()

	c := NewController(Config{})
	for _, p := range Phases[:len(Phases)-1] {
		c.Done(p)
	}
	s := c.State()
	w := s.Wallet()
	w.Observe(sigConnecting)
	w.Observe(sigConnected)
	w.LoadingComplete(w.Token())
	w.Proceed()

	tabs := s.Tabs()
	require.Equal(t, TabDashboard, tabs.Active())
	require.Equal(t, "main/dashboard/dashboard", s.String())

	for _, tab := range []Tab{TabDocuments, TabSettings, TabDashboard} {
		require.True(t, tabs.Select(tab))
		require.Equal(t, StageDashboard, w.Stage())
	}
	require.Equal(t, TabDashboard, tabs.Active())
	require.Equal(t, "main/dashboard/dashboard", s.String())
}

func TestTabSelectorCycling(t *testing.T) {
	t.Parallel()

	s := NewTabSelector()
	require.Equal(t, TabDocuments, s.Next())
	require.Equal(t, TabSettings, s.Next())
	require.Equal(t, TabDashboard, s.Next())
	require.Equal(t, TabSettings, s.Prev())
	require.False(t, s.Select(Tab(7)))
	require.Equal(t, TabSettings, s.Active())
}
