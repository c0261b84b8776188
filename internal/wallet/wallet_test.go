package wallet

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vahanchain/vahanchain/internal/flow"
)

const testAddr = "0x1234567890abcdef1234567890abcdef1234abcd"

func TestShortAddress(t *testing.T) {
	t.Parallel()

	require.Equal(t, "0x1234...abcd", ShortAddress(testAddr))
	require.Equal(t, "Not connected", ShortAddress(""))
	require.Equal(t, "0xabc", ShortAddress("0xabc"))
}

func TestNormalizeAddress(t *testing.T) {
	t.Parallel()

	got, err := NormalizeAddress("  " + testAddr + " ")
	require.NoError(t, err)
	require.True(t, strings.EqualFold(testAddr, got))

	for _, bad := range []string{"", "0x1234", "1234567890abcdef1234567890abcdef1234abcd", "0xZZ34567890abcdef1234567890abcdef1234abcd"} {
		_, err := NormalizeAddress(bad)
		require.ErrorIs(t, err, ErrInvalidAddress, bad)
	}
}

func receive(t *testing.T, ch <-chan flow.Signals) flow.Signals {
	t.Helper()
	select {
	case sig, ok := <-ch:
		require.True(t, ok, "subscription closed")
		return sig
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for wallet status")
		return flow.Signals{}
	}
}

func TestBridgeLifecycle(t *testing.T) {
	t.Parallel()

	b := NewBridge("project", Metadata{Name: "VahanChain", URL: "https://vahanchain.app", Redirect: "vahanchain://"})
	ch, cancel := b.Subscribe()
	defer cancel()

	p, err := b.OpenConnectDialog(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, p.Session)
	require.True(t, strings.HasPrefix(p.URI, "wc:"+p.Session+"@2?"))
	require.Contains(t, p.URI, "projectId=project")
	require.Equal(t, p.Session, b.Session())
	require.Equal(t, flow.Signals{Connecting: true}, receive(t, ch))

	require.NoError(t, b.ReportConnected(p.Session, testAddr, 43113))
	sig := receive(t, ch)
	require.True(t, sig.Connected)
	require.False(t, sig.Connecting)
	require.EqualValues(t, 43113, sig.ChainID)
	require.Equal(t, sig, b.Status())

	b.ReportDisconnected()
	require.True(t, receive(t, ch).Disconnected())
	require.Empty(t, b.Session())
}

func TestBridgeRejectsBadReports(t *testing.T) {
	t.Parallel()

	b := NewBridge("project", Metadata{})
	p, err := b.OpenConnectDialog(context.Background())
	require.NoError(t, err)

	err = b.ReportConnected(p.Session, "not-an-address", 1)
	require.ErrorIs(t, err, ErrInvalidAddress)

	err = b.ReportConnected("other-session", testAddr, 1)
	require.ErrorIs(t, err, ErrUnknownSession)

	err = b.ReportConnecting("other-session")
	require.True(t, errors.Is(err, ErrUnknownSession))

	require.Equal(t, flow.Signals{Connecting: true}, b.Status())
}

func TestBridgeFailureLooksLikeDisconnect(t *testing.T) {
	t.Parallel()

	b := NewBridge("project", Metadata{})
	_, err := b.OpenConnectDialog(context.Background())
	require.NoError(t, err)

	b.ReportFailed("user rejected")
	require.True(t, b.Status().Disconnected())
	require.Equal(t, "user rejected", b.LastError())

	w := flow.NewWalletFlow()
	w.Observe(flow.Signals{Connecting: true})
	stage, _ := w.Observe(b.Status())
	require.Equal(t, flow.StageInitial, stage)
}

func TestBridgeNewAttemptClearsLastError(t *testing.T) {
	t.Parallel()

	b := NewBridge("project", Metadata{})
	b.ReportFailed("session expired")
	require.Equal(t, "session expired", b.LastError())

	require.NoError(t, b.ReportConnecting(""))
	require.Empty(t, b.LastError())

	b.ReportFailed("user rejected")
	require.NoError(t, b.ReportConnected("", testAddr, 43113))
	require.Empty(t, b.LastError())
}

func TestBridgeRequiresProjectID(t *testing.T) {
	t.Parallel()

	_, err := NewBridge("", Metadata{}).OpenConnectDialog(context.Background())
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewBridge("p", Metadata{}).OpenConnectDialog(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSubscriberSeesStatusesInOrder(t *testing.T) {
	t.Parallel()

	b := NewBridge("project", Metadata{})
	ch, cancel := b.Subscribe()

	require.NoError(t, b.ReportConnecting(""))
	require.NoError(t, b.ReportConnected("", testAddr, 5))

	require.True(t, receive(t, ch).Connecting, "connecting must not be coalesced away")
	require.True(t, receive(t, ch).Connected)

	cancel()
	cancel()
	_, ok := <-ch
	require.False(t, ok)
}

func TestSlowSubscriberKeepsLatestStatus(t *testing.T) {
	t.Parallel()

	var b broadcaster
	ch, cancel := b.subscribe()
	defer cancel()

	for i := int64(1); i <= 3*subscriberBuffer; i++ {
		b.publish(flow.Signals{Connected: true, Address: testAddr, ChainID: i})
	}

	require.Len(t, ch, subscriberBuffer)
	var last flow.Signals
	for len(ch) > 0 {
		last = <-ch
	}
	require.EqualValues(t, 3*subscriberBuffer, last.ChainID)
}

func TestConcurrentReportsDeliverFinalStatusLast(t *testing.T) {
	t.Parallel()

	for round := 0; round < 300; round++ {
		b := NewBridge("project", Metadata{})
		ch, cancel := b.Subscribe()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = b.ReportConnected("", testAddr, 43113)
		}()
		go func() {
			defer wg.Done()
			b.ReportDisconnected()
		}()
		wg.Wait()

		var last flow.Signals
		for len(ch) > 0 {
			last = <-ch
		}
		require.Equal(t, b.Status(), last, "round %d", round)
		cancel()
	}
}

func TestBridgeCloseEndsSubscriptions(t *testing.T) {
	t.Parallel()

	b := NewBridge("project", Metadata{})
	ch, cancel := b.Subscribe()
	b.Close()
	_, ok := <-ch
	require.False(t, ok)
	cancel()
}

func TestSimulatedConnects(t *testing.T) {
	t.Parallel()

	s, err := NewSimulated(testAddr, 43113, 10*time.Millisecond)
	require.NoError(t, err)
	defer s.Close()

	ch, cancel := s.Subscribe()
	defer cancel()

	_, err = s.OpenConnectDialog(context.Background())
	require.NoError(t, err)

	require.True(t, receive(t, ch).Connecting)
	sig := receive(t, ch)
	require.True(t, sig.Connected)
	require.EqualValues(t, 43113, sig.ChainID)

	s.Disconnect()
	require.True(t, receive(t, ch).Disconnected())
}

func TestSimulatedDisconnectCancelsPendingConnect(t *testing.T) {
	t.Parallel()

	s, err := NewSimulated(testAddr, 43113, 50*time.Millisecond)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.OpenConnectDialog(context.Background())
	require.NoError(t, err)
	s.Disconnect()

	time.Sleep(100 * time.Millisecond)
	require.True(t, s.Status().Disconnected())
}

func TestNewSimulatedValidatesAddress(t *testing.T) {
	t.Parallel()

	_, err := NewSimulated("0x12", 1, time.Second)
	require.ErrorIs(t, err, ErrInvalidAddress)
}
