package tui

import (
	"math/big"
	"time"

	"github.com/vahanchain/vahanchain/internal/flow"
	"github.com/vahanchain/vahanchain/internal/model"
	"github.com/vahanchain/vahanchain/internal/permissions"
	"github.com/vahanchain/vahanchain/internal/wallet"
)

// ViewContext provides read-only context to tab panels for rendering.
type ViewContext struct {
	Width           int
	Height          int
	Address         string
	ChainID         int64
	ExpectedChainID int64
	Profile         model.Profile
}

// walletClosedMsg is sent when the provider subscription ends.
type walletClosedMsg struct{}

type pairingMsg struct {
	pairing wallet.Pairing
	err     error
}

type loadingDoneMsg struct {
	token flow.LoadingToken
}

type splashTickMsg struct{}

type splashHoldMsg struct{}

type permissionsResultMsg struct {
	grants permissions.Grants
	err    error
}

type balanceMsg struct {
	address string
	wei     *big.Int
	err     error
}

type documentsMsg struct {
	docs []model.Document
	err  error
}

type preferencesMsg struct {
	prefs model.Preferences
	err   error
}

type preferenceSavedMsg struct {
	key   string
	value bool
	err   error
}

type sessionRecordedMsg struct {
	err error
}

// Timings controls every scheduled transition in the UI.
type Timings struct {
	SplashStep        time.Duration
	SplashIncrement   int
	SplashHold        time.Duration
	LoadingDuration   time.Duration
	PermissionTimeout time.Duration
	WalletTimeout     time.Duration
}

// DefaultTimings mirrors the original mobile app.
func DefaultTimings() Timings {
	return Timings{
		SplashStep:        model.DefaultSplashStep,
		SplashIncrement:   model.DefaultSplashIncrement,
		SplashHold:        model.DefaultSplashHold,
		LoadingDuration:   model.DefaultLoadingDuration,
		PermissionTimeout: 30 * time.Second,
		WalletTimeout:     30 * time.Second,
	}
}
