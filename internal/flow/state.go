package flow

// State is the application state as a tagged union: the phase tag, plus the
// wallet sub-flow and tab selection which exist only while the phase is main.
type State struct {
	phase  Phase
	wallet *WalletFlow
	tabs   *TabSelector
}

func enter(p Phase) State {
	s := State{phase: p}
	if p == PhaseMain {
		s.wallet = NewWalletFlow()
		s.tabs = NewTabSelector()
	}
	return s
}

// Phase returns the top-level tag.
func (s State) Phase() Phase {
	return s.phase
}

// Wallet returns the wallet sub-flow, or nil outside main.
func (s State) Wallet() *WalletFlow {
	return s.wallet
}

// Tabs returns the tab selector, or nil outside main.
func (s State) Tabs() *TabSelector {
	return s.tabs
}

// String renders the state as "phase" or "main/stage/tab".
func (s State) String() string {
	if s.wallet == nil {
		return s.phase.String()
	}
	out := s.phase.String() + "/" + s.wallet.Stage().String()
	if s.wallet.Stage() == StageDashboard {
		out += "/" + s.tabs.Active().String()
	}
	return out
}
