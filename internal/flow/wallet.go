package flow

// Stage is a wallet sub-flow state.
type Stage int

const (
	StageInitial Stage = iota
	StageConnecting
	StageLoading
	StageSuccess
	StageDashboard
)

func (s Stage) String() string {
	switch s {
	case StageInitial:
		return "initial"
	case StageConnecting:
		return "connecting"
	case StageLoading:
		return "loading"
	case StageSuccess:
		return "success"
	case StageDashboard:
		return "dashboard"
	default:
		return "unknown"
	}
}

// Signals is a snapshot of the wallet provider's status.
type Signals struct {
	Connecting bool
	Connected  bool
	Address    string
	ChainID    int64
}

// Disconnected reports whether neither connecting nor connected is set.
func (s Signals) Disconnected() bool {
	return !s.Connecting && !s.Connected
}

// LoadingToken identifies one activation of the loading stage. A timer
// scheduled for an earlier activation carries a stale token.
type LoadingToken uint64

// WalletFlow sequences initial → connecting → loading → success → dashboard.
type WalletFlow struct {
	stage   Stage
	token   LoadingToken
	signals Signals
}

// NewWalletFlow returns a flow in the initial stage.
func NewWalletFlow() *WalletFlow {
	return &WalletFlow{stage: StageInitial}
}

// Stage returns the current stage.
func (w *WalletFlow) Stage() Stage {
	return w.stage
}

// Signals returns the last observed provider signals.
func (w *WalletFlow) Signals() Signals {
	return w.signals
}

// Token returns the token of the current loading activation. It is only
// meaningful while the stage is loading.
func (w *WalletFlow) Token() LoadingToken {
	return w.token
}

// Observe applies a provider status change and reports whether the stage moved.
// Disconnect is checked first so it wins over every forward transition.
func (w *WalletFlow) Observe(sig Signals) (Stage, bool) {
	w.signals = sig
	prev := w.stage

	switch {
	case sig.Disconnected() && w.stage != StageInitial:
		w.stage = StageInitial
	case w.stage == StageInitial && sig.Connecting:
		w.stage = StageConnecting
	case w.stage == StageConnecting && sig.Connected:
		w.stage = StageLoading
		w.token++
	}

	return w.stage, w.stage != prev
}

// LoadingComplete moves loading → success when tok belongs to the current
// loading activation.
func (w *WalletFlow) LoadingComplete(tok LoadingToken) bool {
	if w.stage != StageLoading || tok != w.token {
		return false
	}
	w.stage = StageSuccess
	return true
}

// Proceed moves success → dashboard on the user's request.
func (w *WalletFlow) Proceed() bool {
	if w.stage != StageSuccess {
		return false
	}
	w.stage = StageDashboard
	return true
}
