// Package flow holds the screen state machines: the top-level phase
// controller, the wallet connection sub-flow and the dashboard tab selector.
// Nothing in this package renders or blocks; callers feed it events.
package flow

// Phase is a top-level application screen.
type Phase int

const (
	PhaseSplash Phase = iota
	PhaseOnboarding1
	PhaseOnboarding2
	PhaseOnboarding3
	PhasePermissions
	PhaseMain
)

// Phases lists every phase in visiting order.
var Phases = []Phase{
	PhaseSplash,
	PhaseOnboarding1,
	PhaseOnboarding2,
	PhaseOnboarding3,
	PhasePermissions,
	PhaseMain,
}

func (p Phase) String() string {
	switch p {
	case PhaseSplash:
		return "splash"
	case PhaseOnboarding1:
		return "onboarding-1"
	case PhaseOnboarding2:
		return "onboarding-2"
	case PhaseOnboarding3:
		return "onboarding-3"
	case PhasePermissions:
		return "permissions"
	case PhaseMain:
		return "main"
	default:
		return "unknown"
	}
}

// Next returns the successor phase. main has none.
func (p Phase) Next() (Phase, bool) {
	if p < PhaseSplash || p >= PhaseMain {
		return p, false
	}
	return p + 1, true
}
