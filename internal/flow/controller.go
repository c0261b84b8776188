package flow

// Config is the process-wide configuration fixed at startup.
type Config struct {
	ProjectID string
	ChainID   int64
	AppName   string
	AppURL    string
}

// Controller tracks the single active top-level phase.
//
// The only way to move forward is Done with the phase currently active, so a
// screen that signals twice, or a screen that was already replaced, cannot
// advance the flow a second time.
type Controller struct {
	cfg     Config
	state   State
	history []Phase
	onEnter func(State)
}

// NewController starts a controller at the splash phase.
func NewController(cfg Config) *Controller {
	return &Controller{
		cfg:     cfg,
		state:   State{phase: PhaseSplash},
		history: []Phase{PhaseSplash},
	}
}

// Config returns the configuration the controller was built with.
func (c *Controller) Config() Config {
	return c.cfg
}

// OnEnter registers a hook invoked after every transition with the new state.
func (c *Controller) OnEnter(fn func(State)) {
	c.onEnter = fn
}

// Current returns the active phase.
func (c *Controller) Current() Phase {
	return c.state.phase
}

// State returns the tagged application state.
func (c *Controller) State() State {
	return c.state
}

// History returns the phases visited so far, in order.
func (c *Controller) History() []Phase {
	out := make([]Phase, len(c.history))
	copy(out, c.history)
	return out
}

// Done is the completion signal from the screen rendering phase p. It advances
// to the successor when p is still active and reports whether it did.
func (c *Controller) Done(p Phase) (Phase, bool) {
	if p != c.state.phase {
		return c.state.phase, false
	}
	next, ok := p.Next()
	if !ok {
		return c.state.phase, false
	}

	c.state = enter(next)
	c.history = append(c.history, next)
	if c.onEnter != nil {
		c.onEnter(c.state)
	}
	return next, true
}
