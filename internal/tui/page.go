package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vahanchain/vahanchain/internal/flow"
)

// Page renders one top-level phase.
type Page interface {
	Phase() flow.Phase
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, *PageNav)
	View(width, height int) string
}

// PageNav is returned from Update when the page has finished its task.
type PageNav struct {
	Done bool
}

// done is the navigation every page returns exactly once.
var done = &PageNav{Done: true}

// stateAware is implemented by pages that need the tagged application state
// on activation (the main page reads its wallet sub-flow from it).
type stateAware interface {
	Attach(s flow.State)
}
