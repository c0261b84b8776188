package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/vahanchain/vahanchain/internal/flow"
)

// App is the top-level Bubble Tea model. It renders the page for the
// controller's current phase and advances the controller when that page
// reports it is done.
type App struct {
	ctrl   *flow.Controller
	pages  map[flow.Phase]Page
	width  int
	height int
}

// NewApp creates an App over ctrl with one page per phase.
func NewApp(ctrl *flow.Controller, pages ...Page) *App {
	pageMap := make(map[flow.Phase]Page, len(pages))
	for _, p := range pages {
		pageMap[p.Phase()] = p
	}
	return &App{ctrl: ctrl, pages: pageMap}
}

// Controller exposes the phase controller.
func (a *App) Controller() *flow.Controller {
	return a.ctrl
}

func (a *App) active() (Page, bool) {
	p, ok := a.pages[a.ctrl.Current()]
	return p, ok
}

func (a *App) Init() tea.Cmd {
	p, ok := a.active()
	if !ok {
		return nil
	}
	if sa, ok := p.(stateAware); ok {
		sa.Attach(a.ctrl.State())
	}
	return tea.Batch(tea.SetWindowTitle(a.ctrl.Config().AppName), p.Init())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	case tea.KeyMsg:
		if key.Matches(msg, keys.ForceQuit) || key.Matches(msg, keys.Quit) {
			return a, tea.Quit
		}
	}

	p, ok := a.active()
	if !ok {
		return a, nil
	}

	cmd, nav := p.Update(msg)
	if nav == nil || !nav.Done {
		return a, cmd
	}

	from := p.Phase()
	next, moved := a.ctrl.Done(from)
	if !moved {
		return a, cmd
	}
	log.Info("phase complete", "from", from, "to", next)

	np, ok := a.pages[next]
	if !ok {
		return a, cmd
	}
	if sa, ok := np.(stateAware); ok {
		sa.Attach(a.ctrl.State())
	}
	return a, tea.Batch(cmd, np.Init())
}

func (a *App) View() string {
	if p, ok := a.active(); ok {
		return p.View(a.width, a.height)
	}
	return "No active page"
}
