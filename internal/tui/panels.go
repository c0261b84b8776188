package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vahanchain/vahanchain/internal/flow"
)

// TabPanel is the content of one dashboard tab. Key messages go to the
// active panel only; every other message is offered to all panels.
type TabPanel interface {
	Tab() flow.Tab
	Init(ctx ViewContext) tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(ctx ViewContext, width, height int) string
}
