package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is a self-contained overlay that owns input while it is shown.
type Modal interface {
	// ID returns a unique identifier.
	ID() string
	// Update processes a message. Return pop=true to close the modal.
	Update(msg tea.Msg) (pop bool, cmd tea.Cmd)
	// View renders the modal for the given terminal dimensions.
	View(width, height int) string
}

// Notice is a blocking notification with a single OK button.
type Notice struct {
	id    string
	title string
	body  string
	isErr bool
}

// NewNotice creates an informational notice.
func NewNotice(id, title, body string) *Notice {
	return &Notice{id: id, title: title, body: body}
}

// NewErrorNotice creates a notice styled as an error.
func NewErrorNotice(id, title, body string) *Notice {
	return &Notice{id: id, title: title, body: body, isErr: true}
}

func (n *Notice) ID() string    { return n.id }
func (n *Notice) Title() string { return n.title }
func (n *Notice) Body() string  { return n.body }

func (n *Notice) Update(msg tea.Msg) (bool, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, keys.Dismiss) {
		return true, nil
	}
	return false, nil
}

func (n *Notice) View(width, height int) string {
	boxWidth := 56
	if width > 0 && width-4 < boxWidth {
		boxWidth = max(20, width-4)
	}

	border := ColorCyan
	title := accentStyle.Render(n.title)
	if n.isErr {
		border = ColorRed
		title = errorStyle.Bold(true).Render(n.title)
	}

	body := lipgloss.NewStyle().Width(boxWidth - 4).Foreground(ColorWhite).Render(n.body)
	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		body,
		"",
		lipgloss.PlaceHorizontal(boxWidth-4, lipgloss.Right, buttonStyle.Render("OK")),
	)

	box := lipgloss.NewStyle().
		Width(boxWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 1).
		Render(content)

	return center(width, height, box)
}
