package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding

	// Screens
	Continue key.Binding
	Connect  key.Binding
	Dismiss  key.Binding

	// Tabs
	NextTab      key.Binding
	PrevTab      key.Binding
	DashboardTab key.Binding
	DocumentsTab key.Binding
	SettingsTab  key.Binding

	// Lists
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Drive  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),

		Continue: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "continue"),
		),
		Connect: key.NewBinding(
			key.WithKeys("c", "enter"),
			key.WithHelp("c/enter", "connect wallet"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc", "escape"),
			key.WithHelp("enter", "ok"),
		),

		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab/←", "prev tab"),
		),
		DashboardTab: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "home"),
		),
		DocumentsTab: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "documents"),
		),
		SettingsTab: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "settings"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Drive: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start/stop drive"),
		),
	}
}

var keys = DefaultKeyMap()
