package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// newSpinner returns the spinner shared by the connecting and loading screens.
func newSpinner() spinner.Model {
	return spinner.New(
		spinner.WithSpinner(spinner.Spinner{Frames: spinnerFrames, FPS: 120 * time.Millisecond}),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(ColorCyan)),
	)
}

// renderLoadingPlaceholder renders an inline loading indicator for panels
// whose data is still being fetched. The frame follows the wall clock so it
// animates on re-render.
func renderLoadingPlaceholder(label string) string {
	frame := spinnerFrames[time.Now().UnixMilli()/120%int64(len(spinnerFrames))]
	return lipgloss.NewStyle().
		Foreground(ColorGray).
		Italic(true).
		Render(frame + " " + label)
}
