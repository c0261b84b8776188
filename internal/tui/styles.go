package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorCyan     = lipgloss.Color("#06b6d4")
	ColorCyanDark = lipgloss.Color("#0891b2")
	ColorGray     = lipgloss.Color("#9ca3af")
	ColorDimGray  = lipgloss.Color("#4b5563")
	ColorWhite    = lipgloss.Color("#ffffff")
	ColorNavy     = lipgloss.Color("#0f172a")
	ColorSlate    = lipgloss.Color("#1e293b")
	ColorGreen    = lipgloss.Color("#4CAF50")
	ColorAmber    = lipgloss.Color("#FFC107")
	ColorOrange   = lipgloss.Color("#f59e0b")
	ColorRed      = lipgloss.Color("#F44336")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	accentStyle = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(ColorNavy).
			Background(ColorCyan).
			Bold(true).
			Padding(0, 3)

	disabledButtonStyle = lipgloss.NewStyle().
				Foreground(ColorGray).
				Background(ColorDimGray).
				Bold(true).
				Padding(0, 3)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimGray).
			Padding(0, 1)

	activeSectionStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorCyan).
				Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorDimGray)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)
)

// center places a block in the middle of the screen.
func center(width, height int, s string) string {
	if width <= 0 || height <= 0 {
		return s
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s)
}

// renderBrand renders "VahanChain" with the cyan gradient used on the splash.
func renderBrand() string {
	colors := []string{
		"#22d3ee", "#1fcbe6", "#1cc3de", "#19bbd6", "#16b3ce",
		"#13abc6", "#10a3be", "#0d9bb6", "#0a93ae", "#0891b2",
	}
	var out string
	for i, ch := range "VahanChain" {
		out += lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i%len(colors)])).Bold(true).Render(string(ch))
	}
	return out
}

// renderDots renders pagination dots with the active one highlighted.
func renderDots(active, total int) string {
	var out string
	for i := 0; i < total; i++ {
		if i > 0 {
			out += " "
		}
		if i == active {
			out += accentStyle.Render("●")
		} else {
			out += helpStyle.Render("○")
		}
	}
	return out
}
